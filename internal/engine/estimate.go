package engine

import "math"

// Rep counts tracked for records and projections.
const (
	MinTrackedReps = 1
	MaxTrackedReps = 12
)

// RPE bounds for the reps-in-reserve adjustment.
const (
	minRPE = 6
	maxRPE = 10
)

// repPercentages maps a target rep count to the percentage of 1RM a lifter
// can typically handle for that many reps.
var repPercentages = map[int]float64{
	1: 100, 2: 96, 3: 92, 4: 89, 5: 86, 6: 84,
	7: 81, 8: 79, 9: 76, 10: 74, 11: 72, 12: 70,
}

// EstimateOneRepMax estimates a one-rep max from a working set using the
// Epley formula, rounded to the nearest whole number. A true single
// (reps <= 1) needs no extrapolation and returns the weight unchanged.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if reps <= 1 {
		return weight
	}
	return math.Round(weight * (1 + float64(reps)/30))
}

// EstimateOneRepMaxRPE folds reps-in-reserve into the rep count before
// applying Epley: at RPE 8 the lifter had two more reps available, so a set
// of 5 @ 8 scores as an effective set of 7. RPE is clamped to [6, 10].
func EstimateOneRepMaxRPE(weight float64, reps int, rpe float64) float64 {
	if rpe < minRPE {
		rpe = minRPE
	}
	if rpe > maxRPE {
		rpe = maxRPE
	}
	adjusted := float64(reps) + (maxRPE - rpe)
	if adjusted <= 1 {
		return weight
	}
	return math.Round(weight * (1 + adjusted/30))
}

// ProjectedRepMax converts an estimated 1RM into the weight a lifter should
// manage for targetReps. The second return is false when targetReps is
// outside the tracked 1..12 range.
func ProjectedRepMax(oneRM float64, targetReps int) (float64, bool) {
	pct, ok := repPercentages[targetReps]
	if !ok {
		return 0, false
	}
	return math.Round(oneRM * pct / 100), true
}

// Projections returns the full projected rep-max table for an estimated 1RM,
// keyed by rep count 1..12. Recomputed on demand, never persisted.
func Projections(oneRM float64) map[int]float64 {
	out := make(map[int]float64, len(repPercentages))
	for reps := range repPercentages {
		v, _ := ProjectedRepMax(oneRM, reps)
		out[reps] = v
	}
	return out
}
