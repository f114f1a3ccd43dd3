package engine

import "testing"

// TestEpleyFormula verifies the Epley estimate for multi-rep sets, including
// the rounding behavior (100 at 5 reps → 116.67 → 117).
func TestEpleyFormula(t *testing.T) {
	cases := []struct {
		weight float64
		reps   int
		want   float64
	}{
		{100, 5, 117},
		{100, 2, 107},
		{60, 12, 84},
		{102.5, 3, 113},
		{80, 10, 107},
	}
	for _, c := range cases {
		if got := EstimateOneRepMax(c.weight, c.reps); got != c.want {
			t.Errorf("EstimateOneRepMax(%v, %d) = %v, want %v", c.weight, c.reps, got, c.want)
		}
	}
}

// TestSingleRepNeedsNoExtrapolation verifies that reps <= 1 returns the
// weight unchanged, without rounding a decimal entry.
func TestSingleRepNeedsNoExtrapolation(t *testing.T) {
	if got := EstimateOneRepMax(102.5, 1); got != 102.5 {
		t.Errorf("EstimateOneRepMax(102.5, 1) = %v, want 102.5", got)
	}
	if got := EstimateOneRepMax(140, 0); got != 140 {
		t.Errorf("EstimateOneRepMax(140, 0) = %v, want 140", got)
	}
}

// TestRPEAdjustment verifies that reps-in-reserve folds into the effective
// rep count before Epley: 5 reps @ RPE 8 scores as a set of 7.
func TestRPEAdjustment(t *testing.T) {
	want := EstimateOneRepMax(100, 7)
	if got := EstimateOneRepMaxRPE(100, 5, 8); got != want {
		t.Errorf("EstimateOneRepMaxRPE(100, 5, 8) = %v, want %v", got, want)
	}

	// RPE 10 means nothing in reserve — identical to the plain estimate.
	if got, want := EstimateOneRepMaxRPE(100, 5, 10), EstimateOneRepMax(100, 5); got != want {
		t.Errorf("EstimateOneRepMaxRPE(100, 5, 10) = %v, want %v", got, want)
	}

	// Half-step RPEs produce fractional effective reps.
	// 5 reps @ 7.5 → 7.5 effective reps → 100 * 1.25 = 125.
	if got := EstimateOneRepMaxRPE(100, 5, 7.5); got != 125 {
		t.Errorf("EstimateOneRepMaxRPE(100, 5, 7.5) = %v, want 125", got)
	}
}

// TestRPEClamped verifies that out-of-range RPE values clamp to [6, 10]
// instead of inflating the estimate without bound.
func TestRPEClamped(t *testing.T) {
	if got, want := EstimateOneRepMaxRPE(100, 5, 3), EstimateOneRepMaxRPE(100, 5, 6); got != want {
		t.Errorf("RPE below range = %v, want clamped value %v", got, want)
	}
	if got, want := EstimateOneRepMaxRPE(100, 5, 12), EstimateOneRepMaxRPE(100, 5, 10); got != want {
		t.Errorf("RPE above range = %v, want clamped value %v", got, want)
	}
}

// TestProjectionTable verifies the fixed percentage table at its endpoints
// and a midpoint.
func TestProjectionTable(t *testing.T) {
	cases := []struct {
		oneRM float64
		reps  int
		want  float64
	}{
		{100, 1, 100},
		{100, 5, 86},
		{100, 12, 70},
		{117, 8, 92}, // 117 * 0.79 = 92.43 → 92
	}
	for _, c := range cases {
		got, ok := ProjectedRepMax(c.oneRM, c.reps)
		if !ok {
			t.Fatalf("ProjectedRepMax(%v, %d) not available", c.oneRM, c.reps)
		}
		if got != c.want {
			t.Errorf("ProjectedRepMax(%v, %d) = %v, want %v", c.oneRM, c.reps, got, c.want)
		}
	}
}

// TestProjectionOutsideRange verifies rep counts outside 1..12 have no
// projection.
func TestProjectionOutsideRange(t *testing.T) {
	for _, reps := range []int{0, 13, 15, -1} {
		if _, ok := ProjectedRepMax(100, reps); ok {
			t.Errorf("ProjectedRepMax(100, %d) ok = true, want false", reps)
		}
	}
}

// TestProjectionsComplete verifies the on-demand table covers exactly the
// tracked rep range.
func TestProjectionsComplete(t *testing.T) {
	table := Projections(100)
	if len(table) != 12 {
		t.Fatalf("Projections returned %d entries, want 12", len(table))
	}
	for reps := MinTrackedReps; reps <= MaxTrackedReps; reps++ {
		if _, ok := table[reps]; !ok {
			t.Errorf("Projections missing rep count %d", reps)
		}
	}
}
