package engine

import "fmt"

// Marquee exercises with milestone ladders.
const (
	ExerciseBenchPress    = "Bench Press"
	ExerciseSquat         = "Squat"
	ExerciseDeadlift      = "Deadlift"
	ExerciseOverheadPress = "Overhead Press"
)

// Milestone is one rung of an exercise's badge ladder. Threshold is the
// resolved weight to beat; for bodyweight-relative rungs it is 0 until a
// body-weight entry exists.
type Milestone struct {
	Label     string  `json:"label"`
	Threshold float64 `json:"threshold"`
	Multiple  float64 `json:"multiple,omitempty"`
	Unlocked  bool    `json:"unlocked"`
}

// Fixed ladders in the lifter's display unit.
var absoluteLadders = map[string][]float64{
	ExerciseBenchPress:    {60, 80, 100, 120, 140, 160, 180, 200},
	ExerciseOverheadPress: {40, 50, 60, 70, 80, 90, 100},
}

// Ladders expressed as multiples of current body weight.
var relativeLadders = map[string][]float64{
	ExerciseSquat:    {1, 1.5, 2},
	ExerciseDeadlift: {1.5, 2, 2.5},
}

// ExerciseMilestones evaluates the badge ladder for a marquee exercise
// against its all-time best estimated 1RM. bodyweight is the most recent
// body-weight entry, nil when none exists; bodyweight-relative rungs stay
// locked without one. Non-marquee exercises have no ladder.
func ExerciseMilestones(sessions []Session, exercise string, bodyweight *float64) []Milestone {
	best := AllTimeBest1RM(sessions, exercise)

	if ladder, ok := absoluteLadders[exercise]; ok {
		out := make([]Milestone, 0, len(ladder))
		for _, threshold := range ladder {
			out = append(out, Milestone{
				Label:     fmt.Sprintf("%s %g", exercise, threshold),
				Threshold: threshold,
				Unlocked:  best > 0 && best >= threshold,
			})
		}
		return out
	}

	ladder, ok := relativeLadders[exercise]
	if !ok {
		return nil
	}
	out := make([]Milestone, 0, len(ladder))
	for _, multiple := range ladder {
		m := Milestone{
			Label:    fmt.Sprintf("%gx bodyweight %s", multiple, exercise),
			Multiple: multiple,
		}
		if bodyweight != nil && *bodyweight > 0 {
			m.Threshold = multiple * *bodyweight
			m.Unlocked = best > 0 && best >= m.Threshold
		}
		out = append(out, m)
	}
	return out
}
