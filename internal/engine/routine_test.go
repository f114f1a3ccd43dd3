package engine

import "testing"

func pplRoutine() Routine {
	return Routine{
		Name: "PPL",
		Days: []RoutineDay{
			{Name: "Push", Slots: []RoutineSlot{
				{Exercise: "Bench Press", TargetSets: 3},
				{Exercise: "Overhead Press", TargetSets: 3},
			}},
			{Name: "Pull", Slots: []RoutineSlot{
				{Exercise: "Barbell Row", TargetSets: 3},
			}},
		},
	}
}

// TestActiveSlot verifies pointer resolution and out-of-range handling.
func TestActiveSlot(t *testing.T) {
	r := pplRoutine()

	slot, ok := ActiveSlot(r, RoutineState{DayIndex: 0, ExerciseIndex: 1})
	if !ok || slot.Exercise != "Overhead Press" {
		t.Errorf("ActiveSlot = %+v, %v; want Overhead Press", slot, ok)
	}

	for _, st := range []RoutineState{
		{DayIndex: 2}, {DayIndex: -1}, {DayIndex: 0, ExerciseIndex: 5},
	} {
		if _, ok := ActiveSlot(r, st); ok {
			t.Errorf("ActiveSlot(%+v) ok = true, want false", st)
		}
	}
	if _, ok := ActiveSlot(Routine{}, RoutineState{}); ok {
		t.Error("ActiveSlot on empty routine ok = true, want false")
	}
}

// TestAdvanceRoutineHoldsBelowTarget verifies the pointer stays put until
// the slot's target set count is met.
func TestAdvanceRoutineHoldsBelowTarget(t *testing.T) {
	r := pplRoutine()
	st := RoutineState{Routine: "PPL"}

	next, moved := AdvanceRoutine(r, st, 2)
	if moved || next != st {
		t.Errorf("AdvanceRoutine below target moved pointer to %+v", next)
	}
}

// TestAdvanceRoutineStepsAndWraps verifies exercise advance, day rollover
// and the wrap back to the first day.
func TestAdvanceRoutineStepsAndWraps(t *testing.T) {
	r := pplRoutine()
	st := RoutineState{Routine: "PPL"}

	st, moved := AdvanceRoutine(r, st, 3)
	if !moved || st.DayIndex != 0 || st.ExerciseIndex != 1 {
		t.Fatalf("after first slot: %+v, moved=%v", st, moved)
	}

	st, moved = AdvanceRoutine(r, st, 4)
	if !moved || st.DayIndex != 1 || st.ExerciseIndex != 0 {
		t.Fatalf("after last push slot: %+v, moved=%v (want day rollover)", st, moved)
	}

	st, moved = AdvanceRoutine(r, st, 3)
	if !moved || st.DayIndex != 0 || st.ExerciseIndex != 0 {
		t.Fatalf("after last day: %+v, moved=%v (want wrap to first day)", st, moved)
	}
}
