package engine

// RoutineSlot is one exercise within a routine day and its target set count.
type RoutineSlot struct {
	Exercise   string `json:"exercise"`
	TargetSets int    `json:"targetSets"`
}

// RoutineDay is an ordered list of slots performed in one training day.
type RoutineDay struct {
	Name  string        `json:"name"`
	Slots []RoutineSlot `json:"slots"`
}

// Routine is a named ordered list of training days.
type Routine struct {
	Name string       `json:"name"`
	Days []RoutineDay `json:"days"`
}

// RoutineState is the active pointer into a routine: which routine, which
// day, which slot within the day. Only this pointer is persisted beyond the
// routine catalog itself.
type RoutineState struct {
	Routine       string `json:"routine"`
	DayIndex      int    `json:"dayIndex"`
	ExerciseIndex int    `json:"exerciseIndex"`
}

// ActiveSlot resolves the state's current slot. ok is false when the routine
// is empty or the pointer is out of range.
func ActiveSlot(r Routine, st RoutineState) (RoutineSlot, bool) {
	if st.DayIndex < 0 || st.DayIndex >= len(r.Days) {
		return RoutineSlot{}, false
	}
	day := r.Days[st.DayIndex]
	if st.ExerciseIndex < 0 || st.ExerciseIndex >= len(day.Slots) {
		return RoutineSlot{}, false
	}
	return day.Slots[st.ExerciseIndex], true
}

// AdvanceRoutine moves the pointer to the next slot once the current slot's
// target set count is met. It wraps to the next day after the last slot of a
// day and back to the first day after the last day. The bool reports whether
// the pointer moved.
func AdvanceRoutine(r Routine, st RoutineState, setsCompleted int) (RoutineState, bool) {
	slot, ok := ActiveSlot(r, st)
	if !ok || setsCompleted < slot.TargetSets {
		return st, false
	}

	st.ExerciseIndex++
	if st.ExerciseIndex >= len(r.Days[st.DayIndex].Slots) {
		st.ExerciseIndex = 0
		st.DayIndex++
		if st.DayIndex >= len(r.Days) {
			st.DayIndex = 0
		}
	}
	return st, true
}
