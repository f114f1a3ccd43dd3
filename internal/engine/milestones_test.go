package engine

import "testing"

// TestAbsoluteLadderUnlocks verifies fixed-weight rungs unlock at or above
// the all-time best estimated 1RM.
func TestAbsoluteLadderUnlocks(t *testing.T) {
	var sessions []Session
	sessions = logSet(t, sessions, ExerciseBenchPress, "2024-01-01", 100, 5) // est 117

	ms := ExerciseMilestones(sessions, ExerciseBenchPress, nil)
	if len(ms) != 8 {
		t.Fatalf("bench ladder has %d rungs, want 8", len(ms))
	}
	for _, m := range ms {
		wantUnlocked := m.Threshold <= 117
		if m.Unlocked != wantUnlocked {
			t.Errorf("rung %g unlocked = %v, want %v", m.Threshold, m.Unlocked, wantUnlocked)
		}
	}
}

// TestLadderLockedWithoutHistory verifies every rung stays locked for an
// exercise with no sessions.
func TestLadderLockedWithoutHistory(t *testing.T) {
	for _, m := range ExerciseMilestones(nil, ExerciseOverheadPress, nil) {
		if m.Unlocked {
			t.Errorf("rung %q unlocked with no history", m.Label)
		}
	}
}

// TestRelativeLadderNeedsBodyweight verifies bodyweight-relative rungs stay
// locked with zero thresholds until a body-weight entry exists.
func TestRelativeLadderNeedsBodyweight(t *testing.T) {
	var sessions []Session
	sessions = logSet(t, sessions, ExerciseSquat, "2024-01-01", 160, 1)

	for _, m := range ExerciseMilestones(sessions, ExerciseSquat, nil) {
		if m.Threshold != 0 {
			t.Errorf("rung %q threshold = %v without bodyweight, want 0", m.Label, m.Threshold)
		}
		if m.Unlocked {
			t.Errorf("rung %q unlocked without bodyweight", m.Label)
		}
	}
}

// TestRelativeLadderResolvesAgainstBodyweight verifies thresholds are the
// multiple times the current body weight.
func TestRelativeLadderResolvesAgainstBodyweight(t *testing.T) {
	var sessions []Session
	sessions = logSet(t, sessions, ExerciseDeadlift, "2024-01-01", 170, 1)
	bw := 80.0

	ms := ExerciseMilestones(sessions, ExerciseDeadlift, &bw)
	if len(ms) != 3 {
		t.Fatalf("deadlift ladder has %d rungs, want 3", len(ms))
	}
	// 1.5x = 120 unlocked at 170, 2x = 160 unlocked, 2.5x = 200 locked.
	wants := []struct {
		threshold float64
		unlocked  bool
	}{
		{120, true}, {160, true}, {200, false},
	}
	for i, w := range wants {
		if ms[i].Threshold != w.threshold {
			t.Errorf("rung %d threshold = %v, want %v", i, ms[i].Threshold, w.threshold)
		}
		if ms[i].Unlocked != w.unlocked {
			t.Errorf("rung %d unlocked = %v, want %v", i, ms[i].Unlocked, w.unlocked)
		}
	}
}

// TestNonMarqueeExerciseHasNoLadder verifies exercises outside the marquee
// four return nil.
func TestNonMarqueeExerciseHasNoLadder(t *testing.T) {
	sessions := logSet(t, nil, "Bicep Curl Barbell", "2024-01-01", 40, 8)
	if ms := ExerciseMilestones(sessions, "Bicep Curl Barbell", nil); ms != nil {
		t.Errorf("non-marquee exercise returned %d milestones, want none", len(ms))
	}
}
