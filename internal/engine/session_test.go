package engine

import (
	"reflect"
	"testing"
	"time"
)

func save(t *testing.T, sessions []Session, exercise, dateKey string, weight float64, reps int) SaveResult {
	t.Helper()
	res := RecordSet(sessions, SetEntry{
		Exercise:  exercise,
		DateKey:   dateKey,
		Weight:    weight,
		Reps:      reps,
		Unit:      UnitKg,
		SessionID: exercise + "/" + dateKey,
		LoggedAt:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	})
	if !res.Saved {
		t.Fatalf("RecordSet(%s, %s, %v, %d) not saved", exercise, dateKey, weight, reps)
	}
	return res
}

// TestSameDaySetsGroupIntoOneSession verifies that consecutive sets for the
// same exercise and date merge into a single session with sequential set
// numbers and correctly recomputed derived fields.
func TestSameDaySetsGroupIntoOneSession(t *testing.T) {
	var sessions []Session
	weights := []float64{100, 105, 102}
	for _, w := range weights {
		sessions = save(t, sessions, "Bench Press", "2024-01-01", w, 5).Sessions
	}

	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	s := sessions[0]
	if len(s.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(s.Sets))
	}
	for i, set := range s.Sets {
		if set.SetNumber != i+1 {
			t.Errorf("set %d number = %d, want %d", i, set.SetNumber, i+1)
		}
	}
	if want := EstimateOneRepMax(105, 5); s.Best1RM != want {
		t.Errorf("best1RM = %v, want %v", s.Best1RM, want)
	}
	if want := 100.0*5 + 105*5 + 102*5; s.Volume != want {
		t.Errorf("volume = %v, want %v", s.Volume, want)
	}
	if s.Volume != 1535 {
		t.Errorf("volume = %v, want 1535", s.Volume)
	}
}

// TestNoDuplicateSessions verifies a fourth same-day set still lands in the
// one existing session rather than opening a second one.
func TestNoDuplicateSessions(t *testing.T) {
	var sessions []Session
	for i := 0; i < 4; i++ {
		sessions = save(t, sessions, "Bench Press", "2024-01-01", 100, 5).Sessions
	}
	if len(sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(sessions))
	}
	if got := sessions[0].Sets[3].SetNumber; got != 4 {
		t.Errorf("fourth setNumber = %d, want 4", got)
	}
}

// TestCrossDateSeparation verifies a new calendar day opens a distinct
// session and leaves the earlier one untouched.
func TestCrossDateSeparation(t *testing.T) {
	var sessions []Session
	sessions = save(t, sessions, "Bench Press", "2024-01-01", 100, 5).Sessions
	first := sessions[0]

	res := save(t, sessions, "Bench Press", "2024-01-02", 110, 3)
	if !res.NewSession {
		t.Error("expected a new session for the new date")
	}
	if len(res.Sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(res.Sessions))
	}
	// Most recent day first.
	if res.Sessions[0].DateKey != "2024-01-02" {
		t.Errorf("sessions[0].dateKey = %s, want 2024-01-02", res.Sessions[0].DateKey)
	}
	if !reflect.DeepEqual(res.Sessions[1], first) {
		t.Error("earlier session was modified by a save on a different date")
	}
}

// TestInsertKeepsDateDescendingOrder verifies out-of-order saves (a backfill
// for an older date) land at the right position in the collection.
func TestInsertKeepsDateDescendingOrder(t *testing.T) {
	var sessions []Session
	for _, dk := range []string{"2024-01-03", "2024-01-01", "2024-01-05", "2024-01-02"} {
		sessions = save(t, sessions, "Squat", dk, 100, 5).Sessions
	}
	want := []string{"2024-01-05", "2024-01-03", "2024-01-02", "2024-01-01"}
	for i, dk := range want {
		if sessions[i].DateKey != dk {
			t.Errorf("sessions[%d].dateKey = %s, want %s", i, sessions[i].DateKey, dk)
		}
	}
}

// TestSameDayDifferentExercises verifies two exercises on one day produce
// two sessions, with the most recently created first.
func TestSameDayDifferentExercises(t *testing.T) {
	var sessions []Session
	sessions = save(t, sessions, "Bench Press", "2024-01-01", 100, 5).Sessions
	sessions = save(t, sessions, "Squat", "2024-01-01", 140, 5).Sessions

	if len(sessions) != 2 {
		t.Fatalf("sessions = %d, want 2", len(sessions))
	}
	if sessions[0].Exercise != "Squat" {
		t.Errorf("sessions[0].exercise = %s, want Squat (most recently created first)", sessions[0].Exercise)
	}
}

// TestInvalidInputIsNoOp verifies zero or negative weight/reps leave the
// collection untouched and report nothing saved.
func TestInvalidInputIsNoOp(t *testing.T) {
	sessions := save(t, nil, "Bench Press", "2024-01-01", 100, 5).Sessions
	before := append([]Session(nil), sessions...)

	cases := []struct {
		weight float64
		reps   int
	}{
		{0, 5}, {100, 0}, {-50, 5}, {100, -3}, {0, 0},
	}
	for _, c := range cases {
		res := RecordSet(sessions, SetEntry{
			Exercise: "Bench Press", DateKey: "2024-01-01",
			Weight: c.weight, Reps: c.reps, Unit: UnitKg,
		})
		if res.Saved {
			t.Errorf("RecordSet(weight=%v, reps=%d) saved, want no-op", c.weight, c.reps)
		}
		if res.SetNumber != 0 {
			t.Errorf("RecordSet(weight=%v, reps=%d) setNumber = %d, want 0", c.weight, c.reps, res.SetNumber)
		}
		if !reflect.DeepEqual(res.Sessions, before) {
			t.Errorf("RecordSet(weight=%v, reps=%d) changed the collection", c.weight, c.reps)
		}
	}
}

// TestRecordSetCopyOnWrite verifies the input collection and its inner set
// slices are never mutated by an append.
func TestRecordSetCopyOnWrite(t *testing.T) {
	sessions := save(t, nil, "Bench Press", "2024-01-01", 100, 5).Sessions
	snapshot := Session{
		ID: sessions[0].ID, Exercise: sessions[0].Exercise, DateKey: sessions[0].DateKey,
		LoggedAt: sessions[0].LoggedAt, Unit: sessions[0].Unit,
		Sets:    append([]Set(nil), sessions[0].Sets...),
		Best1RM: sessions[0].Best1RM, Volume: sessions[0].Volume,
	}

	save(t, sessions, "Bench Press", "2024-01-01", 120, 3)

	if len(sessions[0].Sets) != len(snapshot.Sets) {
		t.Fatalf("input session grew to %d sets", len(sessions[0].Sets))
	}
	if sessions[0].Best1RM != snapshot.Best1RM || sessions[0].Volume != snapshot.Volume {
		t.Error("input session derived fields were mutated")
	}
}

// TestUnitFrozenAtCreation verifies the session keeps the unit it was
// created with even when later saves carry a different global unit.
func TestUnitFrozenAtCreation(t *testing.T) {
	res := RecordSet(nil, SetEntry{
		Exercise: "Bench Press", DateKey: "2024-01-01",
		Weight: 100, Reps: 5, Unit: UnitKg, SessionID: "a",
	})
	res = RecordSet(res.Sessions, SetEntry{
		Exercise: "Bench Press", DateKey: "2024-01-01",
		Weight: 225, Reps: 5, Unit: UnitLb, SessionID: "b",
	})
	if len(res.Sessions) != 1 {
		t.Fatalf("sessions = %d, want 1", len(res.Sessions))
	}
	if res.Sessions[0].Unit != UnitKg {
		t.Errorf("unit = %s, want kg (frozen at session creation)", res.Sessions[0].Unit)
	}
}

// TestDeleteSession verifies exactly one session is removed by id and that
// unknown ids are a no-op.
func TestDeleteSession(t *testing.T) {
	var sessions []Session
	sessions = save(t, sessions, "Bench Press", "2024-01-01", 100, 5).Sessions
	sessions = save(t, sessions, "Bench Press", "2024-01-02", 105, 5).Sessions

	out := DeleteSession(sessions, "Bench Press/2024-01-01")
	if len(out) != 1 {
		t.Fatalf("sessions after delete = %d, want 1", len(out))
	}
	if out[0].DateKey != "2024-01-02" {
		t.Errorf("remaining session dateKey = %s, want 2024-01-02", out[0].DateKey)
	}

	if got := DeleteSession(sessions, "nope"); len(got) != 2 {
		t.Errorf("delete of unknown id removed %d sessions", 2-len(got))
	}
}

// TestDeleteAllSessionsForExercise verifies an exercise's full history is
// removed while other exercises keep theirs.
func TestDeleteAllSessionsForExercise(t *testing.T) {
	var sessions []Session
	sessions = save(t, sessions, "Bench Press", "2024-01-01", 100, 5).Sessions
	sessions = save(t, sessions, "Bench Press", "2024-01-02", 105, 5).Sessions
	sessions = save(t, sessions, "Squat", "2024-01-02", 140, 5).Sessions

	out := DeleteAllSessionsForExercise(sessions, "Bench Press")
	if len(out) != 1 {
		t.Fatalf("sessions = %d, want 1", len(out))
	}
	if out[0].Exercise != "Squat" {
		t.Errorf("remaining exercise = %s, want Squat", out[0].Exercise)
	}
}

// TestAllTimeBest1RM verifies the all-time best spans sessions and ignores
// other exercises.
func TestAllTimeBest1RM(t *testing.T) {
	var sessions []Session
	sessions = save(t, sessions, "Bench Press", "2024-01-01", 100, 5).Sessions
	sessions = save(t, sessions, "Bench Press", "2024-01-02", 90, 10).Sessions
	sessions = save(t, sessions, "Squat", "2024-01-02", 180, 5).Sessions

	want := EstimateOneRepMax(90, 10) // 120 beats 117
	if got := AllTimeBest1RM(sessions, "Bench Press"); got != want {
		t.Errorf("AllTimeBest1RM = %v, want %v", got, want)
	}
	if got := AllTimeBest1RM(sessions, "Deadlift"); got != 0 {
		t.Errorf("AllTimeBest1RM for untrained exercise = %v, want 0", got)
	}
}
