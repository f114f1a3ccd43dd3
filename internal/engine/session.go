package engine

import "time"

// SetEntry carries one user-entered set plus the identifiers the engine
// needs if a new session has to be created. The engine never generates IDs
// or reads the clock itself.
type SetEntry struct {
	Exercise  string
	DateKey   string
	Weight    float64
	Reps      int
	RPE       *float64
	Unit      string
	SessionID string
	LoggedAt  time.Time
}

// SaveResult is the outcome of RecordSet. When Saved is false the input
// collection is returned untouched.
type SaveResult struct {
	Sessions   []Session
	SetNumber  int
	NewSession bool
	Saved      bool
}

// RecordSet appends a set to the session collection, grouping by
// (exercise, dateKey) so there is at most one session per pair. The input
// slice is never mutated; the result shares untouched sessions with it.
// Non-positive weight or reps make the call a complete no-op.
func RecordSet(sessions []Session, e SetEntry) SaveResult {
	if e.Weight <= 0 || e.Reps <= 0 {
		return SaveResult{Sessions: sessions}
	}

	est := EstimateOneRepMax(e.Weight, e.Reps)
	if e.RPE != nil {
		est = EstimateOneRepMaxRPE(e.Weight, e.Reps, *e.RPE)
	}

	for i, s := range sessions {
		if s.Exercise != e.Exercise || s.DateKey != e.DateKey {
			continue
		}
		set := Set{
			Weight:       e.Weight,
			Reps:         e.Reps,
			RPE:          e.RPE,
			SetNumber:    len(s.Sets) + 1,
			Estimated1RM: est,
		}
		updated := s
		updated.Sets = append(append([]Set(nil), s.Sets...), set)
		updated.Best1RM = bestEstimate(updated.Sets)
		updated.Volume = totalVolume(updated.Sets)

		out := append([]Session(nil), sessions...)
		out[i] = updated
		return SaveResult{Sessions: out, SetNumber: set.SetNumber, Saved: true}
	}

	created := Session{
		ID:       e.SessionID,
		Exercise: e.Exercise,
		DateKey:  e.DateKey,
		LoggedAt: e.LoggedAt,
		Unit:     e.Unit,
		Sets: []Set{{
			Weight:       e.Weight,
			Reps:         e.Reps,
			RPE:          e.RPE,
			SetNumber:    1,
			Estimated1RM: est,
		}},
		Best1RM: est,
		Volume:  e.Weight * float64(e.Reps),
	}
	return SaveResult{
		Sessions:   insertByDateDesc(sessions, created),
		SetNumber:  1,
		NewSession: true,
		Saved:      true,
	}
}

// insertByDateDesc inserts s keeping the collection ordered by dateKey
// descending. Same-day sessions stay most-recently-created first.
func insertByDateDesc(sessions []Session, s Session) []Session {
	at := len(sessions)
	for i, cur := range sessions {
		if cur.DateKey <= s.DateKey {
			at = i
			break
		}
	}
	out := make([]Session, 0, len(sessions)+1)
	out = append(out, sessions[:at]...)
	out = append(out, s)
	return append(out, sessions[at:]...)
}

func bestEstimate(sets []Set) float64 {
	var best float64
	for _, s := range sets {
		if s.Estimated1RM > best {
			best = s.Estimated1RM
		}
	}
	return best
}

// totalVolume is the session's total work: sum of weight × reps over all
// sets, including sets outside the tracked rep range.
func totalVolume(sets []Set) float64 {
	var v float64
	for _, s := range sets {
		v += s.Weight * float64(s.Reps)
	}
	return v
}

// DeleteSession removes the session with the given id. Unknown ids are a
// no-op. The input slice is not mutated.
func DeleteSession(sessions []Session, id string) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.ID != id {
			out = append(out, s)
		}
	}
	return out
}

// DeleteAllSessionsForExercise removes every session for the named exercise,
// for "delete this exercise's entire history" flows.
func DeleteAllSessionsForExercise(sessions []Session, exercise string) []Session {
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s.Exercise != exercise {
			out = append(out, s)
		}
	}
	return out
}

// SessionsForExercise returns the exercise's sessions in collection order
// (most recent day first).
func SessionsForExercise(sessions []Session, exercise string) []Session {
	var out []Session
	for _, s := range sessions {
		if s.Exercise == exercise {
			out = append(out, s)
		}
	}
	return out
}

// AllTimeBest1RM returns the highest session Best1RM ever recorded for an
// exercise, or 0 when it has no history.
func AllTimeBest1RM(sessions []Session, exercise string) float64 {
	var best float64
	for _, s := range sessions {
		if s.Exercise == exercise && s.Best1RM > best {
			best = s.Best1RM
		}
	}
	return best
}
