package app

import (
	"github.com/meltforce/buff/internal/engine"
	"github.com/meltforce/buff/internal/store"
)

// SetInput is one user-entered set.
type SetInput struct {
	Exercise string   `json:"exercise"`
	Weight   float64  `json:"weight"`
	Reps     int      `json:"reps"`
	RPE      *float64 `json:"rpe,omitempty"`
}

// SaveSetResult reports the outcome of a save: whether anything was saved,
// the position within the session, whether the set beat a prior-day record,
// and whether the active routine pointer moved.
type SaveSetResult struct {
	Saved           bool            `json:"saved"`
	SetNumber       int             `json:"setNumber,omitempty"`
	NewSession      bool            `json:"newSession,omitempty"`
	NewPR           bool            `json:"newPR,omitempty"`
	Session         *engine.Session `json:"session,omitempty"`
	RoutineAdvanced bool            `json:"routineAdvanced,omitempty"`
}

// SaveSet logs one set against today's session for the exercise. Invalid
// input saves nothing. The PR check runs against the state before the
// mutation so today's earlier sets never form the baseline.
func (a *App) SaveSet(in SetInput) SaveSetResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	dateKey := engine.DateKey(now)

	rpe := in.RPE
	if !a.rpeEnabled {
		rpe = nil
	}

	newPR := engine.IsNewPersonalRecord(a.sessions, in.Exercise, dateKey, in.Weight, in.Reps)

	res := engine.RecordSet(a.sessions, engine.SetEntry{
		Exercise:  in.Exercise,
		DateKey:   dateKey,
		Weight:    in.Weight,
		Reps:      in.Reps,
		RPE:       rpe,
		Unit:      a.unit,
		SessionID: a.newID(),
		LoggedAt:  now,
	})
	if !res.Saved {
		return SaveSetResult{}
	}

	a.sessions = res.Sessions
	a.persist(store.KeySessions, a.sessions)

	out := SaveSetResult{
		Saved:      true,
		SetNumber:  res.SetNumber,
		NewSession: res.NewSession,
		NewPR:      newPR,
	}
	for i := range a.sessions {
		if a.sessions[i].Exercise == in.Exercise && a.sessions[i].DateKey == dateKey {
			s := a.sessions[i]
			out.Session = &s
			break
		}
	}

	out.RoutineAdvanced = a.maybeAdvanceRoutine(in.Exercise, out.Session)

	a.log.Info("set saved",
		"exercise", in.Exercise, "weight", in.Weight, "reps", in.Reps,
		"setNumber", out.SetNumber, "newPR", out.NewPR)
	return out
}

// maybeAdvanceRoutine moves the active routine pointer when the logged set
// completes the current slot's target. Caller holds the lock.
func (a *App) maybeAdvanceRoutine(exercise string, session *engine.Session) bool {
	if a.active == nil || session == nil {
		return false
	}
	routine, ok := a.routineByName(a.active.Routine)
	if !ok {
		return false
	}
	slot, ok := engine.ActiveSlot(routine, *a.active)
	if !ok || slot.Exercise != exercise {
		return false
	}
	next, moved := engine.AdvanceRoutine(routine, *a.active, len(session.Sets))
	if !moved {
		return false
	}
	a.active = &next
	a.persist(store.KeyActiveRoutine, a.active)
	return true
}

// DeleteSession removes one session by id.
func (a *App) DeleteSession(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions = engine.DeleteSession(a.sessions, id)
	a.persist(store.KeySessions, a.sessions)
}

// DeleteExerciseHistory removes every session for the exercise. The catalog
// entry stays.
func (a *App) DeleteExerciseHistory(exercise string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions = engine.DeleteAllSessionsForExercise(a.sessions, exercise)
	a.persist(store.KeySessions, a.sessions)
}

// ClearSessions wipes the entire log.
func (a *App) ClearSessions() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sessions = nil
	a.persist(store.KeySessions, a.sessions)
}

// RepRecords returns the per-rep-count records for an exercise.
func (a *App) RepRecords(exercise string) map[int]engine.Record {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return engine.ComputeRepRecords(engine.SessionsForExercise(a.sessions, exercise))
}

// Estimate computes the estimated 1RM for a hypothetical set, honoring the
// RPE toggle.
func (a *App) Estimate(weight float64, reps int, rpe *float64) float64 {
	if a.rpeEnabled && rpe != nil {
		return engine.EstimateOneRepMaxRPE(weight, reps, *rpe)
	}
	return engine.EstimateOneRepMax(weight, reps)
}

// Milestones evaluates the badge ladder for an exercise against the latest
// body-weight entry.
func (a *App) Milestones(exercise string) []engine.Milestone {
	a.mu.RLock()
	defer a.mu.RUnlock()
	var bw *float64
	if len(a.bodyWeight) > 0 {
		v := a.bodyWeight[len(a.bodyWeight)-1].Value
		bw = &v
	}
	return engine.ExerciseMilestones(a.sessions, exercise, bw)
}

// ExerciseTrend analyzes an exercise's per-session series for the given
// metric ("1rm" or "volume").
func (a *App) ExerciseTrend(exercise, metric string) (*engine.Trend, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return engine.AnalyzeTrend(engine.SessionSeries(a.sessions, exercise, metric))
}
