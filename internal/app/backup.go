package app

import (
	"time"

	"github.com/meltforce/buff/internal/engine"
	"github.com/meltforce/buff/internal/store"
)

// Backup is the full application state as one JSON document.
type Backup struct {
	Sessions      []engine.Session     `json:"sessions"`
	Exercises     []string             `json:"exercises"`
	Unit          string               `json:"unit"`
	BodyWeight    []engine.BodyEntry   `json:"bwHistory"`
	BodyFat       []engine.BodyEntry   `json:"bfHistory"`
	Profile       BodyProfile          `json:"bfProfile"`
	Routines      []engine.Routine     `json:"routines"`
	ActiveRoutine *engine.RoutineState `json:"activeRoutine,omitempty"`
	PRPopups      bool                 `json:"prPopups"`
	ExportedAt    time.Time            `json:"exportedAt"`
}

// Export snapshots every collection.
func (a *App) Export() Backup {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b := Backup{
		Sessions:   append([]engine.Session(nil), a.sessions...),
		Exercises:  append([]string(nil), a.exercises...),
		Unit:       a.unit,
		BodyWeight: append([]engine.BodyEntry(nil), a.bodyWeight...),
		BodyFat:    append([]engine.BodyEntry(nil), a.bodyFat...),
		Profile:    a.profile,
		Routines:   append([]engine.Routine(nil), a.routines...),
		PRPopups:   a.prPopups,
		ExportedAt: a.now(),
	}
	if a.active != nil {
		st := *a.active
		b.ActiveRoutine = &st
	}
	return b
}

// Import replaces every collection with the backup's contents and persists
// them all. Last write wins; there is no merging.
func (a *App) Import(b Backup) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.sessions = b.Sessions
	a.exercises = b.Exercises
	if len(a.exercises) == 0 {
		a.exercises = append([]string(nil), DefaultExercises...)
	}
	a.unit = b.Unit
	if a.unit != engine.UnitKg && a.unit != engine.UnitLb {
		a.unit = engine.UnitKg
	}
	a.bodyWeight = b.BodyWeight
	a.bodyFat = b.BodyFat
	a.profile = b.Profile
	a.routines = b.Routines
	a.active = b.ActiveRoutine
	a.prPopups = b.PRPopups

	a.persist(store.KeySessions, a.sessions)
	a.persist(store.KeyExercises, a.exercises)
	a.persist(store.KeyUnit, a.unit)
	a.persist(store.KeyBodyWeight, a.bodyWeight)
	a.persist(store.KeyBodyFat, a.bodyFat)
	a.persist(store.KeyBodyProfile, a.profile)
	a.persist(store.KeyRoutines, a.routines)
	a.persist(store.KeyActiveRoutine, a.active)
	a.persist(store.KeyPRPopups, a.prPopups)

	a.log.Info("state imported",
		"sessions", len(a.sessions), "exercises", len(a.exercises))
}
