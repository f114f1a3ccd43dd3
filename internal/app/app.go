// Package app is the orchestration layer: it owns the in-memory collections,
// calls into the engine for every transformation, and persists each collection
// to the store after a successful mutation. Store failures are non-fatal; the
// in-memory state stays authoritative.
package app

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/buff/internal/engine"
	"github.com/meltforce/buff/internal/store"
)

// DefaultExercises seeds the catalog on first run.
var DefaultExercises = []string{
	"Bicep Curl Barbell",
	"Cable Row",
	"Incline Bench",
	"Bench Press",
	"Squat",
	"Deadlift",
	"Overhead Press",
	"Lat Pulldown",
	"Incline Bench Press",
	"Leg Press",
	"Romanian Deadlift",
	"Pull Up",
	"Barbell Row",
	"Dumbbell Press",
	"Tricep Pushdown",
}

const persistTimeout = 5 * time.Second

// BodyProfile holds the fixed measurements for body-fat estimation.
// Height is centimetres.
type BodyProfile struct {
	Gender string  `json:"gender"`
	Height float64 `json:"height"`
}

// Options tunes the app. Now and NewID default to the real clock and random
// UUIDs; tests inject deterministic ones.
type Options struct {
	RPEEnabled bool
	Now        func() time.Time
	NewID      func() string
}

// App holds all application state behind one mutex.
type App struct {
	mu    sync.RWMutex
	store store.Store
	log   *slog.Logger
	now   func() time.Time
	newID func() string

	rpeEnabled bool

	sessions   []engine.Session
	exercises  []string
	unit       string
	bodyWeight []engine.BodyEntry
	bodyFat    []engine.BodyEntry
	profile    BodyProfile
	routines   []engine.Routine
	active     *engine.RoutineState
	prPopups   bool
}

// New creates an App over the given store with default state. Call Load to
// hydrate from the store.
func New(st store.Store, log *slog.Logger, opts Options) *App {
	a := &App{
		store:      st,
		log:        log,
		now:        opts.Now,
		newID:      opts.NewID,
		rpeEnabled: opts.RPEEnabled,
		exercises:  append([]string(nil), DefaultExercises...),
		unit:       engine.UnitKg,
		prPopups:   true,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.newID == nil {
		a.newID = uuid.NewString
	}
	return a
}

// Load hydrates every collection from the store. Absent keys keep their
// defaults; a read error is logged and treated as absent.
func (a *App) Load(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.loadKey(ctx, store.KeySessions, &a.sessions)
	a.loadKey(ctx, store.KeyExercises, &a.exercises)
	a.loadKey(ctx, store.KeyUnit, &a.unit)
	a.loadKey(ctx, store.KeyBodyWeight, &a.bodyWeight)
	a.loadKey(ctx, store.KeyBodyFat, &a.bodyFat)
	a.loadKey(ctx, store.KeyBodyProfile, &a.profile)
	a.loadKey(ctx, store.KeyRoutines, &a.routines)
	a.loadKey(ctx, store.KeyActiveRoutine, &a.active)
	a.loadKey(ctx, store.KeyPRPopups, &a.prPopups)
}

func (a *App) loadKey(ctx context.Context, key string, dst any) {
	raw, ok, err := a.store.Load(ctx, key)
	if err != nil {
		a.log.Warn("loading state, keeping default", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		a.log.Warn("decoding state, keeping default", "key", key, "error", err)
	}
}

// persist writes one collection to the store. Failures are logged at Warn
// and never propagated; the in-memory state is authoritative.
func (a *App) persist(key string, value any) {
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := a.store.Save(ctx, key, value); err != nil {
		a.log.Warn("persisting state", "key", key, "error", err)
	}
}

// Sessions returns a copy of the session collection, most recent day first.
func (a *App) Sessions() []engine.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]engine.Session(nil), a.sessions...)
}

// SessionsForExercise returns a copy of one exercise's sessions.
func (a *App) SessionsForExercise(exercise string) []engine.Session {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return engine.SessionsForExercise(a.sessions, exercise)
}

// Unit returns the global display unit.
func (a *App) Unit() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.unit
}

// PRPopups reports whether PR celebrations are enabled.
func (a *App) PRPopups() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.prPopups
}

// SetUnit changes the global display unit. Existing sessions keep the unit
// they were created with. Unknown labels are rejected.
func (a *App) SetUnit(unit string) bool {
	if unit != engine.UnitKg && unit != engine.UnitLb {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.unit = unit
	a.persist(store.KeyUnit, a.unit)
	return true
}

// SetPRPopups toggles PR celebrations.
func (a *App) SetPRPopups(on bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prPopups = on
	a.persist(store.KeyPRPopups, a.prPopups)
}

// Stats summarizes collection sizes for the status surface.
type Stats struct {
	Sessions          int `json:"sessions"`
	Sets              int `json:"sets"`
	Exercises         int `json:"exercises"`
	BodyWeightEntries int `json:"bodyWeightEntries"`
	BodyFatEntries    int `json:"bodyFatEntries"`
	Routines          int `json:"routines"`
}

// Stats returns current collection counts.
func (a *App) Stats() Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	sets := 0
	for _, s := range a.sessions {
		sets += len(s.Sets)
	}
	return Stats{
		Sessions:          len(a.sessions),
		Sets:              sets,
		Exercises:         len(a.exercises),
		BodyWeightEntries: len(a.bodyWeight),
		BodyFatEntries:    len(a.bodyFat),
		Routines:          len(a.routines),
	}
}
