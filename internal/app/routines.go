package app

import (
	"fmt"

	"github.com/meltforce/buff/internal/engine"
	"github.com/meltforce/buff/internal/store"
)

// Routines returns a copy of the routine catalog.
func (a *App) Routines() []engine.Routine {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]engine.Routine(nil), a.routines...)
}

// SetRoutines replaces the routine catalog. An active pointer into a routine
// that no longer exists is cleared.
func (a *App) SetRoutines(routines []engine.Routine) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.routines = append([]engine.Routine(nil), routines...)
	a.persist(store.KeyRoutines, a.routines)

	if a.active != nil {
		if _, ok := a.routineByName(a.active.Routine); !ok {
			a.active = nil
			a.persist(store.KeyActiveRoutine, a.active)
		}
	}
}

// ActiveRoutine returns the active pointer and the slot it resolves to.
// The pointer is nil when no routine is active.
func (a *App) ActiveRoutine() (*engine.RoutineState, *engine.RoutineSlot) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.active == nil {
		return nil, nil
	}
	st := *a.active
	routine, ok := a.routineByName(st.Routine)
	if !ok {
		return &st, nil
	}
	if slot, ok := engine.ActiveSlot(routine, st); ok {
		return &st, &slot
	}
	return &st, nil
}

// SetActiveRoutine points the tracker at the start of a named routine.
func (a *App) SetActiveRoutine(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.routineByName(name); !ok {
		return fmt.Errorf("unknown routine %q", name)
	}
	a.active = &engine.RoutineState{Routine: name}
	a.persist(store.KeyActiveRoutine, a.active)
	return nil
}

// ClearActiveRoutine deactivates routine tracking.
func (a *App) ClearActiveRoutine() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.active = nil
	a.persist(store.KeyActiveRoutine, a.active)
}

// routineByName resolves a routine in the catalog. Caller holds the lock.
func (a *App) routineByName(name string) (engine.Routine, bool) {
	for _, r := range a.routines {
		if r.Name == name {
			return r, true
		}
	}
	return engine.Routine{}, false
}
