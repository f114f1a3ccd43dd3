package app

import (
	"strings"

	"github.com/meltforce/buff/internal/store"
)

// Exercises returns a copy of the catalog in insertion order.
func (a *App) Exercises() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]string(nil), a.exercises...)
}

// AddExercise appends a trimmed name to the catalog. Empty names and
// duplicates are rejected.
func (a *App) AddExercise(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, ex := range a.exercises {
		if ex == name {
			return false
		}
	}
	a.exercises = append(a.exercises, name)
	a.persist(store.KeyExercises, a.exercises)
	return true
}

// ResetExercises restores the default catalog. Session history is untouched.
func (a *App) ResetExercises() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.exercises = append([]string(nil), DefaultExercises...)
	a.persist(store.KeyExercises, a.exercises)
}
