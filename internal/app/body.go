package app

import (
	"github.com/meltforce/buff/internal/engine"
	"github.com/meltforce/buff/internal/store"
)

// BodyWeight returns a copy of the body-weight series in insertion order.
func (a *App) BodyWeight() []engine.BodyEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]engine.BodyEntry(nil), a.bodyWeight...)
}

// BodyFat returns a copy of the body-fat series in insertion order.
func (a *App) BodyFat() []engine.BodyEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]engine.BodyEntry(nil), a.bodyFat...)
}

// Profile returns the stored body profile.
func (a *App) Profile() BodyProfile {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.profile
}

// SetProfile stores gender and height for body-fat estimation.
func (a *App) SetProfile(p BodyProfile) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.profile = p
	a.persist(store.KeyBodyProfile, a.profile)
}

// AddBodyWeight appends a reading rounded to one decimal. Non-positive
// values save nothing.
func (a *App) AddBodyWeight(value float64) (engine.BodyEntry, bool) {
	if value <= 0 {
		return engine.BodyEntry{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.now()
	entry := engine.BodyEntry{
		ID:       a.newID(),
		Value:    engine.RoundTenth(value),
		DateKey:  engine.DateKey(now),
		LoggedAt: now,
	}
	a.bodyWeight = append(a.bodyWeight, entry)
	a.persist(store.KeyBodyWeight, a.bodyWeight)
	return entry, true
}

// DeleteBodyWeight removes one entry by id.
func (a *App) DeleteBodyWeight(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bodyWeight = deleteEntry(a.bodyWeight, id)
	a.persist(store.KeyBodyWeight, a.bodyWeight)
}

// ClearBodyWeight wipes the series.
func (a *App) ClearBodyWeight() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bodyWeight = nil
	a.persist(store.KeyBodyWeight, a.bodyWeight)
}

// EstimateBodyFat runs the tape-method formula against the stored profile.
// ok is false when the profile is incomplete or the girths are impossible.
func (a *App) EstimateBodyFat(waist, neck, hips float64) (value float64, category string, ok bool) {
	a.mu.RLock()
	profile := a.profile
	a.mu.RUnlock()

	bf, ok := engine.BodyFatPercent(profile.Gender, waist, neck, profile.Height, hips)
	if !ok {
		return 0, "", false
	}
	bf = engine.RoundTenth(bf)
	return bf, engine.BodyFatCategory(profile.Gender, bf), true
}

// AddBodyFat appends a body-fat reading rounded to one decimal.
func (a *App) AddBodyFat(value float64) (engine.BodyEntry, bool) {
	if value <= 0 {
		return engine.BodyEntry{}, false
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	now := a.now()
	entry := engine.BodyEntry{
		ID:       a.newID(),
		Value:    engine.RoundTenth(value),
		DateKey:  engine.DateKey(now),
		LoggedAt: now,
	}
	a.bodyFat = append(a.bodyFat, entry)
	a.persist(store.KeyBodyFat, a.bodyFat)
	return entry, true
}

// DeleteBodyFat removes one entry by id.
func (a *App) DeleteBodyFat(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bodyFat = deleteEntry(a.bodyFat, id)
	a.persist(store.KeyBodyFat, a.bodyFat)
}

// ClearBodyFat wipes the series.
func (a *App) ClearBodyFat() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bodyFat = nil
	a.persist(store.KeyBodyFat, a.bodyFat)
}

// BodyWeightTrend analyzes the body-weight series.
func (a *App) BodyWeightTrend() (*engine.Trend, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return engine.AnalyzeTrend(engine.BodySeries(a.bodyWeight))
}

// BodyFatTrend analyzes the body-fat series.
func (a *App) BodyFatTrend() (*engine.Trend, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return engine.AnalyzeTrend(engine.BodySeries(a.bodyFat))
}

func deleteEntry(entries []engine.BodyEntry, id string) []engine.BodyEntry {
	out := make([]engine.BodyEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}
