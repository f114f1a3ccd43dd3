// Package engine implements the workout log and record core: one-rep-max
// estimation, session aggregation, rep-max record tracking, milestone badges,
// and supporting body-composition math. Every function here is a pure
// in-memory transformation — collection in, collection out. Persistence,
// clocks, and ID generation live in the orchestration layer.
package engine

import "time"

// Display unit labels. A session freezes the label active when it is
// created; values are never converted between units.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// Set is a single performed set within a session. Estimated1RM is computed
// once at insertion time; sets are append-only and never edited in place.
type Set struct {
	Weight       float64  `json:"weight"`
	Reps         int      `json:"reps"`
	RPE          *float64 `json:"rpe,omitempty"`
	SetNumber    int      `json:"setNumber"`
	Estimated1RM float64  `json:"estimated1RM"`
}

// Session groups every set logged for one exercise on one calendar day.
// Best1RM and Volume are derived and recomputed on every append.
type Session struct {
	ID       string    `json:"id"`
	Exercise string    `json:"exercise"`
	DateKey  string    `json:"dateKey"`
	LoggedAt time.Time `json:"loggedAt"`
	Unit     string    `json:"unit"`
	Sets     []Set     `json:"sets"`
	Best1RM  float64   `json:"best1RM"`
	Volume   float64   `json:"volume"`
}

// Record is the heaviest weight ever lifted at one rep count, labeled with
// the unit and date of the session it came from.
type Record struct {
	Weight  float64 `json:"weight"`
	Unit    string  `json:"unit"`
	DateKey string  `json:"dateKey"`
}

// BodyEntry is one point in the body-weight or body-fat time series.
type BodyEntry struct {
	ID       string    `json:"id"`
	Value    float64   `json:"value"`
	DateKey  string    `json:"dateKey"`
	LoggedAt time.Time `json:"loggedAt"`
}

const dateKeyLayout = "2006-01-02"

// DateKey formats t as the YYYY-MM-DD grouping key used throughout.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}
