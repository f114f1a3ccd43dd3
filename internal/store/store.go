// Package store persists the application's state as JSON documents under
// well-known keys. Two backends exist: an embedded SQLite file for the
// default local setup and PostgreSQL for a shared deployment.
package store

import (
	"context"
	"encoding/json"
)

// Keys under which application state is stored.
const (
	KeySessions      = "sessions"
	KeyExercises     = "exercises"
	KeyUnit          = "unit"
	KeyBodyWeight    = "bwHistory"
	KeyBodyFat       = "bfHistory"
	KeyBodyProfile   = "bfProfile"
	KeyRoutines      = "routines"
	KeyActiveRoutine = "activeRoutine"
	KeyPRPopups      = "prPopups"
)

// Store is a keyed JSON document store. Save marshals the value; Load
// returns the raw document and whether the key exists.
type Store interface {
	Load(ctx context.Context, key string) (json.RawMessage, bool, error)
	Save(ctx context.Context, key string, value any) error
	Close() error
}
