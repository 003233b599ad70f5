package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/TheFirstLairron/Rusty-Rogues/pkg/entity"
	"github.com/TheFirstLairron/Rusty-Rogues/pkg/state"
)

// ErrNotFound is returned when no save exists for the requested id.
var ErrNotFound = errors.New("storage: save not found")

// SavedGame is the complete persisted session: the live entity
// collection plus the session state (map, log, inventory, depth).
type SavedGame struct {
	Entities entity.List      `json:"entities"`
	State    *state.GameState `json:"state"`
}

// Storage persists complete game sessions keyed by session id.
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// Save operations
	SaveGame(ctx context.Context, id uuid.UUID, save *SavedGame) error
	LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error)
	DeleteGame(ctx context.Context, id uuid.UUID) error

	// LatestID returns the id of the most recently saved session, or
	// ErrNotFound when nothing has been saved yet.
	LatestID(ctx context.Context) (uuid.UUID, error)
}
