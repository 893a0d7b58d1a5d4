package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

var ErrWorldNotFound = errors.New("world not found")

// WorldInfo is a world's listing entry.
type WorldInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"` // "builtin" or the file it was loaded from
}

// Storage combines game state persistence (Redis or bbolt) with world loading
// (embedded worlds and the data directory).
type Storage interface {
	// Health and lifecycle
	Ping(ctx context.Context) error
	Close() error

	// GameState operations. LoadGameState returns (nil, nil) when the id is unknown.
	SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error
	LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error)
	DeleteGameState(ctx context.Context, id uuid.UUID) error

	// World operations
	ListWorlds(ctx context.Context) ([]WorldInfo, error)
	GetWorld(ctx context.Context, id string) (*world.World, error)
}
