package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
	bbolt "go.etcd.io/bbolt"
)

var bucketGameStates = []byte("gamestates")

// BoltStorage keeps game states in a local bbolt file. Saves do not expire.
type BoltStorage struct {
	*Worlds
	db     *bbolt.DB
	logger *slog.Logger
}

var _ storage.Storage = (*BoltStorage)(nil)

// NewBoltStorage opens or creates the database file at path.
func NewBoltStorage(path string, worlds *Worlds, logger *slog.Logger) (*BoltStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create bolt directory: %w", err)
		}
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database %s: %w", path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketGameStates)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create bolt buckets: %w", err)
	}

	logger.Info("Opened bolt storage", "path", path)
	return &BoltStorage{Worlds: worlds, db: db, logger: logger}, nil
}

func (b *BoltStorage) Ping(ctx context.Context) error {
	return b.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketGameStates) == nil {
			return errors.New("bolt gamestates bucket missing")
		}
		return nil
	})
}

func (b *BoltStorage) Close() error {
	if err := b.db.Close(); err != nil {
		b.logger.Error("Failed to close bolt database", "error", err)
		return err
	}
	return nil
}

func (b *BoltStorage) SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error {
	if gs == nil {
		return errors.New("gamestate cannot be nil")
	}
	gs.UpdatedAt = time.Now()

	data, err := json.Marshal(gs)
	if err != nil {
		return fmt.Errorf("failed to marshal gamestate: %w", err)
	}
	err = b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGameStates).Put(id[:], data)
	})
	if err != nil {
		b.logger.Error("Failed to save gamestate", "uuid", id, "error", err)
		return fmt.Errorf("failed to save gamestate: %w", err)
	}
	return nil
}

func (b *BoltStorage) LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	var data []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketGameStates).Get(id[:]); v != nil {
			// v is only valid inside the transaction
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load gamestate: %w", err)
	}
	if data == nil {
		b.logger.Warn("Gamestate not found", "uuid", id)
		return nil, nil
	}

	var gs state.GameState
	if err := json.Unmarshal(data, &gs); err != nil {
		b.logger.Error("Failed to unmarshal gamestate", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal gamestate: %w", err)
	}
	return &gs, nil
}

func (b *BoltStorage) DeleteGameState(ctx context.Context, id uuid.UUID) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGameStates).Delete(id[:])
	})
	if err != nil {
		return fmt.Errorf("failed to delete gamestate: %w", err)
	}
	return nil
}

// SavedGame is a listing entry for a stored game.
type SavedGame struct {
	ID        uuid.UUID
	World     string
	Location  string
	Score     int
	GameOver  bool
	UpdatedAt time.Time
}

// ListGameStates returns every saved game, most recently updated first.
func (b *BoltStorage) ListGameStates(ctx context.Context) ([]SavedGame, error) {
	var saves []SavedGame
	err := b.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketGameStates).ForEach(func(k, v []byte) error {
			var gs state.GameState
			if err := json.Unmarshal(v, &gs); err != nil {
				b.logger.Warn("Skipping unreadable save", "key", fmt.Sprintf("%x", k), "error", err)
				return nil
			}
			saves = append(saves, SavedGame{
				ID:        gs.ID,
				World:     gs.World,
				Location:  string(gs.Location),
				Score:     gs.Score,
				GameOver:  gs.GameOver,
				UpdatedAt: gs.UpdatedAt,
			})
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list gamestates: %w", err)
	}
	sort.Slice(saves, func(i, j int) bool { return saves[i].UpdatedAt.After(saves[j].UpdatedAt) })
	return saves, nil
}
