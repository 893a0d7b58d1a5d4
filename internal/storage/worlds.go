package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jwebster45206/adventure-engine/pkg/storage"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

const sourceBuiltin = "builtin"

// Worlds loads worlds from dataDir/worlds, falling back to the builtin worlds. Parsed
// worlds are cached; a file world with the same id as a builtin one takes precedence.
type Worlds struct {
	dir    string
	cache  *expirable.LRU[string, *world.World]
	logger *slog.Logger
}

// NewWorlds creates a world loader over dataDir. cacheSize bounds the number of parsed
// worlds kept in memory; ttl bounds how long an edited file can go unnoticed.
func NewWorlds(dataDir string, cacheSize int, ttl time.Duration, logger *slog.Logger) *Worlds {
	if dataDir == "" {
		dataDir = "./data"
	}
	if cacheSize <= 0 {
		cacheSize = 16
	}
	return &Worlds{
		dir:    filepath.Join(dataDir, "worlds"),
		cache:  expirable.NewLRU[string, *world.World](cacheSize, nil, ttl),
		logger: logger,
	}
}

// ListWorlds returns the builtin worlds and every valid world file, sorted by id.
func (ws *Worlds) ListWorlds(ctx context.Context) ([]storage.WorldInfo, error) {
	byID := make(map[string]storage.WorldInfo)
	for _, id := range world.BuiltinIDs() {
		w, err := world.Builtin(id)
		if err != nil {
			ws.logger.Error("Builtin world is invalid", "world", id, "error", err)
			continue
		}
		byID[id] = storage.WorldInfo{ID: id, Name: w.Name, Source: sourceBuiltin}
	}

	err := filepath.WalkDir(ws.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !world.IsWorldFile(path) {
			return nil
		}
		w, err := world.Load(path)
		if err != nil {
			ws.logger.Warn("Skipping invalid world file", "path", path, "error", err)
			return nil
		}
		byID[w.ID] = storage.WorldInfo{ID: w.ID, Name: w.Name, Source: filepath.Base(path)}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		ws.logger.Error("Failed to walk worlds directory", "error", err)
		return nil, fmt.Errorf("failed to list worlds: %w", err)
	}

	infos := make([]storage.WorldInfo, 0, len(byID))
	for _, info := range byID {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

// GetWorld returns the world with the given id. Returned worlds are shared and must not
// be modified.
func (ws *Worlds) GetWorld(ctx context.Context, id string) (*world.World, error) {
	if !world.IsValidID(id) {
		return nil, fmt.Errorf("%w: %q", storage.ErrWorldNotFound, id)
	}
	if w, ok := ws.cache.Get(id); ok {
		return w, nil
	}

	w, err := ws.loadFile(id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w, err = world.Builtin(id)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %q", storage.ErrWorldNotFound, id)
			}
			return nil, err
		}
	}

	ws.cache.Add(id, w)
	ws.logger.Debug("Loaded world", "world", id, "rooms", len(w.Rooms), "items", len(w.Items))
	return w, nil
}

// loadFile looks for <id>.json, <id>.yaml or <id>.yml; (nil, nil) when none exists.
func (ws *Worlds) loadFile(id string) (*world.World, error) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		path := filepath.Join(ws.dir, id+ext)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		w, err := world.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load world %s: %w", filepath.Base(path), err)
		}
		if w.ID != id {
			return nil, fmt.Errorf("world file %s declares id %q", filepath.Base(path), w.ID)
		}
		return w, nil
	}
	return nil, nil
}

// Invalidate drops every cached world.
func (ws *Worlds) Invalidate() {
	ws.cache.Purge()
}
