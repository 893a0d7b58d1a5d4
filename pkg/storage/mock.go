package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/jwebster45206/adventure-engine/pkg/state"
	"github.com/jwebster45206/adventure-engine/pkg/world"
)

// MockStorage is an in-memory Storage for tests
type MockStorage struct {
	mu         sync.RWMutex
	gamestates map[uuid.UUID][]byte
	worlds     map[string]*world.World
	pingError  error
	saveError  error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage holding the builtin worlds
func NewMockStorage() *MockStorage {
	m := &MockStorage{
		gamestates: make(map[uuid.UUID][]byte),
		worlds:     make(map[string]*world.World),
	}
	for _, id := range world.BuiltinIDs() {
		m.worlds[id] = world.MustBuiltin(id)
	}
	return m
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

// SetSaveError configures the mock to fail on save with the given error
func (m *MockStorage) SetSaveError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveError = err
}

// AddWorld adds a world to the mock storage
func (m *MockStorage) AddWorld(w *world.World) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.worlds[w.ID] = w
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

// SaveGameState stores a JSON copy so later mutation of gs does not leak into storage
func (m *MockStorage) SaveGameState(ctx context.Context, id uuid.UUID, gs *state.GameState) error {
	if gs == nil {
		return errors.New("gamestate cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveError != nil {
		return m.saveError
	}
	data, err := marshalGameState(gs)
	if err != nil {
		return err
	}
	m.gamestates[id] = data
	return nil
}

func (m *MockStorage) LoadGameState(ctx context.Context, id uuid.UUID) (*state.GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, exists := m.gamestates[id]
	if !exists {
		return nil, nil
	}
	return unmarshalGameState(data)
}

func (m *MockStorage) DeleteGameState(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.gamestates, id)
	return nil
}

func (m *MockStorage) ListWorlds(ctx context.Context) ([]WorldInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	infos := make([]WorldInfo, 0, len(m.worlds))
	for id, w := range m.worlds {
		infos = append(infos, WorldInfo{ID: id, Name: w.Name, Source: "mock"})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos, nil
}

func (m *MockStorage) GetWorld(ctx context.Context, id string) (*world.World, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, exists := m.worlds[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrWorldNotFound, id)
	}
	return w, nil
}
