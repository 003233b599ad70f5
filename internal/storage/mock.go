package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockStorage is a mock implementation of Storage for testing
type MockStorage struct {
	mu        sync.RWMutex
	saves     map[uuid.UUID]*SavedGame
	latest    uuid.UUID
	hasLatest bool
	pingError error
}

// Ensure MockStorage implements Storage interface
var _ Storage = (*MockStorage)(nil)

// NewMockStorage creates a new mock storage
func NewMockStorage() *MockStorage {
	return &MockStorage{
		saves: make(map[uuid.UUID]*SavedGame),
	}
}

// SetPingError configures the mock to fail on ping with the given error
func (m *MockStorage) SetPingError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingError = err
}

func (m *MockStorage) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pingError
}

func (m *MockStorage) Close() error {
	return nil
}

func (m *MockStorage) SaveGame(ctx context.Context, id uuid.UUID, save *SavedGame) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves[id] = save
	m.latest = id
	m.hasLatest = true
	return nil
}

func (m *MockStorage) LoadGame(ctx context.Context, id uuid.UUID) (*SavedGame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	save, ok := m.saves[id]
	if !ok {
		return nil, ErrNotFound
	}
	return save, nil
}

func (m *MockStorage) DeleteGame(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.saves, id)
	return nil
}

func (m *MockStorage) LatestID(ctx context.Context) (uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.hasLatest {
		return uuid.Nil, ErrNotFound
	}
	if _, ok := m.saves[m.latest]; !ok {
		return uuid.Nil, ErrNotFound
	}
	return m.latest, nil
}
