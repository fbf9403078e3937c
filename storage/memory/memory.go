// Package memory implements storage.Storage in process memory, for tests
// and development.
package memory

import (
	"context"
	"sync"

	"github.com/kbukum/apistate/logger"
	"github.com/kbukum/apistate/storage"
)

func init() {
	storage.RegisterFactory(storage.ProviderMemory, func(_ storage.Config, _ *logger.Logger) (storage.Storage, error) {
		return NewStorage(), nil
	})
}

// Storage implements storage.Storage backed by a map.
type Storage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewStorage creates an empty in-memory store.
func NewStorage() *Storage {
	return &Storage{values: make(map[string][]byte)}
}

// Get returns the value stored under key, or storage.ErrNotFound.
func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	value, ok := s.values[key]
	s.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set writes value under key.
func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	s.values[key] = stored
	s.mu.Unlock()
	return nil
}

// Delete removes the value under key.
func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.values, key)
	s.mu.Unlock()
	return nil
}

// Exists reports whether a value is stored under key.
func (s *Storage) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	_, ok := s.values[key]
	s.mu.RUnlock()
	return ok, nil
}
