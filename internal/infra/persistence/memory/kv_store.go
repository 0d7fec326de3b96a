// Package memory holds an in-process KVStore for development and tests.
package memory

import (
	"context"
	"slices"
	"sync"

	"hive/internal/domain/repository"
)

type kvStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewKVStore creates an empty in-memory KVStore. Contents are lost on restart.
func NewKVStore() repository.KVStore {
	return &kvStore{entries: make(map[string][]byte)}
}

func (s *kvStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return slices.Clone(value), nil
}

func (s *kvStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = slices.Clone(value)

	return nil
}

func (s *kvStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}
