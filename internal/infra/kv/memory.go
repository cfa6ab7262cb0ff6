// Package kv holds the key-value backends behind favorites and credentials.
package kv

import (
	"context"
	"sync"

	"placebook/internal/domain/repository"
)

// memoryStore keeps values in process memory. It is the default backend and
// the one tests use.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() repository.KeyValueStore {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value

	return nil
}

func (s *memoryStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
