package repositories

import (
	"context"
	"fmt"
	"sync"
)

// CartStorage is the durable key/value store the cart service persists
// through. Read reports (value, found, error); a missing key is not an error.
type CartStorage interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// StorageError wraps a backend failure so callers can tell "the cart could
// not be saved" apart from domain errors.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("cart storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// MemoryCartStorage keeps cart payloads in process memory. It is the default
// backend for the demo and the fake used by the service tests.
type MemoryCartStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{data: make(map[string]string)}
}

func (s *MemoryCartStorage) Read(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *MemoryCartStorage) Write(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryCartStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
