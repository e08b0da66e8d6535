package storage

import (
	"context"
	"errors"
	"sync"
)

// MemoryKV is a map-backed KV for tests and embedded hosts. A non-nil
// FailWrites error makes every Set fail with it, which lets tests exercise
// the store's persistence-failure paths.
type MemoryKV struct {
	mu         sync.Mutex
	values     map[string]string
	FailWrites error
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (s *MemoryKV) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryKV) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.values[key] = value
	return nil
}

func (s *MemoryKV) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *MemoryKV) Close() error {
	return nil
}

// ErrWriteRefused is a convenience error for FailWrites in tests.
var ErrWriteRefused = errors.New("write refused")
