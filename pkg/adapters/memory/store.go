package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/folio/pkg/ports"
)

// ErrQuotaExceeded is returned when a Put would grow the store past its quota.
var ErrQuotaExceeded = fmt.Errorf("memory store: %w", ports.ErrQuotaExceeded)

// Store implements ports.BlobStore in memory.
// Safe for concurrent use.
type Store struct {
	data  map[string][]byte
	size  int
	quota int
	mu    sync.RWMutex
}

type Option func(*Store)

// WithQuota limits the total bytes held across all keys. Zero means unlimited.
func WithQuota(bytes int) Option {
	return func(s *Store) {
		s.quota = bytes
	}
}

// NewStore creates a new in-memory store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		data: make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns a copy of the blob so callers can't mutate store state.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, ports.ErrBlobNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value. A rejected Put leaves the previous value in place.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.size - len(s.data[key]) + len(value)
	if s.quota > 0 && next > s.quota {
		return ErrQuotaExceeded
	}
	s.data[key] = append([]byte(nil), value...)
	s.size = next
	return nil
}

// Delete removes the blob.
func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.size -= len(s.data[key])
	delete(s.data, key)
	return nil
}

// Size returns the total bytes currently held.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}
