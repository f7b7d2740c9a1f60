// Package memory implements an in-memory blob store for development and
// testing.
package memory

import (
	"context"
	"fmt"
	"sync"

	"weightledger/internal/domain"
)

// Store holds blobs in a mutex-guarded map.
type Store struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{blobs: make(map[string][]byte)}
}

var _ domain.BlobStore = (*Store)(nil)

// Get returns a copy of the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.blobs[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrBlobNotFound)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// Put stores a copy of body under key, replacing any previous blob.
func (s *Store) Put(ctx context.Context, key string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := make([]byte, len(body))
	copy(b, body)
	s.blobs[key] = b
	return nil
}
