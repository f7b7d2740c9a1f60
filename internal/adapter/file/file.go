// Package file implements the blob store over a local directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"weightledger/internal/domain"
)

// Store maps blob keys to files under a base directory. Get reads the
// whole file; Put overwrites the whole file.
type Store struct {
	dir string
}

// New creates a Store rooted at dir. The directory is created on first
// write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

var _ domain.BlobStore = (*Store)(nil)

// Get reads the file for key in full.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", key, domain.ErrBlobNotFound)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Put overwrites the file for key with body.
func (s *Store) Put(ctx context.Context, key string, body []byte) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, key), body, 0o600)
}
