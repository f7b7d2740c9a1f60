// Package domain contains the core business entities and ports.
package domain

import (
	"context"
	"errors"
)

// ErrBlobNotFound indicates that the requested blob does not exist in the
// backend. Adapters wrap their native not-found conditions with this value.
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is the port for whole-blob persistence. A blob is read and
// written in its entirety; there are no partial updates.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, body []byte) error
}
