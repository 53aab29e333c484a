package ports

import (
	"context"
	"errors"
)

// ErrBlobNotFound is returned by BlobStore.Get when the key does not exist.
var ErrBlobNotFound = errors.New("blob not found")

// ErrQuotaExceeded is returned by BlobStore.Put when the backend is out of space.
var ErrQuotaExceeded = errors.New("blob store quota exceeded")

// BlobStore persists opaque blobs under string keys.
// Put replaces the whole value in one call; a failed Put must leave the previous value intact.
type BlobStore interface {
	// Get retrieves the blob stored under key.
	// Returns ErrBlobNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
