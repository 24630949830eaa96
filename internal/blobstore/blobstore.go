package blobstore

import (
	"context"
	"errors"
)

// ErrKeyNotFound indicates the key has never been written (or was removed).
// Absence is an expected state: collections seed on it, the session layer
// treats it as "not logged in".
var ErrKeyNotFound = errors.New("blobstore: key not found")

// Store is the key-value substrate underlying all collections and the
// session record. Values are opaque serialized blobs.
type Store interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
	// Close releases driver resources.
	Close() error
}
