package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KVStore.Get for a key that was never written
// or has been deleted.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the raw persistent store behind every feature collection. Values
// are opaque JSON documents. There is no versioning: the last Set wins.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// DocumentStore is a typed view over a KVStore.
type DocumentStore[T any] interface {
	// Get returns the value stored under key, or def when the key was never
	// written or holds a value that no longer decodes or validates.
	Get(ctx context.Context, key string, def T) (T, error)

	// Set validates value and replaces whatever is stored under key.
	Set(ctx context.Context, key string, value T) error

	// Delete removes key so that the next Get returns the default.
	Delete(ctx context.Context, key string) error
}
