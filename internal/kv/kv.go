// Package kv provides the persistent key-value backing store for the
// offline storage layer. Values are opaque bytes; record encoding and
// expiry live one layer up.
package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: not found")

// Store is the minimal contract the storage facade needs from a backing
// store. Implementations must be safe for concurrent use by multiple
// goroutines.
type Store interface {
	// Get returns the value for key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys returns all keys starting with prefix. An empty prefix
	// returns every key.
	Keys(ctx context.Context, prefix string) ([]string, error)
	// Close releases any resources held by the store.
	Close() error
}
