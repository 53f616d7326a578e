// Package kv defines the byte-oriented key-value substrate collections are
// persisted to. Concrete substrates live in the dirkv, boltkv and memkv
// subpackages.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value was ever written for a key.
var ErrNotFound = errors.New("kv: key not found")

// Store is a persistent byte-oriented key-value store. A whole-collection
// blob occupies a single key; Set replaces the previous value entirely.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
