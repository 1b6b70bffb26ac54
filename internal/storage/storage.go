// Package storage provides the durable key-value facility backing the
// catalog and booking stores.  Each store serializes its whole state to a
// string blob and writes it under a key it owns; the two stores never share
// keys.  Backends exist for Redis, MySQL and an in-memory map.  Writes are
// last-write-wins with no versioning, so two processes mutating the same
// key concurrently will clobber each other.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value has ever been written
// under the requested key.  Callers treat this as a normal first-run
// condition, not a failure.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV is the minimal contract the stores require from durable storage.
// Implementations must be safe for concurrent use.
type KV interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}
