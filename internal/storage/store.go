package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when the key has never been written.
// Services treat it as an empty collection.
var ErrNotFound = errors.New("storage: key not found")

// Store is a synchronous string-keyed document store. Each collection lives
// as a single JSON document under a fixed key; a write replaces the whole
// document, so concurrent writers are last-write-wins.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
