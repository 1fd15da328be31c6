// Package store holds the durable key/value backends used by the front end's
// timestamp-gated cache.
package store

import "context"

// Store is a string key/value store. SetMany and Delete apply all keys as one
// unit so a payload and its timestamp never drift apart.
type Store interface {
	// GetMany returns the values of the keys that exist. Missing keys are
	// absent from the map, never an error.
	GetMany(ctx context.Context, keys ...string) (map[string]string, error)
	SetMany(ctx context.Context, kv map[string]string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}
