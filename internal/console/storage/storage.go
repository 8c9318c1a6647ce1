// Package storage provides the durable key/value store the console uses to
// persist session fields across runs. The Storage interface is small on
// purpose so tests can substitute an in-memory implementation.
package storage

import "context"

// Storage is a string key/value store.
//
// Get returns common.ErrNotFound (wrapped) when the key is absent.
// Set overwrites an existing value. Remove of an absent key is a no-op.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
