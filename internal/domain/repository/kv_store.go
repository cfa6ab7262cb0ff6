package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key was never set or was removed.
var ErrKeyNotFound = errors.New("key not found")

// Well-known keys of the local store.
const (
	KeyAwaitedPlaces = "awaitedPlaces"
	KeyToken         = "token"
	KeyUser          = "user"
)

// KeyValueStore is the device-local string store.
// Implementations give no cross-call atomicity; callers do read-modify-write themselves.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
