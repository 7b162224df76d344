package records

import "context"

// Store is the persistent key/value backend holding the named records.
//
// Get returns (nil, nil) when the key is absent. Set overwrites the whole
// value. Delete of an absent key is not an error. Atomic runs fn against a
// Store whose writes are committed together when fn returns nil and
// discarded otherwise.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Atomic(ctx context.Context, fn func(ctx context.Context, s Store) error) error
}
