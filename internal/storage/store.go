package storage

import (
	"context"
	"errors"
)

// Storage error taxonomy. Backends translate driver errors onto these
// sentinels; callers test them with errors.Is.
var (
	// ErrNotFound signals the key holds no live record.
	ErrNotFound = errors.New("storage: record not found")

	// ErrAlreadyExists signals PutIfAbsent lost to an existing live record.
	ErrAlreadyExists = errors.New("storage: record already exists")

	// ErrContention signals an optimistic backend exhausted its allocation retries.
	ErrContention = errors.New("storage: counter contention")
)

// Store is the typed record store the credit service persists through.
//
// Backends marshal values as JSON documents; Get unmarshals into out, which
// must be a non-nil pointer. Writes are atomic per key: a reader observes
// either the previous record or the new one, never a partial state. Records
// of ClassScore expire ScoreTTL ticks after their last write or renewal;
// persistent classes never expire.
type Store interface {
	// Get loads the record at key into out. ErrNotFound when absent or
	// expired.
	Get(ctx context.Context, key Key, out any) error

	// Put stores value at key, overwriting any previous record. Expiring
	// classes are re-armed with their full TTL window on every write.
	Put(ctx context.Context, key Key, value any) error

	// PutIfAbsent stores value only when key holds no live record, and
	// returns ErrAlreadyExists otherwise.
	PutIfAbsent(ctx context.Context, key Key, value any) error

	// Renew extends the record's TTL to extendTo ticks from now when fewer
	// than minRemaining ticks are left. The window never shrinks, and
	// persistent records are left untouched. ErrNotFound when absent or
	// expired.
	Renew(ctx context.Context, key Key, minRemaining, extendTo uint64) error

	// Allocate atomically increments the counter record at counter (starting
	// from 0 when absent) and persists the record built from the allocated
	// value. No two calls observe the same value, and the counter update and
	// the built record commit together or not at all. A build error aborts
	// the allocation with nothing committed. Optimistic backends return
	// ErrContention after bounded retries; build must therefore be
	// side-effect free, as it may run once per attempt.
	Allocate(ctx context.Context, counter Key, build func(next uint64) (Key, any, error)) (uint64, error)

	// Close releases backend resources.
	Close() error
}
