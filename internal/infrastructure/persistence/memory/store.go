// Package memory provides an in-process storage.Store for tests and
// single-node deployments. Expiry is driven entirely by the injected ledger
// clock, which makes TTL behavior deterministic under a ManualClock.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/stellarcredit/credit-service/internal/storage"
)

// record is one stored document. expiresAt is the ledger sequence the record
// dies at; zero means it never expires.
type record struct {
	data      []byte
	expiresAt uint64
}

// Store is a mutex-guarded in-memory implementation of storage.Store. Values
// round-trip through JSON so marshaling behavior matches the network
// backends.
type Store struct {
	mu    sync.Mutex
	clock storage.Clock
	items map[string]record
}

var _ storage.Store = (*Store)(nil)

// NewStore creates an empty in-memory store on the given clock.
func NewStore(clock storage.Clock) *Store {
	return &Store{
		clock: clock,
		items: make(map[string]record),
	}
}

// Get implements storage.Store.
func (s *Store) Get(_ context.Context, key storage.Key, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.live(key)
	if !ok {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(rec.data, out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

// Put implements storage.Store.
func (s *Store) Put(_ context.Context, key storage.Key, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := encode(key, value)
	if err != nil {
		return err
	}
	s.commit(key, data)
	return nil
}

// PutIfAbsent implements storage.Store.
func (s *Store) PutIfAbsent(_ context.Context, key storage.Key, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.live(key); ok {
		return storage.ErrAlreadyExists
	}
	data, err := encode(key, value)
	if err != nil {
		return err
	}
	s.commit(key, data)
	return nil
}

// Renew implements storage.Store.
func (s *Store) Renew(_ context.Context, key storage.Key, minRemaining, extendTo uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.live(key)
	if !ok {
		return storage.ErrNotFound
	}
	if rec.expiresAt == 0 {
		// Persistent records carry no window to extend.
		return nil
	}

	now := s.clock.Sequence()
	if rec.expiresAt-now >= minRemaining {
		return nil
	}
	if candidate := now + extendTo; candidate > rec.expiresAt {
		rec.expiresAt = candidate
		s.items[key.Path()] = rec
	}
	return nil
}

// Allocate implements storage.Store. The mutex serializes allocations, so a
// single attempt always suffices and ErrContention is never returned.
func (s *Store) Allocate(_ context.Context, counter storage.Key, build func(next uint64) (storage.Key, any, error)) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var current uint64
	if rec, ok := s.live(counter); ok {
		if err := json.Unmarshal(rec.data, &current); err != nil {
			return 0, fmt.Errorf("decode counter %s: %w", counter, err)
		}
	}

	next := current + 1
	key, value, err := build(next)
	if err != nil {
		return 0, err
	}

	// Encode both documents before touching the map so a failure commits
	// neither.
	counterData, err := encode(counter, next)
	if err != nil {
		return 0, err
	}
	valueData, err := encode(key, value)
	if err != nil {
		return 0, err
	}

	s.commit(counter, counterData)
	s.commit(key, valueData)
	return next, nil
}

// Close implements storage.Store.
func (s *Store) Close() error { return nil }

// ---------------------------------------------------------------------------
// helpers (caller must hold mu)
// ---------------------------------------------------------------------------

// live returns the record at key when it has not expired, dropping it
// otherwise.
func (s *Store) live(key storage.Key) (record, bool) {
	rec, ok := s.items[key.Path()]
	if !ok {
		return record{}, false
	}
	if rec.expiresAt != 0 && s.clock.Sequence() >= rec.expiresAt {
		delete(s.items, key.Path())
		return record{}, false
	}
	return rec, true
}

// commit writes data under key, arming the full TTL window for expiring
// classes.
func (s *Store) commit(key storage.Key, data []byte) {
	rec := record{data: data}
	if key.Class() == storage.ClassScore {
		rec.expiresAt = s.clock.Sequence() + storage.ScoreTTL
	}
	s.items[key.Path()] = rec
}

func encode(key storage.Key, value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode record %s: %w", key, err)
	}
	return data, nil
}
