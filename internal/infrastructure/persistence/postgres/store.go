// Package postgres provides a PostgreSQL-backed storage.Store. Records live
// in a single key/value table with an optional expiry sequence; liveness is
// evaluated against the injected ledger clock on every read, so expired rows
// are invisible even before they are vacuumed.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stellarcredit/credit-service/internal/storage"
	pkgpostgres "github.com/stellarcredit/credit-service/pkg/postgres"
)

// Store implements storage.Store on a PostgreSQL pool.
type Store struct {
	pool  *pgxpool.Pool
	clock storage.Clock
}

var _ storage.Store = (*Store)(nil)

// NewStore wraps an existing pool. The store takes ownership: Close closes
// the pool.
func NewStore(pool *pgxpool.Pool, clock storage.Clock) *Store {
	return &Store{pool: pool, clock: clock}
}

// Get implements storage.Store.
func (s *Store) Get(ctx context.Context, key storage.Key, out any) error {
	query := `
		SELECT value
		FROM credit_records
		WHERE key = $1 AND (expires_at_seq IS NULL OR expires_at_seq > $2)
	`
	var data []byte
	err := s.pool.QueryRow(ctx, query, key.Path(), s.now()).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("select %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

// Put implements storage.Store.
func (s *Store) Put(ctx context.Context, key storage.Key, value any) error {
	return s.upsert(ctx, s.pool, key, value)
}

// PutIfAbsent implements storage.Store. An expired row does not count as
// present: the write revives it in place.
func (s *Store) PutIfAbsent(ctx context.Context, key storage.Key, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	query := `
		INSERT INTO credit_records AS r (key, value, expires_at_seq)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at_seq = EXCLUDED.expires_at_seq
		WHERE r.expires_at_seq IS NOT NULL AND r.expires_at_seq <= $4
	`
	tag, err := s.pool.Exec(ctx, query, key.Path(), data, s.expiryFor(key), s.now())
	if err != nil {
		return fmt.Errorf("insert %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrAlreadyExists
	}
	return nil
}

// Renew implements storage.Store. One conditional UPDATE covers all cases:
// persistent rows and comfortable windows pass through unchanged, and
// GREATEST guards against shrinking.
func (s *Store) Renew(ctx context.Context, key storage.Key, minRemaining, extendTo uint64) error {
	query := `
		UPDATE credit_records
		SET expires_at_seq = CASE
			WHEN expires_at_seq IS NULL THEN NULL
			WHEN expires_at_seq - $2 < $3 THEN GREATEST(expires_at_seq, $2 + $4)
			ELSE expires_at_seq
		END
		WHERE key = $1 AND (expires_at_seq IS NULL OR expires_at_seq > $2)
	`
	tag, err := s.pool.Exec(ctx, query, key.Path(), s.now(), int64(minRemaining), int64(extendTo))
	if err != nil {
		return fmt.Errorf("renew %s: %w", key, err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Allocate implements storage.Store. The counter upsert takes a row lock, so
// concurrent allocations serialize on it; there is no optimistic retry and
// ErrContention is never returned.
func (s *Store) Allocate(ctx context.Context, counter storage.Key, build func(next uint64) (storage.Key, any, error)) (uint64, error) {
	var allocated uint64

	err := pkgpostgres.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		counterQuery := `
			INSERT INTO credit_records AS r (key, value, expires_at_seq)
			VALUES ($1, to_jsonb(1::bigint), NULL)
			ON CONFLICT (key) DO UPDATE
			SET value = to_jsonb(((r.value #>> '{}')::bigint) + 1)
			RETURNING (value #>> '{}')::bigint
		`
		var next int64
		if err := tx.QueryRow(ctx, counterQuery, counter.Path()).Scan(&next); err != nil {
			return fmt.Errorf("increment counter %s: %w", counter, err)
		}

		key, value, err := build(uint64(next))
		if err != nil {
			return err
		}
		if err := s.upsert(ctx, tx, key, value); err != nil {
			return err
		}

		allocated = uint64(next)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return allocated, nil
}

// Close implements storage.Store.
func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// upsert writes a record through q, which is either the pool or the
// transaction an allocation runs in.
func (s *Store) upsert(ctx context.Context, q pkgpostgres.Querier, key storage.Key, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	query := `
		INSERT INTO credit_records (key, value, expires_at_seq)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, expires_at_seq = EXCLUDED.expires_at_seq
	`
	if _, err := q.Exec(ctx, query, key.Path(), data, s.expiryFor(key)); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *Store) now() int64 {
	return int64(s.clock.Sequence())
}

// expiryFor returns the expiry sequence of a fresh write, or nil for
// persistent classes.
func (s *Store) expiryFor(key storage.Key) any {
	if key.Class() == storage.ClassScore {
		return s.now() + int64(storage.ScoreTTL)
	}
	return nil
}
