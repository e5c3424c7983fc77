// Package redis provides a Redis-backed storage.Store. Ledger-tick windows
// are translated into wall-clock TTLs, so the server's native expiry enforces
// the retention policy.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/stellarcredit/credit-service/internal/storage"
)

// allocateAttempts bounds the optimistic retry loop in Allocate.
const allocateAttempts = 5

// PTTL sentinels per the Redis protocol: -2 when the key does not exist, -1
// when it carries no expiry. go-redis returns them untouched.
const (
	pttlMissing = time.Duration(-2)
	pttlNoTTL   = time.Duration(-1)
)

// Config holds Redis connection parameters.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Store implements storage.Store on a Redis server.
type Store struct {
	client *goredis.Client
}

var _ storage.Store = (*Store)(nil)

// NewStore connects to Redis and verifies connectivity before returning.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return &Store{client: client}, nil
}

// Get implements storage.Store.
func (s *Store) Get(ctx context.Context, key storage.Key, out any) error {
	data, err := s.client.Get(ctx, key.Path()).Bytes()
	if errors.Is(err, goredis.Nil) {
		return storage.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

// Put implements storage.Store.
func (s *Store) Put(ctx context.Context, key storage.Key, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key.Path(), data, ttlFor(key)).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// PutIfAbsent implements storage.Store.
func (s *Store) PutIfAbsent(ctx context.Context, key storage.Key, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	set, err := s.client.SetNX(ctx, key.Path(), data, ttlFor(key)).Result()
	if err != nil {
		return fmt.Errorf("setnx %s: %w", key, err)
	}
	if !set {
		return storage.ErrAlreadyExists
	}
	return nil
}

// Renew implements storage.Store.
func (s *Store) Renew(ctx context.Context, key storage.Key, minRemaining, extendTo uint64) error {
	remaining, err := s.client.PTTL(ctx, key.Path()).Result()
	if err != nil {
		return fmt.Errorf("pttl %s: %w", key, err)
	}
	switch remaining {
	case pttlMissing:
		return storage.ErrNotFound
	case pttlNoTTL:
		// Persistent records carry no window to extend.
		return nil
	}
	if remaining >= storage.TicksToDuration(minRemaining) {
		return nil
	}
	// GT keeps whichever window is larger, so a concurrent write that armed a
	// fresher TTL is never shortened.
	if err := s.client.ExpireGT(ctx, key.Path(), storage.TicksToDuration(extendTo)).Err(); err != nil {
		return fmt.Errorf("expire %s: %w", key, err)
	}
	return nil
}

// Allocate implements storage.Store with WATCH-based optimistic locking on
// the counter key.
func (s *Store) Allocate(ctx context.Context, counter storage.Key, build func(next uint64) (storage.Key, any, error)) (uint64, error) {
	counterPath := counter.Path()

	for attempt := 0; attempt < allocateAttempts; attempt++ {
		var allocated uint64

		err := s.client.Watch(ctx, func(tx *goredis.Tx) error {
			current, err := tx.Get(ctx, counterPath).Uint64()
			if err != nil && !errors.Is(err, goredis.Nil) {
				return fmt.Errorf("get counter %s: %w", counter, err)
			}

			next := current + 1
			key, value, err := build(next)
			if err != nil {
				return err
			}

			counterData, err := json.Marshal(next)
			if err != nil {
				return fmt.Errorf("encode counter %s: %w", counter, err)
			}
			valueData, err := json.Marshal(value)
			if err != nil {
				return fmt.Errorf("encode record %s: %w", key, err)
			}

			_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
				pipe.Set(ctx, counterPath, counterData, 0)
				pipe.Set(ctx, key.Path(), valueData, ttlFor(key))
				return nil
			})
			if err != nil {
				return err
			}

			allocated = next
			return nil
		}, counterPath)

		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil {
			return 0, err
		}
		return allocated, nil
	}

	return 0, storage.ErrContention
}

// Close implements storage.Store.
func (s *Store) Close() error {
	return s.client.Close()
}

// ttlFor returns the wall-clock TTL of a key's retention class; zero means no
// expiry.
func ttlFor(key storage.Key) time.Duration {
	if key.Class() == storage.ClassScore {
		return storage.TicksToDuration(storage.ScoreTTL)
	}
	return 0
}
