// Package visitor persists portal visit counters (INCR + GET with TTL on
// daily keys). The dashboard only needs totals, so the counters are plain
// integers keyed by day, not per-visitor rows.
package visitor

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/ngdp/geoportal/internal/db/redis"
)

const (
	totalKey  = "geoportal:visits:total"
	dayPrefix = "geoportal:visits:day:"

	// dailyTTL keeps ~13 months of per-day counters around for the
	// dashboard's year-over-year view.
	dailyTTL = 400 * 24 * time.Hour
)

// store is the consumer interface for counter operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) error
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Store implements usecase/stats.Repository.
type Store struct {
	store store
	now   func() time.Time
}

// New creates a visitor counter store.
func New(s store) *Store {
	return &Store{store: s, now: time.Now}
}

// Track records one visit: increments the running total and today's key.
func (s *Store) Track(ctx context.Context) error {
	if err := s.store.IncrBy(ctx, totalKey, 1); err != nil {
		return fmt.Errorf("visits INCRBY total: %w", err)
	}

	key := s.dayKey(s.now())
	if err := s.store.IncrBy(ctx, key, 1); err != nil {
		return fmt.Errorf("visits INCRBY %s: %w", key, err)
	}
	// TTL only if the key has no expiry yet (NX - not reset on repeat).
	if err := s.store.Expire(ctx, key, dailyTTL, true); err != nil {
		return fmt.Errorf("visits EXPIRE %s: %w", key, err)
	}
	return nil
}

// Total returns the all-time visit count. Missing key counts as zero.
func (s *Store) Total(ctx context.Context) (int64, error) {
	return s.counter(ctx, totalKey)
}

// Today returns today's visit count. Missing key counts as zero.
func (s *Store) Today(ctx context.Context) (int64, error) {
	return s.counter(ctx, s.dayKey(s.now()))
}

func (s *Store) counter(ctx context.Context, key string) (int64, error) {
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("visits GET %s: %w", key, err)
	}
	val, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("visits GET %s parse: %w", key, err)
	}
	return val, nil
}

func (s *Store) dayKey(t time.Time) string {
	return dayPrefix + t.UTC().Format("2006-01-02")
}
