package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/kailas-cloud/redrelief/internal/db"
)

// store is the consumer interface for counter operations (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration, nx bool) error
}

// Decision is the outcome of one Hit.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Store is a fixed-window request counter on top of DB (INCRBY + EXPIRE NX).
type Store struct {
	store  store
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
}

// New creates a fixed-window limiter allowing limit hits per window per client.
func New(s store, prefix string, limit int, window time.Duration) *Store {
	return &Store{
		store:  s,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
	}
}

// Hit counts one request for client and reports whether it is within the limit.
func (s *Store) Hit(ctx context.Context, client string) (Decision, error) {
	start := s.windowStart()
	reset := start.Add(s.window)
	key := s.key(client, start)

	n, err := s.store.IncrBy(ctx, key, 1)
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit INCRBY %s: %w", key, err)
	}

	// TTL only on the first hit of the window (NX, not reset on repeat).
	if n == 1 {
		if err := s.store.Expire(ctx, key, s.window, true); err != nil {
			return Decision{}, fmt.Errorf("ratelimit EXPIRE %s: %w", key, err)
		}
	}

	remaining := s.limit - int(n)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   int(n) <= s.limit,
		Limit:     s.limit,
		Remaining: remaining,
		Reset:     reset,
	}, nil
}

// Count returns the hits recorded for client in the current window. Returns 0 if none.
func (s *Store) Count(ctx context.Context, client string) (int64, error) {
	key := s.key(client, s.windowStart())
	data, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("ratelimit GET %s: %w", key, err)
	}

	val, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ratelimit GET %s parse: %w", key, err)
	}
	return val, nil
}

func (s *Store) windowStart() time.Time {
	return s.now().Truncate(s.window)
}

// key follows {prefix}:ratelimit:{client}:{window start unix}.
func (s *Store) key(client string, start time.Time) string {
	return s.prefix + ":ratelimit:" + client + ":" + strconv.FormatInt(start.Unix(), 10)
}
