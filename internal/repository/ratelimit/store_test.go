package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/kailas-cloud/redrelief/internal/db"
)

type mockStore struct {
	counters map[string]int64
	ttls     map[string]time.Duration
	expires  int
	incrErr  error
}

func newMockStore() *mockStore {
	return &mockStore{counters: map[string]int64{}, ttls: map[string]time.Duration{}}
}

func (m *mockStore) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.counters[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return []byte(strconv.FormatInt(v, 10)), nil
}

func (m *mockStore) IncrBy(_ context.Context, key string, val int64) (int64, error) {
	if m.incrErr != nil {
		return 0, m.incrErr
	}
	m.counters[key] += val
	return m.counters[key], nil
}

func (m *mockStore) Expire(_ context.Context, key string, ttl time.Duration, nx bool) error {
	m.expires++
	if _, ok := m.ttls[key]; ok && nx {
		return nil
	}
	m.ttls[key] = ttl
	return nil
}

func fixedClock(t time.Time) func() time.Time { return func() time.Time { return t } }

func TestHit_WithinAndOverLimit(t *testing.T) {
	ms := newMockStore()
	s := New(ms, "rr", 2, 15*time.Minute)
	now := time.Date(2025, 3, 1, 10, 7, 0, 0, time.UTC)
	s.now = fixedClock(now)
	ctx := context.Background()

	for i, want := range []struct {
		allowed   bool
		remaining int
	}{{true, 1}, {true, 0}, {false, 0}} {
		d, err := s.Hit(ctx, "10.0.0.1")
		if err != nil {
			t.Fatalf("hit %d: %v", i, err)
		}
		if d.Allowed != want.allowed || d.Remaining != want.remaining {
			t.Errorf("hit %d = %+v, want allowed=%v remaining=%d", i, d, want.allowed, want.remaining)
		}
		if !d.Reset.Equal(time.Date(2025, 3, 1, 10, 15, 0, 0, time.UTC)) {
			t.Errorf("reset = %v", d.Reset)
		}
	}
	if ms.expires != 1 {
		t.Errorf("expire calls = %d, want 1", ms.expires)
	}
}

func TestHit_SeparateClientsAndWindows(t *testing.T) {
	ms := newMockStore()
	s := New(ms, "rr", 1, time.Minute)
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = fixedClock(now)
	ctx := context.Background()

	if d, _ := s.Hit(ctx, "a"); !d.Allowed {
		t.Fatal("first hit for a must pass")
	}
	if d, _ := s.Hit(ctx, "b"); !d.Allowed {
		t.Fatal("clients are counted separately")
	}
	s.now = fixedClock(now.Add(time.Minute))
	if d, _ := s.Hit(ctx, "a"); !d.Allowed {
		t.Fatal("new window must reset the count")
	}
}

func TestHit_StoreError(t *testing.T) {
	ms := newMockStore()
	ms.incrErr = errors.New("conn refused")
	s := New(ms, "rr", 1, time.Minute)
	if _, err := s.Hit(context.Background(), "a"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCount(t *testing.T) {
	ms := newMockStore()
	s := New(ms, "rr", 5, time.Minute)
	s.now = fixedClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	if n, err := s.Count(ctx, "a"); err != nil || n != 0 {
		t.Fatalf("Count before hits = %d, %v", n, err)
	}
	_, _ = s.Hit(ctx, "a")
	_, _ = s.Hit(ctx, "a")
	if n, err := s.Count(ctx, "a"); err != nil || n != 2 {
		t.Errorf("Count = %d, %v", n, err)
	}
}
