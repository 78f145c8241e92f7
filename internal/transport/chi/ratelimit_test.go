package chi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/redrelief/internal/metrics"
	"github.com/kailas-cloud/redrelief/internal/repository/ratelimit"
)

type fakeLimiter struct {
	decision ratelimit.Decision
	err      error
	clients  []string
}

func (f *fakeLimiter) Hit(_ context.Context, client string) (ratelimit.Decision, error) {
	f.clients = append(f.clients, client)
	return f.decision, f.err
}

func TestRateLimit_Allowed_SetsHeaders(t *testing.T) {
	l := &fakeLimiter{decision: ratelimit.Decision{
		Allowed: true, Limit: 100, Remaining: 99, Reset: time.Now().Add(10 * time.Minute),
	}}
	h := RateLimit(l)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/search", http.NoBody)
	req.RemoteAddr = "203.0.113.7:51234"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	if got := rr.Header().Get("RateLimit-Limit"); got != "100" {
		t.Errorf("RateLimit-Limit: %q", got)
	}
	if got := rr.Header().Get("RateLimit-Remaining"); got != "99" {
		t.Errorf("RateLimit-Remaining: %q", got)
	}
	if len(l.clients) != 1 || l.clients[0] != "203.0.113.7" {
		t.Errorf("client key: %v", l.clients)
	}
}

func TestRateLimit_Denied_429(t *testing.T) {
	l := &fakeLimiter{decision: ratelimit.Decision{Limit: 1, Reset: time.Now().Add(time.Minute)}}
	before := testutil.ToFloat64(metrics.RateLimitedTotal)

	rr := httptest.NewRecorder()
	RateLimit(l)(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", http.NoBody))

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status: got %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("missing Retry-After")
	}
	if got := testutil.ToFloat64(metrics.RateLimitedTotal) - before; got != 1 {
		t.Errorf("rate limited counter delta: %v", got)
	}
}

func TestRateLimit_StoreError_FailsOpen(t *testing.T) {
	l := &fakeLimiter{err: errors.New("redis down")}
	before := testutil.ToFloat64(metrics.RateLimitErrorsTotal)

	rr := httptest.NewRecorder()
	RateLimit(l)(okHandler()).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if got := testutil.ToFloat64(metrics.RateLimitErrorsTotal) - before; got != 1 {
		t.Errorf("error counter delta: %v", got)
	}
}

func TestRateLimit_WiredOnAPI(t *testing.T) {
	l := &fakeLimiter{decision: ratelimit.Decision{Limit: 1, Reset: time.Now()}}
	env := newTestEnv(t, Options{Limiter: l}, true)

	code, out := env.do(t, http.MethodGet, "/api/search/cities", nil)
	if code != http.StatusTooManyRequests || out["error"] != rateLimitMessage {
		t.Errorf("got %d %v", code, out)
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rr := httptest.NewRecorder()
	env.handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Errorf("/metrics must not be rate limited: %d", rr.Code)
	}
}
