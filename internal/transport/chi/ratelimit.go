package chi

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/redrelief/internal/logger"
	"github.com/kailas-cloud/redrelief/internal/metrics"
	"github.com/kailas-cloud/redrelief/internal/repository/ratelimit"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

// Limiter counts requests per client key.
type Limiter interface {
	Hit(ctx context.Context, client string) (ratelimit.Decision, error)
}

// clientIP is the remote host without port. Forwarding headers are not trusted.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit enforces a fixed-window limit per client IP and sets RateLimit-* headers.
// Limiter failures are logged and the request is let through. A nil limiter disables it.
func RateLimit(l Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := l.Hit(r.Context(), clientIP(r))
			if err != nil {
				metrics.RateLimitErrorsTotal.Inc()
				logger.FromContext(r.Context()).Warn("rate limiter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			resetIn := int(time.Until(d.Reset).Seconds())
			if resetIn < 0 {
				resetIn = 0
			}
			h := w.Header()
			h.Set("RateLimit-Limit", strconv.Itoa(d.Limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(d.Remaining))
			h.Set("RateLimit-Reset", strconv.Itoa(resetIn))

			if !d.Allowed {
				metrics.RateLimitedTotal.Inc()
				h.Set("Retry-After", strconv.Itoa(resetIn))
				writeError(w, http.StatusTooManyRequests, rateLimitMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
