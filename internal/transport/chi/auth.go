package chi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/redrelief/internal/identity"
	"github.com/kailas-cloud/redrelief/internal/logger"
)

const bearerPrefix = "Bearer "

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(bearerPrefix):])
	return token, token != ""
}

// OptionalAuth attaches verified claims to the request context when a valid
// bearer token is present. Missing or invalid tokens pass through anonymously.
// A nil verifier disables the middleware.
func OptionalAuth(v *identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if v == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := v.Verify(token)
			if err != nil {
				logger.FromContext(r.Context()).Debug("ignoring unverifiable token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(identity.ContextWithClaims(r.Context(), claims)))
		})
	}
}

// RequireRole rejects requests without verified claims (401) or without role (403).
// It relies on OptionalAuth having run earlier in the chain.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := identity.FromContext(r.Context())
			if claims == nil {
				writeError(w, http.StatusUnauthorized, "Access token required")
				return
			}
			if !claims.HasRole(role) {
				writeError(w, http.StatusForbidden, "Admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
