// Package identity verifies bearer tokens issued by the external identity provider.
package identity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kailas-cloud/redrelief/internal/domain"
)

// Verification errors. Both wrap domain.ErrUnauthorized.
var (
	ErrTokenExpired = fmt.Errorf("token has expired: %w", domain.ErrUnauthorized)
	ErrTokenInvalid = fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
)

// Claims are the caller attributes carried by a verified token.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// HasRole reports whether the caller holds role.
func (c *Claims) HasRole(role string) bool {
	return c != nil && role != "" && c.Role == role
}

// Verifier validates signed tokens.
type Verifier struct {
	key  any
	opts []jwt.ParserOption
}

// NewHMACVerifier verifies HS256/HS384/HS512 tokens signed with secret.
func NewHMACVerifier(secret, issuer, audience string) *Verifier {
	return newVerifier([]byte(secret), []string{"HS256", "HS384", "HS512"}, issuer, audience)
}

// NewRSAVerifier verifies RS256 tokens against a PEM-encoded public key.
func NewRSAVerifier(publicKeyPEM []byte, issuer, audience string) (*Verifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}
	return newVerifier(key, []string{"RS256"}, issuer, audience), nil
}

// NewRSAVerifierFromFile reads the PEM public key at path.
func NewRSAVerifierFromFile(path, issuer, audience string) (*Verifier, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read public key %s: %w", path, err)
	}
	return NewRSAVerifier(data, issuer, audience)
}

func newVerifier(key any, methods []string, issuer, audience string) *Verifier {
	opts := []jwt.ParserOption{jwt.WithValidMethods(methods), jwt.WithExpirationRequired()}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}
	return &Verifier{key: key, opts: opts}
}

// Verify parses token and returns its claims.
func (v *Verifier) Verify(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	}, v.opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

type ctxKey struct{}

// ContextWithClaims stores verified claims in the context.
func ContextWithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the caller's claims, or nil for anonymous requests.
func FromContext(ctx context.Context) *Claims {
	c, _ := ctx.Value(ctxKey{}).(*Claims)
	return c
}
