package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kailas-cloud/redrelief/internal/domain"
)

const secret = "test-signing-key"

func sign(t *testing.T, method jwt.SigningMethod, key any, c Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, c).SignedString(key)
	require.NoError(t, err)
	return s
}

func claims(expiresIn time.Duration) Claims {
	return Claims{
		Email: "ops@example.org",
		Role:  "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    "test-issuer",
			Audience:  jwt.ClaimStrings{"redrelief"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func Test_Verify_HMAC(t *testing.T) {
	v := NewHMACVerifier(secret, "test-issuer", "redrelief")
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), claims(time.Hour))

	c, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Subject)
	assert.Equal(t, "ops@example.org", c.Email)
	assert.True(t, c.HasRole("admin"))
	assert.False(t, c.HasRole("blood_bank"))
}

func Test_Verify_Expired(t *testing.T) {
	v := NewHMACVerifier(secret, "", "")
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), claims(-time.Hour))

	_, err := v.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func Test_Verify_Invalid(t *testing.T) {
	v := NewHMACVerifier(secret, "test-issuer", "redrelief")

	cases := map[string]string{
		"garbage":      "invalid-token-string",
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), claims(time.Hour)),
		"wrong issuer": func() string {
			c := claims(time.Hour)
			c.Issuer = "someone-else"
			return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
		}(),
		"wrong audience": func() string {
			c := claims(time.Hour)
			c.Audience = jwt.ClaimStrings{"other-api"}
			return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
		}(),
		"no expiry": func() string {
			c := claims(time.Hour)
			c.ExpiresAt = nil
			return sign(t, jwt.SigningMethodHS256, []byte(secret), c)
		}(),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(token)
			require.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func Test_Verify_RSA(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	path := filepath.Join(t.TempDir(), "pub.pem")
	require.NoError(t, os.WriteFile(path, pemBytes, 0o600))

	v, err := NewRSAVerifierFromFile(path, "test-issuer", "")
	require.NoError(t, err)

	c, err := v.Verify(sign(t, jwt.SigningMethodRS256, key, claims(time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Subject)

	// An HMAC token must not pass an RSA verifier.
	_, err = v.Verify(sign(t, jwt.SigningMethodHS256, []byte(secret), claims(time.Hour)))
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func Test_NewRSAVerifier_BadPEM(t *testing.T) {
	_, err := NewRSAVerifier([]byte("not a key"), "", "")
	require.Error(t, err)
}

func Test_Context(t *testing.T) {
	assert.Nil(t, FromContext(context.Background()))

	c := &Claims{Role: "admin"}
	ctx := ContextWithClaims(context.Background(), c)
	assert.Same(t, c, FromContext(ctx))

	var anon *Claims
	assert.False(t, anon.HasRole("admin"))
}
