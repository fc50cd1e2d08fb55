package auth

import (
	"testing"
	"time"

	"wedump/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_Issue(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	issuer := NewTokenIssuer("test_secret", "wedump-test", time.Hour, func() time.Time { return now })

	token, expiresAt, err := issuer.Issue(&entity.Identity{UID: "u1", Email: "ann@x.io", DisplayName: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims := &IdentityClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte("test_secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	require.NoError(t, err)
	assert.Equal(t, jwt.SigningMethodHS256, parsed.Method)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "wedump-test", claims.Issuer)
	assert.Equal(t, "ann@x.io", claims.Email)
	assert.Equal(t, "Ann", claims.Name)

	assert.True(t, ExpiryOf(token).Equal(expiresAt))
}

func TestTokenIssuer_RandomSecret(t *testing.T) {
	now := time.Now()
	first := NewTokenIssuer("", "wedump-test", time.Hour, func() time.Time { return now })
	second := NewTokenIssuer("", "wedump-test", time.Hour, func() time.Time { return now })

	a, _, err := first.Issue(&entity.Identity{UID: "u1"})
	require.NoError(t, err)
	b, _, err := second.Issue(&entity.Identity{UID: "u1"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestExpiryOf(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("any"))
	require.NoError(t, err)

	assert.True(t, ExpiryOf(token).Equal(exp))
	assert.True(t, ExpiryOf("not-a-token").IsZero())

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "u1"}).SignedString([]byte("any"))
	require.NoError(t, err)
	assert.True(t, ExpiryOf(noExp).IsZero())
}
