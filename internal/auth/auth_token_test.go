package auth_test

import (
	"testing"
	"time"

	"optitrack/internal/auth"
	autherrors "optitrack/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager_Lifetime(t *testing.T) {
	issuedAt := time.Date(2025, 1, 6, 8, 0, 0, 0, time.UTC)
	m := auth.NewTokenManager("secret", 0).WithClock(func() time.Time { return issuedAt })

	token, expiresAt, err := m.Issue("john@optitrack.com", "EMPLOYEE")
	assert.NoError(t, err)
	assert.Equal(t, issuedAt.Add(24*time.Hour), expiresAt)

	t.Run("valid just before expiry", func(t *testing.T) {
		at := issuedAt.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		claims, err := m.WithClock(func() time.Time { return at }).Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, "john@optitrack.com", claims.Subject)
		assert.Equal(t, "EMPLOYEE", claims.Role)
	})

	t.Run("expired just after", func(t *testing.T) {
		at := issuedAt.Add(24*time.Hour + time.Second)
		_, err := m.WithClock(func() time.Time { return at }).Parse(token)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})
}

func TestTokenManager_Rejects(t *testing.T) {
	m := auth.NewTokenManager("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		token, _, _ := auth.NewTokenManager("other", time.Hour).Issue("a@b.com", "ADMIN")
		_, err := m.Parse(token)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("unsigned token", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub": "a@b.com",
			"exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		_, err := m.Parse(token)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("missing expiry", func(t *testing.T) {
		token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "a@b.com"}).SignedString([]byte("secret"))
		_, err := m.Parse(token)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
