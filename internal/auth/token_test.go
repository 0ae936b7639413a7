package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
)

func newTestSigner(secret string, ttl time.Duration) *Signer {
	return NewSigner(&config.Config{JWTSecret: secret, JWTTTL: ttl})
}

func TestSigner_SignAndParse(t *testing.T) {
	s := newTestSigner("super-secret", time.Minute*15)

	tok, err := s.Sign(42, "user@example.com")
	require.NoError(t, err)

	claims, err := s.Parse(tok)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Minute*15), claims.ExpiresAt.Time, time.Minute)
}

func TestSigner_Parse(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		s := newTestSigner("secret", time.Minute)
		s.now = func() time.Time { return time.Now().Add(-time.Hour) }

		tok, err := s.Sign(1, "u1@example.com")
		require.NoError(t, err)

		s.now = time.Now
		_, err = s.Parse(tok)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := newTestSigner("right-secret", time.Hour).Sign(2, "u2@example.com")
		require.NoError(t, err)

		_, err = newTestSigner("wrong-secret", time.Hour).Parse(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := newTestSigner("k", time.Hour).Parse("not.a.jwt")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("unsigned", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "3",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = newTestSigner("k", time.Hour).Parse(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("no expiry", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "4"},
		}).SignedString([]byte("k"))
		require.NoError(t, err)

		_, err = newTestSigner("k", time.Hour).Parse(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})
}

func TestClaims_UserID(t *testing.T) {
	c := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
	_, err := c.UserID()
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
