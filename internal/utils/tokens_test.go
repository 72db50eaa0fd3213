package utils

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestManager builds a manager without Redis; refresh falls back to
// signature-and-expiry checks, which is what these tests exercise.
func newTestManager(accessTTL, refreshTTL time.Duration) *TokenManager {
	return NewTokenManager("test-secret", nil, accessTTL, refreshTTL)
}

func TestCreateAndVerifyAccessToken(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	pair, err := m.CreateTokenPair(context.Background(), "user-123")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := m.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestVerifyAccessRejectsGarbage(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	_, err := m.VerifyAccess("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("one-secret", nil, time.Hour, 24*time.Hour)
	verifier := NewTokenManager("another-secret", nil, time.Hour, 24*time.Hour)

	pair, err := issuer.CreateTokenPair(context.Background(), "user-123")
	require.NoError(t, err)

	_, err = verifier.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessRejectsExpired(t *testing.T) {
	m := newTestManager(-time.Minute, 24*time.Hour)

	pair, err := m.CreateTokenPair(context.Background(), "user-123")
	require.NoError(t, err)

	_, err = m.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyAccessRejectsRefreshToken(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	pair, err := m.CreateTokenPair(context.Background(), "user-123")
	require.NoError(t, err)

	// A refresh token carries no user_id claim, so it must not pass as an
	// access token even though the signature is valid.
	_, err = m.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshIssuesNewPair(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	pair, err := m.CreateTokenPair(context.Background(), "user-123")
	require.NoError(t, err)

	next, err := m.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.VerifyAccess(next.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	m := newTestManager(time.Hour, -time.Minute)

	pair, err := m.CreateTokenPair(context.Background(), "user-123")
	require.NoError(t, err)

	_, err = m.Refresh(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsUnsignedToken(t *testing.T) {
	m := newTestManager(time.Hour, 24*time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = m.Refresh(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
