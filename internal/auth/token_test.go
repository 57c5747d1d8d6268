package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *TokenManager {
	return NewTokenManager("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	token, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	claims, err := m.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	token, exp, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	access, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)
	refresh, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = m.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()
	m := NewTokenManager("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	token, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = m.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGarbageTokenRejected(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	_, err := m.ParseAccessToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensForSameUserAreUnique(t *testing.T) {
	t.Parallel()
	m := newTestManager()

	first, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)
	second, _, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	// Two sessions in the same second must still yield distinct tokens.
	assert.NotEqual(t, first, second)
}

func TestWrongSecretRejected(t *testing.T) {
	t.Parallel()
	m := newTestManager()
	other := NewTokenManager("different", "different", 15*time.Minute, 7*24*time.Hour)

	token, err := m.GenerateAccessToken("user-1")
	require.NoError(t, err)

	_, err = other.ParseAccessToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
