package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreLifecycle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(SessionMaxAge)
	store.now = func() time.Time { return now }

	token, err := store.Issue()
	require.NoError(t, err)
	assert.Len(t, token, 64) // 32 random bytes, hex encoded

	assert.NoError(t, store.Validate(token))

	store.Revoke(token)
	assert.ErrorIs(t, store.Validate(token), ErrUnauthorized)
}

func TestSessionStoreUnknownToken(t *testing.T) {
	store := NewSessionStore(SessionMaxAge)

	assert.ErrorIs(t, store.Validate("not-a-token"), ErrUnauthorized)
}

func TestSessionStoreExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := NewSessionStore(SessionMaxAge)
	store.now = func() time.Time { return now }

	token, err := store.Issue()
	require.NoError(t, err)

	// Just inside the max age the token still validates
	now = now.Add(SessionMaxAge - time.Second)
	assert.NoError(t, store.Validate(token))

	// Past the boundary it expires and is evicted, so the second check no
	// longer finds it
	now = now.Add(2 * time.Second)
	assert.ErrorIs(t, store.Validate(token), ErrSessionExpired)
	assert.ErrorIs(t, store.Validate(token), ErrUnauthorized)
}

func TestSessionStoreTokensAreUnique(t *testing.T) {
	store := NewSessionStore(SessionMaxAge)

	first, err := store.Issue()
	require.NoError(t, err)
	second, err := store.Issue()
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.NoError(t, store.Validate(first))
	assert.NoError(t, store.Validate(second))
}

func TestSessionStoreRevokeUnknownToken(t *testing.T) {
	store := NewSessionStore(SessionMaxAge)

	// Must not panic or disturb other sessions
	token, err := store.Issue()
	require.NoError(t, err)

	store.Revoke("never-issued")
	assert.NoError(t, store.Validate(token))
}
