package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(start time.Time) (*LoginRateLimiter, *time.Time) {
	now := start
	limiter := NewLoginRateLimiter(LoginWindow, MaxLoginAttempts)
	limiter.now = func() time.Time { return now }
	return limiter, &now
}

func TestLoginRateLimiterCap(t *testing.T) {
	limiter, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < MaxLoginAttempts; i++ {
		assert.NoError(t, limiter.Check("203.0.113.7"))
	}

	assert.ErrorIs(t, limiter.Check("203.0.113.7"), ErrRateLimited)
}

func TestLoginRateLimiterPerClientIsolation(t *testing.T) {
	limiter, _ := newTestLimiter(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	for i := 0; i < MaxLoginAttempts; i++ {
		assert.NoError(t, limiter.Check("203.0.113.7"))
	}
	assert.ErrorIs(t, limiter.Check("203.0.113.7"), ErrRateLimited)

	// A different client key has its own window
	assert.NoError(t, limiter.Check("198.51.100.1"))
}

func TestLoginRateLimiterWindowReset(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter, now := newTestLimiter(start)

	for i := 0; i < MaxLoginAttempts; i++ {
		assert.NoError(t, limiter.Check("203.0.113.7"))
	}
	assert.ErrorIs(t, limiter.Check("203.0.113.7"), ErrRateLimited)

	// 16 minutes after the recorded attempts the window has fully elapsed
	*now = start.Add(16 * time.Minute)
	assert.NoError(t, limiter.Check("203.0.113.7"))
}

func TestLoginRateLimiterRejectedAttemptNotRecorded(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter, now := newTestLimiter(start)

	for i := 0; i < MaxLoginAttempts; i++ {
		assert.NoError(t, limiter.Check("203.0.113.7"))
	}

	// Rejected attempt one minute later must not extend the window
	*now = start.Add(time.Minute)
	assert.ErrorIs(t, limiter.Check("203.0.113.7"), ErrRateLimited)

	// Once the original five attempts age out, the client is clear again;
	// if the rejection had been recorded this would still be limited
	*now = start.Add(LoginWindow + time.Second)
	assert.NoError(t, limiter.Check("203.0.113.7"))
}

func TestLoginRateLimiterSlidingWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	limiter, now := newTestLimiter(start)

	// Two early attempts, three late ones
	assert.NoError(t, limiter.Check("203.0.113.7"))
	assert.NoError(t, limiter.Check("203.0.113.7"))

	*now = start.Add(10 * time.Minute)
	for i := 0; i < 3; i++ {
		assert.NoError(t, limiter.Check("203.0.113.7"))
	}
	assert.ErrorIs(t, limiter.Check("203.0.113.7"), ErrRateLimited)

	// After the two early attempts slide out, two slots open up
	*now = start.Add(LoginWindow + time.Minute)
	assert.NoError(t, limiter.Check("203.0.113.7"))
	assert.NoError(t, limiter.Check("203.0.113.7"))
	assert.ErrorIs(t, limiter.Check("203.0.113.7"), ErrRateLimited)
}
