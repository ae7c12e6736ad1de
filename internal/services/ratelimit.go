package services

import (
	"errors"
	"sync"
	"time"
)

const (
	// LoginWindow is the sliding window over which login attempts count.
	LoginWindow = 15 * time.Minute

	// MaxLoginAttempts caps attempts per client key within the window.
	MaxLoginAttempts = 5
)

var ErrRateLimited = errors.New("too many login attempts")

// LoginRateLimiter bounds login attempts per client key with a sliding
// window recomputed on every check from the stored attempt history.
type LoginRateLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	window   time.Duration
	max      int
	now      func() time.Time
}

func NewLoginRateLimiter(window time.Duration, max int) *LoginRateLimiter {
	return &LoginRateLimiter{
		attempts: make(map[string][]time.Time),
		window:   window,
		max:      max,
		now:      time.Now,
	}
}

// Check drops attempts older than the window for the given client key, then
// fails with ErrRateLimited if the cap is already reached. Otherwise the
// current attempt is recorded and the check succeeds. Rejected attempts are
// not recorded, so a saturated window does not extend itself.
func (l *LoginRateLimiter) Check(clientKey string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	recent := l.attempts[clientKey]
	i := 0
	for i < len(recent) && recent[i].Before(cutoff) {
		i++
	}
	recent = recent[i:]

	if len(recent) >= l.max {
		l.attempts[clientKey] = recent
		return ErrRateLimited
	}

	l.attempts[clientKey] = append(recent, now)
	return nil
}
