package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

const (
	// SessionCookieName is the cookie carrying the admin session token.
	SessionCookieName = "admin_session"

	// SessionMaxAge bounds how long an issued token stays valid.
	SessionMaxAge = 7 * 24 * time.Hour
)

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrSessionExpired = errors.New("session expired")
)

// SessionStore holds admin session tokens in memory, keyed by token with
// their issue time. State is process-local: a restart invalidates every
// session. Expired entries are evicted lazily on Validate.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]time.Time
	maxAge   time.Duration
	now      func() time.Time
}

func NewSessionStore(maxAge time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]time.Time),
		maxAge:   maxAge,
		now:      time.Now,
	}
}

// Issue creates a new session and returns its token. Tokens are 32 random
// bytes hex-encoded, so guessing one is not a realistic attack.
func (s *SessionStore) Issue() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	s.sessions[token] = s.now()
	s.mu.Unlock()

	return token, nil
}

// Validate checks a token. Unknown tokens fail with ErrUnauthorized; known
// tokens past the max age are removed and fail with ErrSessionExpired.
func (s *SessionStore) Validate(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	issuedAt, ok := s.sessions[token]
	if !ok {
		return ErrUnauthorized
	}

	if s.now().Sub(issuedAt) > s.maxAge {
		delete(s.sessions, token)
		return ErrSessionExpired
	}

	return nil
}

// Revoke removes a session unconditionally. Revoking an unknown token is a
// no-op.
func (s *SessionStore) Revoke(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
