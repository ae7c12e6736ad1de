package services

import (
	"errors"
	"storefront/internal/config"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService checks the admin password and owns the process-local session
// and rate-limit state. There is a single admin identity; the password comes
// from configuration and is hashed once at construction so every login runs
// a constant-time bcrypt comparison.
type AuthService struct {
	passwordHash []byte
	sessions     *SessionStore
	limiter      *LoginRateLimiter
}

func NewAuthService(cfg *config.Config) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), cfg.Security.BcryptCost)
	if err != nil {
		return nil, err
	}

	return &AuthService{
		passwordHash: hash,
		sessions:     NewSessionStore(SessionMaxAge),
		limiter:      NewLoginRateLimiter(LoginWindow, MaxLoginAttempts),
	}, nil
}

// Login rate-limits by client key, verifies the password and issues a
// session token. The rate limiter is consulted first so wrong-password
// attempts count toward the cap.
func (s *AuthService) Login(clientKey, password string) (string, error) {
	if err := s.limiter.Check(clientKey); err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	return s.sessions.Issue()
}

// ValidateSession checks a session token against the store.
func (s *AuthService) ValidateSession(token string) error {
	return s.sessions.Validate(token)
}

// Logout revokes a session token. Unknown tokens are ignored.
func (s *AuthService) Logout(token string) {
	s.sessions.Revoke(token)
}
