package auth

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/msurana/gemvault/internal/common"
	"github.com/msurana/gemvault/internal/logging"
)

// Session verifies login credentials and manages the stored bearer token.
// Verification is local against configured credentials; the catalog itself
// only sees the resulting bearer token.
type Session struct {
	email    string
	password string
	apiToken string
	tokens   *TokenStore
	log      logging.Logger
}

func NewSession(email, password, apiToken string, tokens *TokenStore, log logging.Logger) *Session {
	return &Session{
		email:    email,
		password: password,
		apiToken: apiToken,
		tokens:   tokens,
		log:      log,
	}
}

// Login checks the credentials and, on success, unlocks the token store under
// the given password and persists the bearer token.
func (s *Session) Login(ctx context.Context, email, password string) error {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !emailOK || !passOK {
		s.log.Warn(ctx, "login rejected", "email", email)
		return common.ErrInvalidCredentials
	}

	if err := s.tokens.Unlock(password); err != nil {
		return fmt.Errorf("unlock token store: %w", err)
	}
	if err := s.tokens.Save(s.apiToken); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}

	s.log.Info(ctx, "login succeeded", "email", email)
	return nil
}

// Logout drops the session token from memory and disk.
func (s *Session) Logout(ctx context.Context) {
	s.tokens.Invalidate()
	s.log.Info(ctx, "logged out")
}

// Active reports whether a usable session token is held.
func (s *Session) Active() bool {
	return s.tokens.Active()
}
