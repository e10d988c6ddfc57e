// Package auth manages the client session: credential verification and the
// bearer token, persisted encrypted at rest under a password-derived key.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msurana/gemvault/internal/common"
	"github.com/msurana/gemvault/internal/cryptox"
)

// seam for tests
var timeNow = time.Now

const saltSize = 16

// tokenFile is the on-disk shape of the encrypted token.
type tokenFile struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

// TokenStore keeps the catalog bearer token encrypted on disk. The encryption
// key is derived from the login password, so the token is only readable after
// Unlock. It satisfies the catalog's TokenSource.
type TokenStore struct {
	path string

	mu    sync.Mutex
	key   []byte
	salt  []byte
	token string
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Unlock derives the store key from password and, if a token file exists,
// decrypts it into memory. A wrong password surfaces as ErrInvalidCredentials.
func (s *TokenStore) Unlock(password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.salt = common.GenerateRandByteArray(saltSize)
		s.key = cryptox.DeriveKey([]byte(password), s.salt)
		s.token = ""
		return nil
	}
	if err != nil {
		return fmt.Errorf("read token file: %w", err)
	}

	var f tokenFile
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse token file: %w", err)
	}

	key := cryptox.DeriveKey([]byte(password), f.Salt)
	plaintext, err := cryptox.Decrypt(f.Ciphertext, f.Nonce, key)
	if err != nil {
		return fmt.Errorf("decrypt token: %w", common.ErrInvalidCredentials)
	}

	s.salt = f.Salt
	s.key = key
	s.token = string(plaintext)
	return nil
}

// Save encrypts token under the unlocked key and writes it to disk.
func (s *TokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.key == nil {
		return common.ErrNoSession
	}

	ciphertext, nonce, err := cryptox.Encrypt([]byte(token), s.key)
	if err != nil {
		return fmt.Errorf("encrypt token: %w", err)
	}

	data, err := json.Marshal(tokenFile{Salt: s.salt, Nonce: nonce, Ciphertext: ciphertext})
	if err != nil {
		return fmt.Errorf("marshal token file: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create token dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write token file: %w", err)
	}

	s.token = token
	return nil
}

// Token returns the current bearer token. It fails with ErrNoSession when no
// token is held and with ErrTokenExpired when the token is a JWT whose exp
// claim has passed; opaque (non-JWT) tokens carry no expiry.
func (s *TokenStore) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return "", common.ErrNoSession
	}

	if exp, ok := tokenExpiry(s.token); ok && exp.Before(timeNow()) {
		return "", common.ErrTokenExpired
	}

	return s.token, nil
}

// Invalidate drops the token from memory and disk. Called by the catalog
// client on a 401 so the next operation forces a fresh login.
func (s *TokenStore) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	_ = os.Remove(s.path)
}

// Active reports whether a usable token is currently held.
func (s *TokenStore) Active() bool {
	_, err := s.Token()
	return err == nil
}

func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
