package auth

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/msurana/gemvault/internal/common"
	"github.com/msurana/gemvault/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "token.json")
}

func TestTokenStore_SaveAndReload(t *testing.T) {
	path := tokenPath(t)

	s := NewTokenStore(path)
	require.NoError(t, s.Unlock("correct horse"))
	require.NoError(t, s.Save("tkn-123"))

	// A fresh store over the same file recovers the token with the password.
	s2 := NewTokenStore(path)
	require.NoError(t, s2.Unlock("correct horse"))
	token, err := s2.Token()
	require.NoError(t, err)
	assert.Equal(t, "tkn-123", token)
}

func TestTokenStore_WrongPassword(t *testing.T) {
	path := tokenPath(t)

	s := NewTokenStore(path)
	require.NoError(t, s.Unlock("right"))
	require.NoError(t, s.Save("tkn-123"))

	s2 := NewTokenStore(path)
	err := s2.Unlock("wrong")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestTokenStore_TokenAtRestIsEncrypted(t *testing.T) {
	path := tokenPath(t)

	s := NewTokenStore(path)
	require.NoError(t, s.Unlock("pw"))
	require.NoError(t, s.Save("tkn-secret"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "tkn-secret")
}

func TestTokenStore_NoSession(t *testing.T) {
	s := NewTokenStore(tokenPath(t))
	require.NoError(t, s.Unlock("pw"))

	_, err := s.Token()
	assert.ErrorIs(t, err, common.ErrNoSession)
	assert.False(t, s.Active())

	assert.ErrorIs(t, NewTokenStore(tokenPath(t)).Save("x"), common.ErrNoSession)
}

func TestTokenStore_Invalidate(t *testing.T) {
	path := tokenPath(t)

	s := NewTokenStore(path)
	require.NoError(t, s.Unlock("pw"))
	require.NoError(t, s.Save("tkn-123"))
	require.True(t, s.Active())

	s.Invalidate()

	assert.False(t, s.Active())
	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTokenStore_ExpiredJWT(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Minute).Unix(),
	}).SignedString([]byte("server-secret"))
	require.NoError(t, err)

	s := NewTokenStore(tokenPath(t))
	require.NoError(t, s.Unlock("pw"))
	require.NoError(t, s.Save(signed))

	_, err = s.Token()
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestTokenStore_OpaqueTokenHasNoExpiry(t *testing.T) {
	s := NewTokenStore(tokenPath(t))
	require.NoError(t, s.Unlock("pw"))
	require.NoError(t, s.Save("not-a-jwt"))

	token, err := s.Token()
	require.NoError(t, err)
	assert.Equal(t, "not-a-jwt", token)
}

func newTestSession(t *testing.T) (*Session, *TokenStore) {
	t.Helper()
	store := NewTokenStore(tokenPath(t))
	log := logging.NewDefault(io.Discard, "error")
	return NewSession("jeweler@example.com", "s3cret", "tkn-abc", store, log), store
}

func TestSession_Login(t *testing.T) {
	s, store := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "jeweler@example.com", "s3cret"))
	assert.True(t, s.Active())

	token, err := store.Token()
	require.NoError(t, err)
	assert.Equal(t, "tkn-abc", token)
}

func TestSession_LoginRejected(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	assert.ErrorIs(t, s.Login(ctx, "jeweler@example.com", "nope"), common.ErrInvalidCredentials)
	assert.ErrorIs(t, s.Login(ctx, "other@example.com", "s3cret"), common.ErrInvalidCredentials)
	assert.False(t, s.Active())
}

func TestSession_Logout(t *testing.T) {
	s, _ := newTestSession(t)
	ctx := context.Background()

	require.NoError(t, s.Login(ctx, "jeweler@example.com", "s3cret"))
	s.Logout(ctx)
	assert.False(t, s.Active())
}
