package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	s := New(path, "")
	_, ok := s.Token()
	require.False(t, ok)

	require.NoError(t, s.SetToken("tok-abc"))
	got, ok := s.Token()
	require.True(t, ok)
	require.Equal(t, "tok-abc", got)

	// A separate session picks up the persisted credential.
	reloaded := New(path, "")
	got, ok = reloaded.Token()
	require.True(t, ok)
	require.Equal(t, "tok-abc", got)
}

func TestTokenEncryptedAtRest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	s := New(path, "super-secret")
	require.NoError(t, s.SetToken("tok-sensitive"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "tok-sensitive")

	reloaded := New(path, "super-secret")
	got, ok := reloaded.Token()
	require.True(t, ok)
	require.Equal(t, "tok-sensitive", got)
}

func TestWrongSecretIgnoresStoredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	s := New(path, "right-secret")
	require.NoError(t, s.SetToken("tok-x"))

	reloaded := New(path, "wrong-secret")
	_, ok := reloaded.Token()
	require.False(t, ok)
}

func TestClearRemovesCredential(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")

	s := New(path, "")
	require.NoError(t, s.SetToken("tok"))
	require.NoError(t, s.Clear())

	_, ok := s.Token()
	require.False(t, ok)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// Clearing an already-clear session is fine.
	require.NoError(t, s.Clear())
}

func TestExpiresAtReadsTokenClaims(t *testing.T) {
	expiry := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(expiry),
	})
	signed, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)

	s := New(filepath.Join(t.TempDir(), "credentials"), "")
	require.NoError(t, s.SetToken(signed))

	got, err := s.ExpiresAt()
	require.NoError(t, err)
	require.True(t, got.Equal(expiry))
}
