package session

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"postdeck/pkg/utils"
)

// Session holds the bearer credential for the current user. It is handed
// to the API client at construction and updated through SetToken when a
// login succeeds. The token is persisted so separate invocations share
// one login; when a secret key is configured it is encrypted at rest.
type Session struct {
	path   string
	secret string

	mu    sync.RWMutex
	token string
}

func New(path, secret string) *Session {
	s := &Session{path: path, secret: secret}
	s.load()
	return s
}

// Token returns the stored credential. The second return reports whether
// one is present at all.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SetToken stores and persists a new credential. Called on login success.
func (s *Session) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.persist(token)
}

// Clear forgets the credential and removes the persisted copy.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		slog.Info(err.Error())
		return err
	}
	return nil
}

// ExpiresAt reports when the stored credential runs out, read from the
// token itself without signature verification.
func (s *Session) ExpiresAt() (time.Time, error) {
	s.mu.RLock()
	token := s.token
	s.mu.RUnlock()
	return utils.TokenExpiry(token)
}

func (s *Session) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Info(err.Error())
		}
		return
	}

	stored := strings.TrimSpace(string(data))
	if s.secret == "" {
		s.token = stored
		return
	}

	token, err := utils.Decrypt(stored, s.secret)
	if err != nil {
		slog.Info("stored credentials unreadable, ignoring")
		return
	}
	s.token = token
}

func (s *Session) persist(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		slog.Info(err.Error())
		return err
	}

	stored := token
	if s.secret != "" {
		encrypted, err := utils.Encrypt([]byte(token), s.secret)
		if err != nil {
			return err
		}
		stored = encrypted
	}

	if err := os.WriteFile(s.path, []byte(stored), 0o600); err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
