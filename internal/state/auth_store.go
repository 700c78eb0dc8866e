package state

import "postdeck/internal/models"

// AuthStore mirrors the authenticated user and token.
type AuthStore struct {
	tracker
	user  *models.User
	token string
}

func NewAuthStore() *AuthStore {
	return &AuthStore{}
}

func (s *AuthStore) ApplyAuth(seq uint64, user *models.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.token = token
	s.settleLocked(seq, nil)
}

// Logout clears the user and token and returns the container to idle.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	s.resetLocked()
}

func (s *AuthStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
