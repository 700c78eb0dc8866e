package state

import (
	"time"

	"postdeck/internal/models"
)

// SocialStore mirrors the connected social accounts for the selected
// project. Credential fields stay opaque: the store never rewrites them,
// it only re-derives the display status from expiry proximity.
type SocialStore struct {
	tracker
	accounts []*models.SocialAccount
}

func NewSocialStore() *SocialStore {
	return &SocialStore{}
}

func (s *SocialStore) ApplyList(seq uint64, accounts []*models.SocialAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = accounts
	s.settleLocked(seq, nil)
}

func (s *SocialStore) ApplyCreate(seq uint64, account *models.SocialAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = append(s.accounts, account)
	s.settleLocked(seq, nil)
}

func (s *SocialStore) Accounts() []*models.SocialAccount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.SocialAccount, len(s.accounts))
	copy(out, s.accounts)
	return out
}

// RefreshStatuses recomputes each account's derived status in place and
// reports how many changed.
func (s *SocialStore) RefreshStatuses(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := 0
	for _, a := range s.accounts {
		derived := a.DerivedStatus(now)
		if a.Status != derived {
			a.Status = derived
			changed++
		}
	}
	return changed
}
