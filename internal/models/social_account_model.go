package models

import "time"

type SocialAccount struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	Platform     string    `json:"platform"`
	AccountName  string    `json:"accountName"`
	AccessToken  string    `json:"accessToken"`
	BearerToken  string    `json:"bearerToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
	Status       string    `json:"status"` // active, warning, expired
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

const (
	AccountStatusActive  = "active"
	AccountStatusWarning = "warning"
	AccountStatusExpired = "expired"
)

// Expiry window under which an account is flagged as expiring soon.
const ExpiryWarningDays = 14

var Platforms = []string{"twitter", "linkedin", "facebook", "instagram", "tiktok", "pinterest"}

func IsValidPlatform(platform string) bool {
	for _, p := range Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// DerivedStatus recomputes the account status from token expiry proximity.
// The server value is advisory only; proximity always wins.
func (a *SocialAccount) DerivedStatus(now time.Time) string {
	daysLeft := int(a.ExpiresAt.Sub(now).Hours() / 24)
	if a.Status == AccountStatusExpired || daysLeft <= 0 {
		return AccountStatusExpired
	}
	if a.Status == AccountStatusWarning || daysLeft <= ExpiryWarningDays {
		return AccountStatusWarning
	}
	return AccountStatusActive
}
