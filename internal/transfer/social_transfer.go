package transfer

import "time"

type SocialAccountCreation struct {
	ProjectID    string    `json:"projectId"`
	Platform     string    `json:"platform"`
	AccountName  string    `json:"accountName"`
	AccessToken  string    `json:"accessToken"`
	BearerToken  string    `json:"bearerToken,omitempty"`
	RefreshToken string    `json:"refreshToken,omitempty"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
