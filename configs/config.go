package config

import (
	"os"
	"path/filepath"
)

type OAuthApp struct {
	ClientID    string
	RedirectURI string
}

type Config struct {
	APIBaseURL  string
	FileBaseURL string

	CredentialsPath string
	SecretKey       string

	TwitterApp   OAuthApp
	LinkedinApp  OAuthApp
	FacebookApp  OAuthApp
	InstagramApp OAuthApp
	TiktokApp    OAuthApp
	PinterestApp OAuthApp
}

func LoadConfig() *Config {
	return &Config{
		APIBaseURL:      getEnv("API_BASE_URL", "http://127.0.0.1:5000/api/v1/"),
		FileBaseURL:     getEnv("FILE_BASE_URL", "http://127.0.0.1:5000/"),
		CredentialsPath: getEnv("CREDENTIALS_PATH", defaultCredentialsPath()),
		SecretKey:       getEnv("SECRET_KEY", ""),
		TwitterApp: OAuthApp{
			ClientID:    getEnv("TWITTER_CLIENT_ID", ""),
			RedirectURI: getEnv("TWITTER_REDIRECT_URI", ""),
		},
		LinkedinApp: OAuthApp{
			ClientID:    getEnv("LINKEDIN_CLIENT_ID", ""),
			RedirectURI: getEnv("LINKEDIN_REDIRECT_URI", ""),
		},
		FacebookApp: OAuthApp{
			ClientID:    getEnv("FACEBOOK_CLIENT_ID", ""),
			RedirectURI: getEnv("FACEBOOK_REDIRECT_URI", ""),
		},
		InstagramApp: OAuthApp{
			ClientID:    getEnv("INSTAGRAM_CLIENT_ID", ""),
			RedirectURI: getEnv("INSTAGRAM_REDIRECT_URI", ""),
		},
		TiktokApp: OAuthApp{
			ClientID:    getEnv("TIKTOK_CLIENT_KEY", ""),
			RedirectURI: getEnv("TIKTOK_REDIRECT_URI", ""),
		},
		PinterestApp: OAuthApp{
			ClientID:    getEnv("PINTEREST_CLIENT_ID", ""),
			RedirectURI: getEnv("PINTEREST_REDIRECT_URI", ""),
		},
	}
}

func defaultCredentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".postdeck/credentials"
	}
	return filepath.Join(home, ".postdeck", "credentials")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
