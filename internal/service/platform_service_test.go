package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	config "postdeck/configs"
)

func TestAuthURLBuildsAuthorizeLink(t *testing.T) {
	cfg := config.Config{
		TiktokApp: config.OAuthApp{
			ClientID:    "tik-client",
			RedirectURI: "https://app.example/callback/tiktok",
		},
	}
	s := NewPlatformService(cfg, nil)

	raw, err := s.AuthURL("tiktok", "state-xyz")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "www.tiktok.com", u.Host)
	q := u.Query()
	require.Equal(t, "tik-client", q.Get("client_id"))
	require.Equal(t, "https://app.example/callback/tiktok", q.Get("redirect_uri"))
	require.Equal(t, "state-xyz", q.Get("state"))
	require.Equal(t, "code", q.Get("response_type"))
}

func TestAuthURLUnknownPlatform(t *testing.T) {
	s := NewPlatformService(config.Config{}, nil)
	_, err := s.AuthURL("myspace", "state")
	require.Error(t, err)
}

func TestAuthURLIncompleteConfig(t *testing.T) {
	s := NewPlatformService(config.Config{}, nil)
	_, err := s.AuthURL("twitter", "state")
	require.Error(t, err)
}

func TestAddValidatesPlatform(t *testing.T) {
	s := NewPlatformService(config.Config{}, nil)
	_, err := s.Add(context.Background(), nil)
	require.Error(t, err)
}
