package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	config "postdeck/configs"
	"postdeck/internal/api"
	"postdeck/internal/models"
	"postdeck/internal/transfer"
)

const (
	twitterAuthURL   = "https://twitter.com/i/oauth2/authorize"
	linkedinAuthURL  = "https://www.linkedin.com/oauth/v2/authorization"
	facebookAuthURL  = "https://www.facebook.com/v18.0/dialog/oauth"
	instagramAuthURL = "https://www.instagram.com/oauth/authorize"
	tiktokAuthURL    = "https://www.tiktok.com/v2/auth/authorize"
	pinterestAuthURL = "https://www.pinterest.com/oauth"
)

type PlatformService interface {
	List(ctx context.Context, projectID string) ([]*models.SocialAccount, error)
	Add(ctx context.Context, sc *transfer.SocialAccountCreation) (*models.SocialAccount, error)
	AuthURL(platform, state string) (string, error)
}

type platformService struct {
	cfg config.Config
	c   *api.Client
}

func NewPlatformService(cfg config.Config, c *api.Client) PlatformService {
	return &platformService{
		cfg: cfg,
		c:   c,
	}
}

func (s *platformService) List(ctx context.Context, projectID string) ([]*models.SocialAccount, error) {
	if projectID == "" {
		err := errors.New("projectId is not valid")
		slog.Info(err.Error())
		return nil, err
	}

	var accounts []*models.SocialAccount
	path := "social-accounts?projectId=" + url.QueryEscape(projectID)
	if err := s.c.Do(ctx, http.MethodGet, path, nil, true, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *platformService) Add(ctx context.Context, sc *transfer.SocialAccountCreation) (*models.SocialAccount, error) {
	if sc == nil {
		err := errors.New("social account data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if sc.ProjectID == "" || strings.TrimSpace(sc.AccountName) == "" || sc.AccessToken == "" {
		err := errors.New("project, account name and access token are required")
		slog.Info(err.Error())
		return nil, err
	}
	if !models.IsValidPlatform(sc.Platform) {
		err := fmt.Errorf("unknown platform: %s", sc.Platform)
		slog.Info(err.Error())
		return nil, err
	}

	var account models.SocialAccount
	if err := s.c.Do(ctx, http.MethodPost, "social-accounts", sc, true, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// AuthURL builds the authorize URL a user visits to connect an account.
// The code exchange happens server-side on the redirect; the client only
// hands out the link.
func (s *platformService) AuthURL(platform, state string) (string, error) {
	var app config.OAuthApp
	var endpoint oauth2.Endpoint
	var scopes []string

	switch platform {
	case "twitter":
		app = s.cfg.TwitterApp
		endpoint = oauth2.Endpoint{AuthURL: twitterAuthURL}
		scopes = []string{"tweet.read", "tweet.write", "users.read", "offline.access"}
	case "linkedin":
		app = s.cfg.LinkedinApp
		endpoint = oauth2.Endpoint{AuthURL: linkedinAuthURL}
		scopes = []string{"w_member_social", "openid", "profile"}
	case "facebook":
		app = s.cfg.FacebookApp
		endpoint = oauth2.Endpoint{AuthURL: facebookAuthURL}
		scopes = []string{"pages_manage_posts", "pages_read_engagement"}
	case "instagram":
		app = s.cfg.InstagramApp
		endpoint = oauth2.Endpoint{AuthURL: instagramAuthURL}
		scopes = []string{"instagram_business_basic", "instagram_business_content_publish"}
	case "tiktok":
		app = s.cfg.TiktokApp
		endpoint = oauth2.Endpoint{AuthURL: tiktokAuthURL}
		scopes = []string{"user.info.basic", "video.publish", "video.upload"}
	case "pinterest":
		app = s.cfg.PinterestApp
		endpoint = oauth2.Endpoint{AuthURL: pinterestAuthURL}
		scopes = []string{"boards:read", "pins:read", "pins:write"}
	default:
		err := fmt.Errorf("unknown platform: %s", platform)
		slog.Info(err.Error())
		return "", err
	}

	if app.ClientID == "" || app.RedirectURI == "" {
		err := fmt.Errorf("oauth configuration for %s is incomplete", platform)
		slog.Info(err.Error())
		return "", err
	}

	oauth2Config := &oauth2.Config{
		ClientID:    app.ClientID,
		RedirectURL: app.RedirectURI,
		Scopes:      scopes,
		Endpoint:    endpoint,
	}

	return oauth2Config.AuthCodeURL(state), nil
}
