package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"postdeck/internal/api"
	"postdeck/internal/models"
	"postdeck/internal/session"
	"postdeck/internal/transfer"
)

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login", "/auth/register":
			require.Empty(t, r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(transfer.AuthResponse{
				User:  &models.User{ID: "u1", Name: "Ada", Email: "ada@example.com"},
				Token: "fresh-token",
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestLoginStoresCredential(t *testing.T) {
	srv := authServer(t)
	defer srv.Close()

	sess := session.New(filepath.Join(t.TempDir(), "credentials"), "")
	client := api.NewClient(srv.URL, srv.URL, sess)
	s := NewAuthService(client, sess)

	resp, err := s.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "fresh-token", resp.Token)

	stored, ok := sess.Token()
	require.True(t, ok)
	require.Equal(t, "fresh-token", stored)
}

func TestRegisterDoesNotStoreCredential(t *testing.T) {
	srv := authServer(t)
	defer srv.Close()

	sess := session.New(filepath.Join(t.TempDir(), "credentials"), "")
	client := api.NewClient(srv.URL, srv.URL, sess)
	s := NewAuthService(client, sess)

	resp, err := s.Register(context.Background(), &transfer.RegisterRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "pw",
	})
	require.NoError(t, err)
	require.Equal(t, "fresh-token", resp.Token)

	_, ok := sess.Token()
	require.False(t, ok, "registration alone must not establish a session")
}

func TestRegisterPasswordMismatch(t *testing.T) {
	s := NewAuthService(nil, nil)
	_, err := s.Register(context.Background(), &transfer.RegisterRequest{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "pw",
		ConfirmPassword: "other",
	})
	require.Error(t, err)
}

func TestLogoutClearsCredential(t *testing.T) {
	sess := session.New(filepath.Join(t.TempDir(), "credentials"), "")
	require.NoError(t, sess.SetToken("tok"))

	s := NewAuthService(nil, sess)
	require.NoError(t, s.Logout())

	_, ok := sess.Token()
	require.False(t, ok)
}
