package job

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	config "postdeck/configs"
	"postdeck/internal/api"
	"postdeck/internal/models"
	"postdeck/internal/service"
	"postdeck/internal/session"
	"postdeck/internal/state"
)

func TestRefreshPullsPostsAndAccounts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "proj-1", r.URL.Query().Get("projectId"))
		switch r.URL.Path {
		case "/posts":
			json.NewEncoder(w).Encode([]*models.Post{
				{ID: "p1", Status: models.PostStatusPosted},
				{ID: "p2", Status: models.PostStatusScheduled},
			})
		case "/social-accounts":
			json.NewEncoder(w).Encode([]*models.SocialAccount{
				{ID: "a1", Platform: "twitter", Status: models.AccountStatusActive,
					ExpiresAt: time.Now().AddDate(0, 0, 3)},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	sess := session.New(filepath.Join(t.TempDir(), "credentials"), "")
	require.NoError(t, sess.SetToken("tok"))
	client := api.NewClient(srv.URL, srv.URL, sess)

	projectStore := state.NewProjectStore()
	projectStore.SetCurrent(&models.Project{ID: "proj-1", Name: "Acme"})
	postStore := state.NewPostStore()
	socialStore := state.NewSocialStore()

	j := NewStatusRefreshJob(
		service.NewPlatformService(config.Config{}, client),
		service.NewPostService(client),
		projectStore, postStore, socialStore)
	j.Refresh()

	require.Len(t, postStore.Posts(), 2)
	require.Equal(t, state.StatusSucceeded, postStore.Status())

	accounts := socialStore.Accounts()
	require.Len(t, accounts, 1)
	// Expiring in 3 days: derived status downgraded to warning.
	require.Equal(t, models.AccountStatusWarning, accounts[0].Status)
}

func TestRefreshWithoutProjectIsNoOp(t *testing.T) {
	j := NewStatusRefreshJob(nil, nil, state.NewProjectStore(), state.NewPostStore(), state.NewSocialStore())
	j.Refresh()
}
