// Package cli is the view layer: it parses commands, dispatches domain
// actions, applies their results to the state containers and renders the
// containers back to the terminal.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	config "postdeck/configs"
	"postdeck/internal/api"
	"postdeck/internal/composer"
	"postdeck/internal/service"
	"postdeck/internal/session"
	"postdeck/internal/state"
)

type App struct {
	cfg *config.Config

	session  *session.Session
	client   *api.Client
	auth     service.AuthService
	projects service.ProjectService
	posts    service.PostService
	media    service.MediaService
	ai       service.AIService
	platform service.PlatformService

	authStore    *state.AuthStore
	projectStore *state.ProjectStore
	postStore    *state.PostStore
	socialStore  *state.SocialStore
	aiStore      *state.AIStore
	composer     *composer.Composer

	stdout io.Writer
	stderr io.Writer
}

func NewApp(cfg *config.Config, stdout, stderr io.Writer) *App {
	sess := session.New(cfg.CredentialsPath, cfg.SecretKey)
	client := api.NewClient(cfg.APIBaseURL, cfg.FileBaseURL, sess)

	posts := service.NewPostService(client)
	media := service.NewMediaService(client)

	return &App{
		cfg:          cfg,
		session:      sess,
		client:       client,
		auth:         service.NewAuthService(client, sess),
		projects:     service.NewProjectService(client),
		posts:        posts,
		media:        media,
		ai:           service.NewAIService(client),
		platform:     service.NewPlatformService(*cfg, client),
		authStore:    state.NewAuthStore(),
		projectStore: state.NewProjectStore(),
		postStore:    state.NewPostStore(),
		socialStore:  state.NewSocialStore(),
		aiStore:      state.NewAIStore(),
		composer:     composer.New(posts, media),
		stdout:       stdout,
		stderr:       stderr,
	}
}

func Run(cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	app := NewApp(cfg, stdout, stderr)
	return app.Run(args)
}

func (a *App) Run(args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}

	var err error
	switch args[0] {
	case "login":
		err = a.cmdLogin(args[1:])
	case "register":
		err = a.cmdRegister(args[1:])
	case "logout":
		err = a.cmdLogout()
	case "whoami":
		err = a.cmdWhoami()
	case "projects":
		err = a.cmdProjects(args[1:])
	case "posts":
		err = a.cmdPosts(args[1:])
	case "accounts":
		err = a.cmdAccounts(args[1:])
	case "ai":
		err = a.cmdAI(args[1:])
	case "watch":
		err = a.cmdWatch(args[1:])
	case "help", "-h", "--help":
		a.usage()
		return 0
	default:
		fmt.Fprintf(a.stderr, "unknown command: %s\n", args[0])
		a.usage()
		return 2
	}

	if err != nil {
		a.renderError(err)
		return 1
	}
	return 0
}

func (a *App) usage() {
	fmt.Fprintln(a.stderr, `usage: postdeck <command> [flags]

commands:
  login       authenticate and store the session token
  register    create an account
  logout      forget the stored session token
  whoami      show the current session
  projects    list | create | use
  posts       list | compose
  accounts    list | add | connect
  ai          text | image
  watch       keep posts and account statuses fresh`)
}

// projectFile persists the selected project between invocations, next to
// the credentials.
func (a *App) projectFile() string {
	return filepath.Join(filepath.Dir(a.cfg.CredentialsPath), "project")
}

func (a *App) saveCurrentProjectID(id string) error {
	if err := os.MkdirAll(filepath.Dir(a.projectFile()), 0o700); err != nil {
		return err
	}
	return os.WriteFile(a.projectFile(), []byte(id), 0o600)
}

func (a *App) loadCurrentProjectID() string {
	data, err := os.ReadFile(a.projectFile())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
