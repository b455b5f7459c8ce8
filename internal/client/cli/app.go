// Package cli implements the interactive Brain Dash client: a small REPL
// over the server's HTTP API with a cached session so a login survives
// restarts until the token expires.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"braindash/internal/client/api"
	"braindash/internal/client/config"
	"braindash/internal/client/models"
	"braindash/internal/filex"
)

// backend is the server surface the REPL needs. *api.Client satisfies it;
// tests provide stubs.
type backend interface {
	Register(ctx context.Context, username, password string) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	SetToken(token string)
	Tasks(ctx context.Context) ([]models.Task, error)
	ParseDump(ctx context.Context, text string) ([]models.NewTask, error)
	SaveTasks(ctx context.Context, tasks []models.NewTask) error
	SetCompleted(ctx context.Context, taskID int64, completed bool) error
	ClearTasks(ctx context.Context) error
}

type App struct {
	config      *config.Config
	api         backend
	reader      *bufio.Reader
	userName    string
	sessionPath string
}

func NewApp(c *config.Config) (*App, error) {
	dir, err := filex.EnsureHomeDir(".braindash")
	if err != nil {
		return nil, err
	}

	app := &App{
		config:      c,
		api:         api.NewClient(c.ServerURL),
		reader:      bufio.NewReader(os.Stdin),
		sessionPath: filepath.Join(dir, "session.json"),
	}
	app.restoreSession()

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// restoreSession loads a previously cached token, if any. A missing or
// unreadable cache just means the user has to log in again.
func (a *App) restoreSession() {
	data, err := os.ReadFile(a.sessionPath)
	if err != nil {
		return
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil || session.Token == "" {
		return
	}

	a.api.SetToken(session.Token)
	a.userName = session.Username
}

func (a *App) saveSession(session *models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return os.WriteFile(a.sessionPath, data, 0o600)
}

func (a *App) clearSession() {
	_ = os.Remove(a.sessionPath)
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
