// Package httpserver exposes the Brain Dash JSON API: credential issuance,
// the task CRUD surface, and the brain-dump parsing gateway.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"braindash/internal/common"
	"braindash/internal/logging"
	"braindash/internal/server/auth"
	"braindash/internal/server/models"
	"braindash/internal/server/services"
)

// UserService is the credential-issuance surface the auth endpoint needs.
type UserService interface {
	Register(ctx context.Context, username, password string) (*services.AuthResult, error)
	Login(ctx context.Context, username, password string) (*services.AuthResult, error)
}

// TaskService is the per-account task CRUD surface.
type TaskService interface {
	List(ctx context.Context, userID int64) ([]*models.Task, error)
	BulkInsert(ctx context.Context, userID int64, items []models.ParsedTask) error
	SetCompleted(ctx context.Context, userID, taskID int64, completed bool) error
	ClearAll(ctx context.Context, userID int64) error
}

// DumpService turns free text into validated task lists.
type DumpService interface {
	Parse(ctx context.Context, text string) ([]models.ParsedTask, error)
}

type Server struct {
	address   string
	logger    logging.Logger
	users     UserService
	tasks     TaskService
	dumps     DumpService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us UserService, ts TaskService, ds DumpService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		dumps:     ds,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the route table. Exposed separately from Run so tests can
// drive the full stack through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/auth", s.handleAuth)
	mux.HandleFunc("/api/tasks", s.handleTasks)
	mux.HandleFunc("/api/parse", s.handleParse)

	return s.requestLogMiddleware(mux)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.address,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// authenticate extracts and verifies the bearer token, returning the
// account identity it is bound to.
func (s *Server) authenticate(r *http.Request) (int64, string, error) {
	header := r.Header.Get(common.AuthorizationHeaderName)
	if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
		return 0, "", common.ErrInvalidToken
	}
	token := strings.TrimPrefix(header, common.BearerPrefix)
	return auth.ParseToken(token, s.jwtSecret)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
