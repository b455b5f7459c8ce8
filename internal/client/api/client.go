// Package api is the HTTP client for the Brain Dash server. It speaks the
// JSON contract of /api/auth, /api/tasks and /api/parse and maps HTTP
// statuses back onto the shared error taxonomy.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"braindash/internal/client/models"
	"braindash/internal/common"
)

// Client talks to one Brain Dash server. It is safe for sequential use from
// a single REPL; the token is set after login and sent on every task call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(serverURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 90 * time.Second},
		baseURL:    strings.TrimRight(serverURL, "/"),
	}
}

// SetToken installs the session token used for authenticated calls.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the currently installed session token.
func (c *Client) Token() string {
	return c.token
}

// errorBody is the error envelope every endpoint uses.
type errorBody struct {
	Error string `json:"error"`
}

// do sends a JSON request and decodes a JSON response into out (when out is
// non-nil). Non-2xx statuses are mapped onto the shared sentinels with the
// server's error message attached.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		_ = json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&eb)
		if eb.Error == "" {
			eb.Error = resp.Status
		}
		return fmt.Errorf("%s: %w", eb.Error, sentinelFor(resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusBadRequest:
		return common.ErrorBadRequest
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusConflict:
		return common.ErrorConflict
	case http.StatusBadGateway:
		return common.ErrorBadGateway
	default:
		return common.ErrorInternal
	}
}

type authRequest struct {
	Action   string `json:"action"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account and installs the issued token.
func (c *Client) Register(ctx context.Context, username, password string) (*models.Session, error) {
	return c.auth(ctx, "register", username, password)
}

// Login verifies credentials and installs the issued token.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Session, error) {
	return c.auth(ctx, "login", username, password)
}

func (c *Client) auth(ctx context.Context, action, username, password string) (*models.Session, error) {
	var session models.Session
	err := c.do(ctx, http.MethodPost, "/api/auth", authRequest{
		Action:   action,
		Username: username,
		Password: password,
	}, &session)
	if err != nil {
		return nil, err
	}
	c.token = session.Token
	return &session, nil
}

// Tasks fetches the account's task list, newest first.
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	var out struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// ParseDump sends free text through the server's categorizer and returns the
// validated tasks without saving them.
func (c *Client) ParseDump(ctx context.Context, text string) ([]models.NewTask, error) {
	var out struct {
		Tasks []models.NewTask `json:"tasks"`
	}
	in := struct {
		BrainDump string `json:"brainDump"`
	}{BrainDump: text}
	if err := c.do(ctx, http.MethodPost, "/api/parse", in, &out); err != nil {
		return nil, err
	}
	return out.Tasks, nil
}

// SaveTasks persists a batch of parsed tasks.
func (c *Client) SaveTasks(ctx context.Context, tasks []models.NewTask) error {
	in := struct {
		Tasks []models.NewTask `json:"tasks"`
	}{Tasks: tasks}
	return c.do(ctx, http.MethodPost, "/api/tasks", in, nil)
}

// SetCompleted flips one task's completion flag.
func (c *Client) SetCompleted(ctx context.Context, taskID int64, completed bool) error {
	in := struct {
		TaskID  int64 `json:"taskId"`
		Updates struct {
			Completed bool `json:"completed"`
		} `json:"updates"`
	}{TaskID: taskID}
	in.Updates.Completed = completed
	return c.do(ctx, http.MethodPut, "/api/tasks", in, nil)
}

// ClearTasks removes every task on the account.
func (c *Client) ClearTasks(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks", nil, nil)
}
