package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"braindash/internal/common"
	"braindash/internal/server/models"
)

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req struct {
		Action   string `json:"action"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password required")
		return
	}

	ctx := r.Context()

	switch req.Action {
	case "register":
		result, err := s.users.Register(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, common.ErrorConflict) {
				writeError(w, http.StatusConflict, "username already exists")
				return
			}
			if errors.Is(err, common.ErrorBadRequest) {
				writeError(w, http.StatusBadRequest, "password too long")
				return
			}
			s.logger.Error(ctx, "registration failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		s.logger.Info(ctx, "registered", "username", result.Username)
		writeJSON(w, http.StatusCreated, map[string]any{
			"success":  true,
			"token":    result.Token,
			"username": result.Username,
		})

	case "login":
		result, err := s.users.Login(ctx, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, common.ErrorUnauthorized) {
				writeError(w, http.StatusUnauthorized, "invalid credentials")
				return
			}
			s.logger.Error(ctx, "login failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"token":    result.Token,
			"username": result.Username,
		})

	default:
		writeError(w, http.StatusBadRequest, "invalid action")
	}
}

func (s *Server) handleTasks(w http.ResponseWriter, r *http.Request) {
	userID, _, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		tasks, err := s.tasks.List(ctx, userID)
		if err != nil {
			s.logger.Error(ctx, "list tasks failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})

	case http.MethodPost:
		var req struct {
			Tasks json.RawMessage `json:"tasks"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		var items []models.ParsedTask
		if req.Tasks == nil {
			writeError(w, http.StatusBadRequest, "tasks must be an array")
			return
		}
		if err := json.Unmarshal(req.Tasks, &items); err != nil || items == nil {
			// items stays nil when the field was JSON null.
			writeError(w, http.StatusBadRequest, "tasks must be an array")
			return
		}
		if err := s.tasks.BulkInsert(ctx, userID, items); err != nil {
			s.logger.Error(ctx, "bulk insert failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{"success": true})

	case http.MethodPut:
		var req struct {
			TaskID  int64 `json:"taskId"`
			Updates struct {
				Completed *bool `json:"completed"`
			} `json:"updates"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		// Only the completion flag is mutable; an absent flag is a no-op.
		if req.Updates.Completed != nil {
			if err := s.tasks.SetCompleted(ctx, userID, req.TaskID, *req.Updates.Completed); err != nil {
				s.logger.Error(ctx, "update task failed", "error", err.Error())
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	case http.MethodDelete:
		if err := s.tasks.ClearAll(ctx, userID); err != nil {
			s.logger.Error(ctx, "clear tasks failed", "error", err.Error())
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true})

	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	_, username, err := s.authenticate(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req struct {
		BrainDump string `json:"brainDump"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := r.Context()

	tasks, err := s.dumps.Parse(ctx, req.BrainDump)
	if err != nil {
		if errors.Is(err, common.ErrorBadRequest) {
			writeError(w, http.StatusBadRequest, "Brain dump text required")
			return
		}
		if errors.Is(err, common.ErrorBadGateway) {
			s.logger.Error(ctx, "categorization failed", "username", username, "error", err.Error())
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		s.logger.Error(ctx, "parse failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"tasks": tasks})
}
