// Package httpapi exposes the auth and save services over REST.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/forgebound/forge-api/internal/entities"
	"github.com/forgebound/forge-api/internal/errors"
	"github.com/forgebound/forge-api/internal/services/auth"
	"github.com/forgebound/forge-api/internal/services/save"
)

// maxSavePayloadBytes bounds POST /save request bodies.
const maxSavePayloadBytes = 1 << 20

// HandlerConfig holds the dependencies for the HTTP handler
type HandlerConfig struct {
	AuthService auth.Service
	SaveService save.Service
}

// Validate ensures all required dependencies are provided
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.AuthService == nil {
		vb.RequiredField("AuthService")
	}
	if c.SaveService == nil {
		vb.RequiredField("SaveService")
	}

	return vb.Build()
}

// Handler serves the REST API
type Handler struct {
	authService auth.Service
	saveService save.Service
}

// NewHandler creates a Handler with the provided dependencies
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Handler{
		authService: cfg.AuthService,
		saveService: cfg.SaveService,
	}, nil
}

// Routes returns the API route table.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", h.handleHealth)
	mux.HandleFunc("POST /auth/register", h.handleRegister)
	mux.HandleFunc("POST /auth/login", h.handleLogin)
	mux.HandleFunc("GET /auth/me", h.requireAuth(h.handleMe))
	mux.HandleFunc("POST /auth/refresh", h.requireAuth(h.handleRefresh))
	mux.HandleFunc("GET /save", h.requireAuth(h.handleGetSave))
	mux.HandleFunc("POST /save", h.requireAuth(h.handlePutSave))
	mux.HandleFunc("DELETE /save", h.requireAuth(h.handleDeleteSave))
	mux.HandleFunc("GET /save/info", h.requireAuth(h.handleSaveInfo))

	return mux
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type userResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type saveResponse struct {
	GameState json.RawMessage `json:"gameState"`
	SavedAt   int64           `json:"savedAt"`
	Version   int64           `json:"version"`
}

type putSaveRequest struct {
	GameState json.RawMessage `json:"gameState"`
}

type putSaveResponse struct {
	SavedAt int64 `json:"savedAt"`
	Version int64 `json:"version"`
}

type saveInfoResponse struct {
	HasSave bool   `json:"hasSave"`
	SavedAt *int64 `json:"savedAt,omitempty"`
	Version *int64 `json:"version,omitempty"`
}

func toUserResponse(u *entities.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.authService.Register(r.Context(), &auth.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		User:  toUserResponse(out.User),
		Token: out.Token,
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.authService.Login(r.Context(), &auth.LoginInput{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		User:  toUserResponse(out.User),
		Token: out.Token,
	})
}

func (h *Handler) handleMe(w http.ResponseWriter, _ *http.Request, user *entities.User) {
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (h *Handler) handleRefresh(w http.ResponseWriter, r *http.Request, user *entities.User) {
	out, err := h.authService.Refresh(r.Context(), &auth.RefreshInput{UserID: user.ID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: out.Token})
}

func (h *Handler) handleGetSave(w http.ResponseWriter, r *http.Request, user *entities.User) {
	out, err := h.saveService.Get(r.Context(), &save.GetInput{UserID: user.ID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, saveResponse{
		GameState: out.GameState,
		SavedAt:   out.SavedAt,
		Version:   out.Version,
	})
}

func (h *Handler) handlePutSave(w http.ResponseWriter, r *http.Request, user *entities.User) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSavePayloadBytes)

	var req putSaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	out, err := h.saveService.Put(r.Context(), &save.PutInput{
		UserID:    user.ID,
		GameState: req.GameState,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, putSaveResponse{
		SavedAt: out.SavedAt,
		Version: out.Version,
	})
}

func (h *Handler) handleDeleteSave(w http.ResponseWriter, r *http.Request, user *entities.User) {
	if _, err := h.saveService.Delete(r.Context(), &save.DeleteInput{UserID: user.ID}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSaveInfo(w http.ResponseWriter, r *http.Request, user *entities.User) {
	out, err := h.saveService.Info(r.Context(), &save.InfoInput{UserID: user.ID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := saveInfoResponse{HasSave: out.HasSave}
	if out.HasSave {
		resp.SavedAt = &out.SavedAt
		resp.Version = &out.Version
	}
	writeJSON(w, http.StatusOK, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, errors.InvalidArgument("malformed JSON body"))
		return false
	}
	return true
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := code.HTTPStatus()
	if status >= http.StatusInternalServerError {
		// Storage failures are fatal to the request, never the process.
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err.Error())
	}

	writeJSON(w, status, errorResponse{
		Code:    code.String(),
		Message: errors.GetMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err.Error())
	}
}
