package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dthstore/dthstore-api/internal/entity"
	"github.com/dthstore/dthstore-api/internal/infra/session"
)

// AuthHandler runs the demo login. Credentials come from the fixed table in
// entity; sessions live in Redis with a server-side TTL.
type AuthHandler struct {
	sessions *session.Store
}

func NewAuthHandler(sessions *session.Store) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token,omitempty"`
	User    *entity.User `json:"user,omitempty"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, LoginResponse{Success: false, Message: "Invalid JSON"})
		return
	}

	user := entity.Authenticate(req.Username, req.Password)
	if user == nil {
		writeJSON(w, http.StatusUnauthorized, LoginResponse{Success: false, Message: "Invalid credentials"})
		return
	}

	token, err := h.sessions.Create(r.Context(), user)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, LoginResponse{Success: false, Message: "failed to create session"})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, Token: token, User: user})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token != "" {
		h.sessions.Destroy(r.Context(), token)
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Me resolves the current session, for dashboard boot.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, LoginResponse{Success: false, Message: "missing token"})
		return
	}

	user, err := h.sessions.Lookup(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, LoginResponse{Success: false, Message: "session expired"})
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Success: true, User: user})
}

// RequireAuth guards the admin routes.
func (h *AuthHandler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Success: false, Message: "missing token"})
			return
		}
		if _, err := h.sessions.Lookup(r.Context(), token); err != nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Success: false, Message: "session expired"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
