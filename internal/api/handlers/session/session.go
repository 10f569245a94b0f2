package session

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/users"
)

// Handler establishes and tears down cookie sessions. This is collaborator
// plumbing around the core: the engines themselves only ever see the
// resolved principal.
type Handler struct {
	service users.Service
	tokens  *users.TokenIssuer
	auth    *middleware.AuthMiddleware
}

// NewHandler creates a new session handler
func NewHandler(service users.Service, tokens *users.TokenIssuer, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{service: service, tokens: tokens, auth: auth}
}

// credentialsInput is the request body for login and registration
type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials, binds the session cookie, and returns a
// bearer token for non-browser clients
// POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input credentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	account, err := h.service.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid username or password")
			return
		}
		log.Printf("Login error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	if err := h.auth.SignIn(w, r, account.Username); err != nil {
		log.Printf("Failed to save session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "Failed to establish session")
		return
	}

	token, err := h.tokens.Issue(account.Username)
	if err != nil {
		log.Printf("Failed to issue token: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "Failed to issue token")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"username": account.Username,
		"token":    token,
	})
}

// HandleLogout clears the session cookie
// POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.SignOut(w, r); err != nil {
		log.Printf("Failed to clear session: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "Failed to clear session")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"loggedOut": true,
	})
}

// HandleRegister creates a new account
// POST /register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input credentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	account, err := h.service.Register(r.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, users.ErrUsernameTaken) {
			handlers.WriteError(w, http.StatusConflict, "UsernameTaken", "Username already taken")
			return
		}
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, account)
}
