package routes

import (
	"Agora/internal/api/handlers/session"
	"Agora/internal/api/middleware"
	"Agora/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterSessionRoutes registers login, logout and registration endpoints
func RegisterSessionRoutes(r chi.Router, service users.Service, tokens *users.TokenIssuer, auth *middleware.AuthMiddleware) {
	handler := session.NewHandler(service, tokens, auth)

	r.Post("/login", handler.HandleLogin)
	r.Post("/logout", handler.HandleLogout)
	r.Post("/register", handler.HandleRegister)
}
