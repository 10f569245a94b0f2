package routes

import (
	"Agora/internal/api/handlers/forum"
	"Agora/internal/api/middleware"
	"Agora/internal/core/forums"

	"github.com/go-chi/chi/v5"
)

// RegisterForumRoutes registers the forum admin endpoints on the router
func RegisterForumRoutes(r chi.Router, repo forums.Repository, auth *middleware.AuthMiddleware) {
	handler := forum.NewHandler(repo)

	r.Get("/forums", handler.HandleList)
	r.With(auth.RequireAuth).Put("/forums", handler.HandleCreate)
	r.With(auth.RequireAuth).Delete("/forums/{forumID}", handler.HandleDelete)
}
