package routes

import (
	"Agora/internal/api/handlers/post"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
	"Agora/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the post endpoints on the router.
// Listing and reading are open; creation and deletion require a principal.
func RegisterPostRoutes(r chi.Router, postService posts.Service, commentService comments.Service, auth *middleware.AuthMiddleware) {
	listHandler := post.NewListHandler(postService)
	createHandler := post.NewCreateHandler(postService)
	getHandler := post.NewGetHandler(postService, commentService)
	deleteHandler := post.NewDeleteHandler(postService)

	// Read endpoints. OptionalAuth lets a signed-in reader see the
	// candelete flag on their own posts.
	r.With(auth.OptionalAuth).Get("/forums/{forumID}/posts", listHandler.HandleList)
	r.With(auth.OptionalAuth).Get("/posts/{postID}", getHandler.HandleGet)

	// Mutation endpoints require authentication
	r.With(auth.RequireAuth).Put("/forums/{forumID}/posts", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Delete("/forums/{forumID}/posts/{postID}", deleteHandler.HandleDelete)
}
