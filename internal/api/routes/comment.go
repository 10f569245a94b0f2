package routes

import (
	"Agora/internal/api/handlers/comment"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers the comment endpoints on the router.
// Every comment mutation requires a principal.
func RegisterCommentRoutes(r chi.Router, service comments.Service, auth *middleware.AuthMiddleware) {
	createHandler := comment.NewCreateHandler(service)
	voteHandler := comment.NewVoteHandler(service)
	deleteHandler := comment.NewDeleteHandler(service)

	// PUT appends a comment, POST votes on one. Same path, different verb.
	r.With(auth.RequireAuth).Put("/posts/{postID}/comments", createHandler.HandleCreate)
	r.With(auth.RequireAuth).Post("/posts/{postID}/comments", voteHandler.HandleVote)

	r.With(auth.RequireAuth).Delete("/posts/{postID}/comments/{commentID}", deleteHandler.HandleDelete)
}
