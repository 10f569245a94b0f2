package post

import (
	"errors"
	"log"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/forums"
	"Agora/internal/core/identity"
	"Agora/internal/core/posts"
)

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleServiceError maps post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrNotSignedIn):
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")

	case errors.Is(err, posts.ErrNotAuthor):
		writeError(w, http.StatusForbidden, "NotAuthor", "Only the author may delete this post")

	case errors.Is(err, posts.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case errors.Is(err, posts.ErrForumNotFound), errors.Is(err, forums.ErrForumNotFound):
		writeError(w, http.StatusNotFound, "ForumNotFound", "Forum not found")

	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	// A session naming a nonexistent account is a server-side integrity
	// failure, not a client authentication problem.
	case errors.Is(err, posts.ErrUnknownAccount):
		writeError(w, http.StatusInternalServerError, "UnknownAccount", "Account does not exist")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
