package comment

import (
	"errors"
	"log"
	"net/http"

	"Agora/internal/api/handlers"
	"Agora/internal/core/comments"
	"Agora/internal/core/identity"
	"Agora/internal/core/votes"
)

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleSubmitError maps submit errors to HTTP responses. A missing post
// surfaces as a generic 500 here, not a 404: the outward contract keeps
// comment submission failures undifferentiated.
func handleSubmitError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrNotSignedIn):
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")

	case errors.Is(err, comments.ErrContentEmpty):
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Comment content is required")

	default:
		log.Printf("Comment submit error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "Failed to submit comment")
	}
}

// handleVoteError maps vote errors to HTTP responses. As with submit, a
// missing comment is a 500, not a 404.
func handleVoteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrNotSignedIn):
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")

	case errors.Is(err, votes.ErrInvalidDirection), errors.Is(err, votes.ErrMissingVoter):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	default:
		log.Printf("Comment vote error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "Failed to apply vote")
	}
}

// handleDeleteError maps delete errors to HTTP responses. "Not found" and
// "not the author" share a single 403 so callers can't probe for comment
// existence.
func handleDeleteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrNotSignedIn):
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")

	case errors.Is(err, comments.ErrNotAuthor):
		writeError(w, http.StatusForbidden, "NotAuthor", "Comment not found or not yours to delete")

	default:
		log.Printf("Comment delete error: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError", "Failed to delete comment")
	}
}
