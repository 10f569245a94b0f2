package comment

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// DeleteHandler handles comment deletion
type DeleteHandler struct {
	service comments.Service
}

// NewDeleteHandler creates a new comment deletion handler
func NewDeleteHandler(service comments.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete removes a comment and its vote records. Only the author may
// delete; a missing comment and a foreign comment get the same 403.
// DELETE /posts/{postID}/comments/{commentID}
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipal(r)
	if principal == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	commentID, err := strconv.ParseInt(chi.URLParam(r, "commentID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "comment id must be numeric")
		return
	}

	if err := h.service.Delete(r.Context(), commentID, principal); err != nil {
		handleDeleteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
