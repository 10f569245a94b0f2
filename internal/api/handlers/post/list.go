package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/core/posts"
)

// ListHandler handles post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new handler for listing a forum's posts
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList returns a forum's posts in creation order
// GET /forums/{forumID}/posts
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	forumID := chi.URLParam(r, "forumID")
	if forumID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "forum id is required")
		return
	}

	list, err := h.service.List(r.Context(), forumID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Never return null for an empty forum
	if list == nil {
		list = []*posts.Post{}
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}
