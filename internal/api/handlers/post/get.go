package post

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
	"Agora/internal/core/posts"
)

// GetHandler handles single-post retrieval
type GetHandler struct {
	service  posts.Service
	comments comments.Service
}

// NewGetHandler creates a new handler for fetching a post with its comments
func NewGetHandler(service posts.Service, commentService comments.Service) *GetHandler {
	return &GetHandler{service: service, comments: commentService}
}

// GetPostOutput is a post view plus its comment sequence
type GetPostOutput struct {
	*posts.PostView
	Comments []*comments.Comment `json:"comments"`
}

// HandleGet resolves a post by id. The candelete flag is present only when
// the viewer is the author, and is advisory: delete re-validates authorship
// server-side regardless of what the client claims.
// GET /posts/{postID}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "post id must be numeric")
		return
	}

	view, err := h.service.Get(r.Context(), postID, middleware.GetPrincipal(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	list, err := h.comments.ListForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []*comments.Comment{}
	}

	handlers.WriteJSON(w, http.StatusOK, GetPostOutput{PostView: view, Comments: list})
}
