package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
)

// CreateHandler handles comment submission
type CreateHandler struct {
	service comments.Service
}

// NewCreateHandler creates a new comment submission handler
func NewCreateHandler(service comments.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// CreateCommentInput is the request body for submitting a comment
type CreateCommentInput struct {
	Content string `json:"content"`
}

// HandleCreate appends a comment to the post and returns the updated post
// with its comment sequence
// PUT /posts/{postID}/comments
//
// Request body: { "content": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var input CreateCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal := middleware.GetPrincipal(r)
	if principal == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "post id must be numeric")
		return
	}

	thread, err := h.service.Submit(r.Context(), postID, principal, input.Content)
	if err != nil {
		handleSubmitError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, thread)
}
