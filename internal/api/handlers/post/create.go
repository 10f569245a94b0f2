package post

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new handler for creating posts
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// CreatePostInput is the request body for creating a post
type CreatePostInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// HandleCreate appends a new post to the forum and returns the updated
// forum aggregate
// PUT /forums/{forumID}/posts
//
// Request body: { "title": "...", "content": "..." }
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)

	var input CreatePostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal := middleware.GetPrincipal(r)
	if principal == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	req := posts.CreatePostRequest{
		ForumID: chi.URLParam(r, "forumID"),
		Title:   input.Title,
		Content: input.Content,
	}

	view, err := h.service.Create(r.Context(), req, principal)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, view)
}
