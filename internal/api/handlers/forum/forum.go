package forum

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers"
	"Agora/internal/core/forums"
)

// Handler exposes the thin forum admin surface: list, create, delete.
type Handler struct {
	repo forums.Repository
}

// NewHandler creates a new forum handler
func NewHandler(repo forums.Repository) *Handler {
	return &Handler{repo: repo}
}

// CreateForumInput is the request body for creating a forum
type CreateForumInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// HandleList returns all forums
// GET /forums
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List(r.Context())
	if err != nil {
		log.Printf("Forum list error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "Failed to list forums")
		return
	}
	if list == nil {
		list = []*forums.Forum{}
	}

	handlers.WriteJSON(w, http.StatusOK, list)
}

// HandleCreate creates a new forum
// PUT /forums
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input CreateForumInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if input.ID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Forum id is required")
		return
	}
	if input.Name == "" {
		input.Name = input.ID
	}

	forum := &forums.Forum{
		ID:        input.ID,
		Name:      input.Name,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.repo.Create(r.Context(), forum); err != nil {
		if errors.Is(err, forums.ErrForumExists) {
			handlers.WriteError(w, http.StatusConflict, "ForumExists", "Forum already exists")
			return
		}
		log.Printf("Forum create error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "Failed to create forum")
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, forum)
}

// HandleDelete removes a forum and everything it owns
// DELETE /forums/{forumID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	forumID := chi.URLParam(r, "forumID")

	if err := h.repo.Delete(r.Context(), forumID); err != nil {
		if errors.Is(err, forums.ErrForumNotFound) {
			handlers.WriteError(w, http.StatusNotFound, "ForumNotFound", "Forum not found")
			return
		}
		log.Printf("Forum delete error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "Failed to delete forum")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"deleted": true,
	})
}
