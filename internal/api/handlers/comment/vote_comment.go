package comment

import (
	"encoding/json"
	"net/http"
	"strconv"

	"Agora/internal/api/handlers"
	"Agora/internal/api/middleware"
	"Agora/internal/core/comments"
	"Agora/internal/core/votes"
)

// VoteHandler handles comment voting
type VoteHandler struct {
	service comments.Service
}

// NewVoteHandler creates a new comment vote handler
func NewVoteHandler(service comments.Service) *VoteHandler {
	return &VoteHandler{service: service}
}

// VoteCommentInput is the request body for voting on a comment. Both fields
// arrive as strings: the comment id must parse as an integer and the vote
// flag as a boolean, each rejected with 400 otherwise.
type VoteCommentInput struct {
	Comment string `json:"comment"`
	Vote    string `json:"vote"`
}

// HandleVote applies an up/down vote to a comment. Re-voting the same
// direction is harmless; the opposite direction flips the tally by two.
// POST /posts/{postID}/comments
//
// Request body: { "comment": "123", "vote": "true" }
func (h *VoteHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	var input VoteCommentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	principal := middleware.GetPrincipal(r)
	if principal == nil {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	commentID, err := strconv.ParseInt(input.Comment, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "comment id must be numeric")
		return
	}

	up, err := strconv.ParseBool(input.Vote)
	if err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "vote must be a boolean")
		return
	}

	if err := h.service.Vote(r.Context(), commentID, principal.Username, votes.FromBool(up)); err != nil {
		handleVoteError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"voted": true,
	})
}
