package comments

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"Agora/internal/core/identity"
	"Agora/internal/core/posts"
	"Agora/internal/core/votes"
)

// Service defines the business logic interface for comment operations
type Service interface {
	// Submit appends a new comment to a post on behalf of the principal
	// and returns the updated post with its comment sequence
	Submit(ctx context.Context, postID int64, principal *identity.Principal, content string) (*Thread, error)

	// Vote applies a vote to a comment for username. Re-voting the same
	// direction is a no-op; voting the opposite direction flips the tally
	// by two. The caller guarantees the username came from an
	// authenticated session.
	Vote(ctx context.Context, commentID int64, username string, direction votes.Direction) error

	// Delete removes a comment and purges its vote ledger entries. Only
	// the author may delete; "not found" and "not the author" are a single
	// collapsed outcome.
	Delete(ctx context.Context, commentID int64, principal *identity.Principal) error

	// ListForPost returns a post's comments in insertion order
	ListForPost(ctx context.Context, postID int64) ([]*Comment, error)
}

type commentService struct {
	comments Repository
	posts    posts.Repository
	ledger   votes.Ledger
	logger   *slog.Logger
}

// NewCommentService creates a new comment service instance
func NewCommentService(comments Repository, postRepo posts.Repository, ledger votes.Ledger, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		comments: comments,
		posts:    postRepo,
		ledger:   ledger,
		logger:   logger,
	}
}

func (s *commentService) Submit(ctx context.Context, postID int64, principal *identity.Principal, content string) (*Thread, error) {
	if !identity.IsSignedIn(principal) {
		return nil, identity.ErrNotSignedIn
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentEmpty
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		if err == posts.ErrPostNotFound {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}

	comment := &Comment{
		PostID:  post.ID,
		Author:  principal.Username,
		Content: content,
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		"comment", comment.ID,
		"post", post.ID,
		"author", comment.Author)

	list, err := s.comments.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments after create: %w", err)
	}

	return &Thread{Post: post, Comments: list}, nil
}

func (s *commentService) Vote(ctx context.Context, commentID int64, username string, direction votes.Direction) error {
	// Authentication happens upstream; a vote must still name its voter.
	if username == "" {
		return votes.ErrMissingVoter
	}
	if !direction.Valid() {
		return votes.ErrInvalidDirection
	}

	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return err
	}

	delta, err := s.ledger.RecordOrUpdate(ctx, commentID, username, direction)
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	// Re-voting the same direction yields delta 0: nothing to persist.
	if delta == 0 {
		return nil
	}

	if err := s.comments.AdjustScore(ctx, commentID, delta); err != nil {
		return err
	}

	s.logger.Info("vote applied",
		"comment", commentID,
		"voter", username,
		"direction", direction,
		"delta", delta)

	return nil
}

func (s *commentService) Delete(ctx context.Context, commentID int64, principal *identity.Principal) error {
	if !identity.IsSignedIn(principal) {
		return identity.ErrNotSignedIn
	}

	deleted, err := s.comments.DeleteOwned(ctx, commentID, principal.Username)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if !deleted {
		return ErrNotAuthor
	}

	// The schema cascades ledger rows with the comment row; the explicit
	// purge keeps the ledger contract honest for stores without cascade.
	if err := s.ledger.Purge(ctx, commentID); err != nil {
		return fmt.Errorf("failed to purge votes: %w", err)
	}

	s.logger.Info("comment deleted",
		"comment", commentID,
		"author", principal.Username)

	return nil
}

func (s *commentService) ListForPost(ctx context.Context, postID int64) ([]*Comment, error) {
	list, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return list, nil
}
