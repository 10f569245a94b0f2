package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"Agora/internal/core/forums"
	"Agora/internal/core/identity"
	"Agora/internal/core/users"
)

// Service defines the business logic interface for post operations
type Service interface {
	// List returns a forum's posts in insertion order
	List(ctx context.Context, forumID string) ([]*Post, error)

	// Create appends a new post to a forum on behalf of the principal
	// and returns the updated forum aggregate
	Create(ctx context.Context, req CreatePostRequest, principal *identity.Principal) (*ForumView, error)

	// Get resolves a post by id. The returned view carries candelete=true
	// when the viewer is the author; the flag is advisory only.
	Get(ctx context.Context, postID int64, viewer *identity.Principal) (*PostView, error)

	// Delete removes a post; only the author may delete
	Delete(ctx context.Context, forumID string, postID int64, principal *identity.Principal) error
}

type postService struct {
	posts     Repository
	forums    forums.Repository
	directory users.Directory
	idgen     *IDGenerator
	logger    *slog.Logger
}

// NewPostService creates a new post service instance
func NewPostService(posts Repository, forumRepo forums.Repository, directory users.Directory, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		posts:     posts,
		forums:    forumRepo,
		directory: directory,
		idgen:     NewIDGenerator(),
		logger:    logger,
	}
}

func (s *postService) List(ctx context.Context, forumID string) ([]*Post, error) {
	if _, err := s.forums.GetByID(ctx, forumID); err != nil {
		return nil, err
	}

	list, err := s.posts.ListByForum(ctx, forumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return list, nil
}

func (s *postService) Create(ctx context.Context, req CreatePostRequest, principal *identity.Principal) (*ForumView, error) {
	if !identity.IsSignedIn(principal) {
		return nil, identity.ErrNotSignedIn
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, NewValidationError("title", "title is required")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, NewValidationError("content", "content is required")
	}

	// The session names a user; make sure that user still resolves to a
	// real account before attributing content to it.
	if _, err := s.directory.Resolve(ctx, principal.Username); err != nil {
		if err == users.ErrAccountNotFound {
			return nil, ErrUnknownAccount
		}
		return nil, fmt.Errorf("failed to resolve account: %w", err)
	}

	forum, err := s.forums.GetByID(ctx, req.ForumID)
	if err != nil {
		if err == forums.ErrForumNotFound {
			return nil, ErrForumNotFound
		}
		return nil, fmt.Errorf("failed to load forum: %w", err)
	}

	post := &Post{
		ID:        s.idgen.Next(),
		ForumID:   forum.ID,
		Title:     title,
		Content:   content,
		Author:    principal.Username,
		CreatedAt: time.Now().UTC(),
	}

	// The forum may have vanished between the check above and this append;
	// the repository reports that as ErrForumNotFound.
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		"post", post.ID,
		"forum", forum.ID,
		"author", post.Author)

	list, err := s.posts.ListByForum(ctx, forum.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts after create: %w", err)
	}

	return &ForumView{Forum: forum, Posts: list}, nil
}

func (s *postService) Get(ctx context.Context, postID int64, viewer *identity.Principal) (*PostView, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	return &PostView{
		Post:      post,
		CanDelete: identity.IsAuthor(post.Author, viewer),
	}, nil
}

func (s *postService) Delete(ctx context.Context, forumID string, postID int64, principal *identity.Principal) error {
	if !identity.IsSignedIn(principal) {
		return identity.ErrNotSignedIn
	}

	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !identity.IsAuthor(post.Author, principal) {
		return ErrNotAuthor
	}

	// A racing delete may have removed the post already; the repository
	// treats zero rows affected as ErrPostNotFound, never as success.
	if err := s.posts.Delete(ctx, forumID, postID); err != nil {
		return err
	}

	s.logger.Info("post deleted",
		"post", postID,
		"forum", forumID,
		"author", principal.Username)

	return nil
}
