package posts

import "context"

// Repository defines the data access interface for posts.
//
// Mutations rely on the database's per-statement atomicity: a delete or
// append that affects zero rows is reported as a not-found error, never as
// success, so racing requests against the same post resolve cleanly.
type Repository interface {
	// GetByID resolves a post by id regardless of its parent forum
	// Returns ErrPostNotFound if absent
	GetByID(ctx context.Context, id int64) (*Post, error)

	// ListByForum retrieves a forum's posts in insertion order
	ListByForum(ctx context.Context, forumID string) ([]*Post, error)

	// Create appends a post to its forum
	// Returns ErrForumNotFound if the forum vanished before the append
	// committed (detected via foreign key violation)
	Create(ctx context.Context, post *Post) error

	// Delete removes a post from both the forum's sequence and the by-id
	// index in one statement; comments and their votes go with it
	// Returns ErrPostNotFound if no row was removed
	Delete(ctx context.Context, forumID string, postID int64) error
}
