package comments

import "context"

// Repository defines the data access interface for comments
type Repository interface {
	// GetByID retrieves a comment by id
	// Returns ErrCommentNotFound if absent
	GetByID(ctx context.Context, id int64) (*Comment, error)

	// ListByPost retrieves a post's comments in insertion order
	ListByPost(ctx context.Context, postID int64) ([]*Comment, error)

	// Create appends a comment to its post and fills in the generated id
	// Returns ErrPostNotFound if the post vanished before the append
	// committed (detected via foreign key violation)
	Create(ctx context.Context, comment *Comment) error

	// AdjustScore applies a tally delta to a comment's score
	// Returns ErrWriteFailed if no row was updated
	AdjustScore(ctx context.Context, id int64, delta int) error

	// DeleteOwned removes a comment only if author matches. Reports whether
	// a row was removed; a miss does not distinguish "absent" from "wrong
	// author".
	DeleteOwned(ctx context.Context, id int64, author string) (bool, error)
}
