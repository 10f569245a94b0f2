package forums

import "context"

// Repository defines the data access interface for forum aggregates.
// The Post Engine consumes GetByID for existence checks before appending
// posts; post rows themselves are managed by the posts repository against
// the same database.
type Repository interface {
	// GetByID retrieves a forum by its identifier
	// Returns ErrForumNotFound if absent
	GetByID(ctx context.Context, id string) (*Forum, error)

	// List retrieves all forums ordered by creation time
	List(ctx context.Context) ([]*Forum, error)

	// Create inserts a new forum
	// Returns ErrForumExists on duplicate id
	Create(ctx context.Context, forum *Forum) error

	// Delete removes a forum and, through cascade, everything it owns
	// Returns ErrForumNotFound if no row was removed
	Delete(ctx context.Context, id string) error
}
