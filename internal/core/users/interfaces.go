package users

import "context"

// Repository defines the data access interface for accounts
type Repository interface {
	// GetByUsername retrieves an account by username
	// Returns ErrAccountNotFound if absent
	GetByUsername(ctx context.Context, username string) (*Account, error)

	// GetCredentials retrieves the stored password hash for a username
	// Returns ErrAccountNotFound if absent
	GetCredentials(ctx context.Context, username string) (string, error)

	// Create inserts a new account with the given password hash
	// Returns ErrUsernameTaken on duplicate username
	Create(ctx context.Context, username, passwordHash string) (*Account, error)
}
