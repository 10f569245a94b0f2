package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/users"
)

type postgresUserRepo struct {
	db *sql.DB
}

// NewUserRepository creates a new PostgreSQL account repository
func NewUserRepository(db *sql.DB) users.Repository {
	return &postgresUserRepo{db: db}
}

func (r *postgresUserRepo) GetByUsername(ctx context.Context, username string) (*users.Account, error) {
	query := `
		SELECT id, username, created_at
		FROM accounts
		WHERE username = $1
	`

	var account users.Account
	err := r.db.QueryRowContext(ctx, query, username).Scan(&account.ID, &account.Username, &account.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, users.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

func (r *postgresUserRepo) GetCredentials(ctx context.Context, username string) (string, error) {
	query := `SELECT password_hash FROM accounts WHERE username = $1`

	var hash string
	err := r.db.QueryRowContext(ctx, query, username).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", users.ErrAccountNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get credentials: %w", err)
	}

	return hash, nil
}

func (r *postgresUserRepo) Create(ctx context.Context, username, passwordHash string) (*users.Account, error) {
	query := `
		INSERT INTO accounts (username, password_hash, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, username, created_at
	`

	var account users.Account
	err := r.db.QueryRowContext(ctx, query, username, passwordHash).
		Scan(&account.ID, &account.Username, &account.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, users.ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return &account, nil
}
