package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/forums"
)

type postgresForumRepo struct {
	db *sql.DB
}

// NewForumRepository creates a new PostgreSQL forum repository
func NewForumRepository(db *sql.DB) forums.Repository {
	return &postgresForumRepo{db: db}
}

func (r *postgresForumRepo) GetByID(ctx context.Context, id string) (*forums.Forum, error) {
	query := `
		SELECT id, name, created_at
		FROM forums
		WHERE id = $1
	`

	var forum forums.Forum
	err := r.db.QueryRowContext(ctx, query, id).Scan(&forum.ID, &forum.Name, &forum.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, forums.ErrForumNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get forum: %w", err)
	}

	return &forum, nil
}

func (r *postgresForumRepo) List(ctx context.Context) ([]*forums.Forum, error) {
	query := `
		SELECT id, name, created_at
		FROM forums
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list forums: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*forums.Forum
	for rows.Next() {
		var forum forums.Forum
		if err := rows.Scan(&forum.ID, &forum.Name, &forum.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan forum: %w", err)
		}
		result = append(result, &forum)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating forums: %w", err)
	}

	return result, nil
}

func (r *postgresForumRepo) Create(ctx context.Context, forum *forums.Forum) error {
	query := `
		INSERT INTO forums (id, name, created_at)
		VALUES ($1, $2, NOW())
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query, forum.ID, forum.Name).Scan(&forum.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return forums.ErrForumExists
		}
		return fmt.Errorf("failed to insert forum: %w", err)
	}

	return nil
}

func (r *postgresForumRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM forums WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete forum: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return forums.ErrForumNotFound
	}

	return nil
}
