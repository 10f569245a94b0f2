package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/comments"
)

type postgresCommentRepo struct {
	db *sql.DB
}

// NewCommentRepository creates a new PostgreSQL comment repository
func NewCommentRepository(db *sql.DB) comments.Repository {
	return &postgresCommentRepo{db: db}
}

func (r *postgresCommentRepo) GetByID(ctx context.Context, id int64) (*comments.Comment, error) {
	query := `
		SELECT id, post_id, author, content, score, created_at
		FROM comments
		WHERE id = $1
	`

	var comment comments.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.Author, &comment.Content, &comment.Score, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, comments.ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return &comment, nil
}

func (r *postgresCommentRepo) ListByPost(ctx context.Context, postID int64) ([]*comments.Comment, error) {
	query := `
		SELECT id, post_id, author, content, score, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*comments.Comment
	for rows.Next() {
		var comment comments.Comment
		err := rows.Scan(&comment.ID, &comment.PostID, &comment.Author, &comment.Content, &comment.Score, &comment.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		result = append(result, &comment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return result, nil
}

func (r *postgresCommentRepo) Create(ctx context.Context, comment *comments.Comment) error {
	query := `
		INSERT INTO comments (post_id, author, content, score, created_at)
		VALUES ($1, $2, $3, 0, NOW())
		RETURNING id, score, created_at
	`

	err := r.db.QueryRowContext(ctx, query, comment.PostID, comment.Author, comment.Content).
		Scan(&comment.ID, &comment.Score, &comment.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return comments.ErrPostNotFound
		}
		return fmt.Errorf("failed to insert comment: %w", err)
	}

	return nil
}

func (r *postgresCommentRepo) AdjustScore(ctx context.Context, id int64, delta int) error {
	query := `UPDATE comments SET score = score + $2 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust score: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check score update: %w", err)
	}
	// The comment's row vanished under us; the tally update could not be
	// committed.
	if rowsAffected == 0 {
		return comments.ErrWriteFailed
	}

	return nil
}

// DeleteOwned removes the comment only when the author matches. Ledger rows
// cascade with the comment row. A miss stays ambiguous between "absent" and
// "wrong author" on purpose.
func (r *postgresCommentRepo) DeleteOwned(ctx context.Context, id int64, author string) (bool, error) {
	query := `DELETE FROM comments WHERE id = $1 AND author = $2`

	result, err := r.db.ExecContext(ctx, query, id, author)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check delete result: %w", err)
	}

	return rowsAffected > 0, nil
}
