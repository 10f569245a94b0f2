package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/posts"
)

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

func (r *postgresPostRepo) GetByID(ctx context.Context, id int64) (*posts.Post, error) {
	query := `
		SELECT id, forum_id, title, content, author, created_at
		FROM posts
		WHERE id = $1
	`

	var post posts.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.ForumID, &post.Title, &post.Content, &post.Author, &post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, posts.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

// ListByForum returns the forum's posts in insertion order. Post ids are
// monotonic, so ordering by id is creation order.
func (r *postgresPostRepo) ListByForum(ctx context.Context, forumID string) ([]*posts.Post, error) {
	query := `
		SELECT id, forum_id, title, content, author, created_at
		FROM posts
		WHERE forum_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, forumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*posts.Post
	for rows.Next() {
		var post posts.Post
		err := rows.Scan(&post.ID, &post.ForumID, &post.Title, &post.Content, &post.Author, &post.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		result = append(result, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return result, nil
}

func (r *postgresPostRepo) Create(ctx context.Context, post *posts.Post) error {
	query := `
		INSERT INTO posts (id, forum_id, title, content, author, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		post.ID, post.ForumID, post.Title, post.Content, post.Author, post.CreatedAt,
	)
	if err != nil {
		// The forum was deleted between the service's existence check and
		// this append.
		if isForeignKeyViolation(err) {
			return posts.ErrForumNotFound
		}
		return fmt.Errorf("failed to insert post: %w", err)
	}

	return nil
}

// Delete removes the post row; comments and their votes cascade with it, so
// removal from the forum's sequence and the by-id index is one atomic
// statement. Zero rows affected means a racing request got there first.
func (r *postgresPostRepo) Delete(ctx context.Context, forumID string, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1 AND forum_id = $2`

	result, err := r.db.ExecContext(ctx, query, postID, forumID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrPostNotFound
	}

	return nil
}
