package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Agora/internal/core/votes"
)

type postgresVoteLedger struct {
	db *sql.DB
}

// NewVoteLedger creates a new PostgreSQL vote ledger
func NewVoteLedger(db *sql.DB) votes.Ledger {
	return &postgresVoteLedger{db: db}
}

// RecordOrUpdate applies a vote inside a transaction. The existing entry is
// locked first so the computed delta and the stored direction cannot diverge
// when two requests race on the same (comment, user) pair.
func (r *postgresVoteLedger) RecordOrUpdate(ctx context.Context, commentID int64, username string, direction votes.Direction) (int, error) {
	if !direction.Valid() {
		return 0, votes.ErrInvalidDirection
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin vote transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var prior votes.Direction
	err = tx.QueryRowContext(ctx, `
		SELECT direction FROM comment_votes
		WHERE comment_id = $1 AND username = $2
		FOR UPDATE
	`, commentID, username).Scan(&prior)

	var delta int
	switch {
	case err == sql.ErrNoRows:
		_, err = tx.ExecContext(ctx, `
			INSERT INTO comment_votes (comment_id, username, direction, created_at)
			VALUES ($1, $2, $3, NOW())
		`, commentID, username, direction)
		if err != nil {
			return 0, fmt.Errorf("failed to insert vote: %w", err)
		}
		delta = direction.Weight()

	case err != nil:
		return 0, fmt.Errorf("failed to read existing vote: %w", err)

	case prior == direction:
		// Same direction again: harmless no-op, nothing written.
		delta = 0

	default:
		_, err = tx.ExecContext(ctx, `
			UPDATE comment_votes SET direction = $3
			WHERE comment_id = $1 AND username = $2
		`, commentID, username, direction)
		if err != nil {
			return 0, fmt.Errorf("failed to flip vote: %w", err)
		}
		delta = 2 * direction.Weight()
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit vote: %w", err)
	}

	return delta, nil
}

// Purge removes every ledger entry for a comment. Idempotent: purging a
// comment with no entries is success.
func (r *postgresVoteLedger) Purge(ctx context.Context, commentID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM comment_votes WHERE comment_id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("failed to purge votes: %w", err)
	}
	return nil
}
