package votes

import "context"

// Ledger tracks per-user per-comment vote state. It is consumed only by the
// Comment Engine and never exposed on a route.
//
// Semantics of RecordOrUpdate, keyed by (commentID, username):
//   - no prior vote        → record it, delta is +1 or -1
//   - same direction again → no write, delta is 0 (idempotent re-vote)
//   - opposite direction   → flip the stored direction, delta is +2 or -2
type Ledger interface {
	// RecordOrUpdate applies a vote and returns the net tally delta the
	// caller must apply to the comment's score.
	RecordOrUpdate(ctx context.Context, commentID int64, username string, direction Direction) (int, error)

	// Purge removes every ledger entry for a comment. Idempotent.
	Purge(ctx context.Context, commentID int64) error
}
