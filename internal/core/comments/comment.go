package comments

import (
	"time"

	"Agora/internal/core/posts"
)

// Comment is a reply attached to a post. Comments are flat: they belong to
// exactly one post and never to another comment. Score is the net tally,
// upvotes minus downvotes, maintained alongside the vote ledger.
type Comment struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    string    `json:"author" db:"author"`
	Content   string    `json:"content" db:"content"`
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	Score     int       `json:"score" db:"score"`
}

// Thread is a post together with its comment sequence in creation order.
// Returned by Submit so callers see the post they just commented on.
type Thread struct {
	Post     *posts.Post `json:"post"`
	Comments []*Comment  `json:"comments"`
}
