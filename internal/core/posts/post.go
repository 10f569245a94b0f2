package posts

import (
	"time"

	"Agora/internal/core/forums"
)

// Post is a titled piece of content within a forum. The author field is a
// denormalized username marker, not an ownership reference; authorization
// re-derives ownership from the session-bound principal on every mutation.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ForumID   string    `json:"forumId" db:"forum_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Author    string    `json:"author" db:"author"`
	ID        int64     `json:"id" db:"id"`
}

// PostView is a Post plus the advisory candelete flag. The flag is set when
// the viewing identity equals the post's author; it is never consulted for
// authorization, which is re-derived server-side on delete.
type PostView struct {
	*Post
	CanDelete bool `json:"candelete,omitempty"`
}

// ForumView is a forum together with its post sequence in creation order.
// Returned by Create so callers see the aggregate they just mutated.
type ForumView struct {
	Forum *forums.Forum `json:"forum"`
	Posts []*Post       `json:"posts"`
}

// CreatePostRequest carries the inputs for creating a post
type CreatePostRequest struct {
	ForumID string `json:"forumId"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
