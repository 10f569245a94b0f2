package forums

import "time"

// Forum is the aggregate root owning an ordered collection of posts.
// Post order is creation order; post ids are monotonic, so ordering by id
// preserves it.
type Forum struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
}
