package votes

import "time"

// Direction is the recorded direction of a vote on a comment.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Valid reports whether d is one of the two recognized directions.
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

// Weight is the tally contribution of a single vote in this direction.
func (d Direction) Weight() int {
	if d == DirectionUp {
		return 1
	}
	return -1
}

// FromBool converts the wire-level boolean vote flag into a Direction.
// true is an upvote.
func FromBool(up bool) Direction {
	if up {
		return DirectionUp
	}
	return DirectionDown
}

// Vote is one ledger entry: a user's current vote on a comment.
// At most one entry exists per (comment, user) pair.
type Vote struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Username  string    `json:"username" db:"username"`
	Direction Direction `json:"direction" db:"direction"`
	CommentID int64     `json:"commentId" db:"comment_id"`
}
