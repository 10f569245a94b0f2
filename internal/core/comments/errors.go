package comments

import "errors"

var (
	// ErrCommentNotFound indicates the requested comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrPostNotFound indicates the parent post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthor covers both "requester is not the author" and "no such
	// comment" on delete. The two are deliberately indistinguishable so an
	// unauthorized caller can't probe whether a comment exists.
	ErrNotAuthor = errors.New("comment not found or not yours to delete")

	// ErrContentEmpty indicates the comment body was blank
	ErrContentEmpty = errors.New("comment content is required")

	// ErrWriteFailed indicates a storage-layer write could not be committed
	ErrWriteFailed = errors.New("comment update could not be committed")
)
