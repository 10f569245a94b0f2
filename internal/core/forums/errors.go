package forums

import "errors"

var (
	// ErrForumNotFound indicates the requested forum doesn't exist
	ErrForumNotFound = errors.New("forum not found")

	// ErrForumExists indicates a forum with this id already exists
	ErrForumExists = errors.New("forum already exists")
)
