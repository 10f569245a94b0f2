package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for post operations
var (
	// ErrForumNotFound is returned when the parent forum doesn't exist,
	// including the case where it vanished between validation and append
	ErrForumNotFound = errors.New("forum not found")

	// ErrPostNotFound is returned when a post is not found by id
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthor is returned when the requester is signed in but does not
	// own the post being deleted
	ErrNotAuthor = errors.New("only the author may delete this post")

	// ErrUnknownAccount is returned when a signed-in identity does not map
	// to a registered account. Distinct from ErrNotSignedIn so callers can
	// render different messages.
	ErrUnknownAccount = errors.New("account does not exist")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
