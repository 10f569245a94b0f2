package votes

import "errors"

var (
	// ErrInvalidDirection indicates the vote direction is not "up" or "down"
	ErrInvalidDirection = errors.New("invalid vote direction: must be 'up' or 'down'")

	// ErrMissingVoter indicates the voter username was empty
	ErrMissingVoter = errors.New("voter username is required")
)
