package users

import "errors"

var (
	// ErrAccountNotFound indicates the username does not map to a registered account
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials indicates the username/password pair did not verify
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidToken indicates a bearer token failed verification
	ErrInvalidToken = errors.New("invalid or expired token")
)
