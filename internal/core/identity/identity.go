package identity

import "errors"

// ErrNotSignedIn is returned by any mutating operation invoked without an
// authenticated principal.
var ErrNotSignedIn = errors.New("authentication required")

// Principal is the authenticated identity bound to a request.
// A nil Principal means the request is anonymous.
type Principal struct {
	Username string `json:"username"`
}

// IsSignedIn reports whether the request carries an authenticated identity.
func IsSignedIn(p *Principal) bool {
	return p != nil && p.Username != ""
}

// IsAuthor reports whether the principal owns content attributed to author.
// Anonymous principals never own anything.
func IsAuthor(author string, p *Principal) bool {
	return IsSignedIn(p) && p.Username == author
}
