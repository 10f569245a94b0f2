package users

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenIssuer = "agora"

// TokenIssuer mints and verifies signed API bearer tokens. Tokens are an
// alternative to cookie sessions for non-browser clients; both resolve to
// the same Principal in the auth middleware.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer with the given HMAC secret and token lifetime
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

// Issue returns a signed HS256 token whose subject is the username
func (t *TokenIssuer) Issue(username string) (string, error) {
	now := time.Now().UTC()
	tok, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(username).
		JwtID(uuid.NewString()).
		IssuedAt(now).
		Expiration(now.Add(t.ttl)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, t.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// Verify parses and validates a token, returning the username it was issued to
func (t *TokenIssuer) Verify(raw string) (string, error) {
	tok, err := jwt.Parse([]byte(raw),
		jwt.WithKey(jwa.HS256, t.secret),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidate(true),
	)
	if err != nil {
		return "", ErrInvalidToken
	}

	username := tok.Subject()
	if username == "" {
		return "", ErrInvalidToken
	}

	return username, nil
}
