package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"Agora/internal/core/identity"
	"Agora/internal/core/users"
)

// SessionName is the cookie name carrying the signed session
const SessionName = "agora_session"

// sessionUserKey is the session value holding the username
const sessionUserKey = "username"

// Context keys for storing request identity
type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware resolves the caller's principal from either the session
// cookie or an Authorization Bearer token. Both paths yield the same
// *identity.Principal; downstream code never cares which transport carried
// the identity.
type AuthMiddleware struct {
	store  sessions.Store
	tokens *users.TokenIssuer
}

// NewAuthMiddleware creates an auth middleware over a cookie store and a
// token issuer. The token issuer may be nil to disable the Bearer path.
func NewAuthMiddleware(store sessions.Store, tokens *users.TokenIssuer) *AuthMiddleware {
	return &AuthMiddleware{store: store, tokens: tokens}
}

// RequireAuth ensures the request carries an authenticated identity.
// Returns 401 otherwise; on success injects the principal into context.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := m.resolve(r)
		if !identity.IsSignedIn(principal) {
			writeAuthError(w, "Authentication required")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the principal if present but doesn't require it.
// Useful for endpoints that work for both authenticated and anonymous users.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := m.resolve(r)
		if identity.IsSignedIn(principal) {
			ctx := context.WithValue(r.Context(), principalKey, principal)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// resolve extracts the principal from the Bearer token or the session
// cookie, in that order. Returns nil for anonymous requests.
func (m *AuthMiddleware) resolve(r *http.Request) *identity.Principal {
	if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") && m.tokens != nil {
		token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		username, err := m.tokens.Verify(token)
		if err != nil {
			log.Printf("[AUTH_FAILURE] type=token_invalid ip=%s method=%s path=%s error=%v",
				r.RemoteAddr, r.Method, r.URL.Path, err)
			return nil
		}
		return &identity.Principal{Username: username}
	}

	session, err := m.store.Get(r, SessionName)
	if err != nil {
		// Tampered or stale cookie: treat as anonymous.
		return nil
	}
	username, _ := session.Values[sessionUserKey].(string)
	if username == "" {
		return nil
	}
	return &identity.Principal{Username: username}
}

// SignIn binds the username to the request's session cookie
func (m *AuthMiddleware) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values[sessionUserKey] = username
	return session.Save(r, w)
}

// SignOut clears the request's session cookie
func (m *AuthMiddleware) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	delete(session.Values, sessionUserKey)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// GetPrincipal extracts the principal from the request context.
// Returns nil if the request is anonymous.
func GetPrincipal(r *http.Request) *identity.Principal {
	principal, _ := r.Context().Value(principalKey).(*identity.Principal)
	return principal
}

// SetTestPrincipal injects a principal into the context for testing.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestPrincipal(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, principalKey, &identity.Principal{Username: username})
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"AuthenticationRequired","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
