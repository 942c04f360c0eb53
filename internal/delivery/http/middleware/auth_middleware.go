package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"vet-clinic-api/pkg/response"
	"vet-clinic-api/pkg/session"
)

type contextKey string

const (
	IdentityKey contextKey = "identity"
	TokenKey    contextKey = "token"
)

type AuthMiddleware struct {
	sessions session.Store
}

func NewAuthMiddleware(sessions session.Store) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// Authenticate resolves the presented session token before any handler
// runs. Missing, unknown and expired tokens are rejected identically, with
// nothing read or written.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := ExtractToken(r)
		if token == "" {
			response.Unauthorized(w, "Authentication required")
			return
		}

		identity, err := m.sessions.Get(r.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				response.Unauthorized(w, "Invalid or expired session")
				return
			}
			response.InternalServerError(w, "Failed to validate session")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, *identity)
		ctx = context.WithValue(ctx, TokenKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ExtractToken pulls the session token from the Authorization header.
// Returns "" when absent or malformed.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// GetIdentityFromContext extracts the authenticated identity from context.
func GetIdentityFromContext(ctx context.Context) (session.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(session.Identity)
	return identity, ok
}

// GetTokenFromContext extracts the session token from context.
func GetTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(TokenKey).(string)
	return token, ok
}
