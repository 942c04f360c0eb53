package session

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the token is unknown or expired.
// Callers cannot distinguish the two cases; both mean "not authenticated".
var ErrNotFound = errors.New("session not found or expired")

// Identity is the authenticated principal a session proves. It carries no
// credentials, only what handlers need to know about the caller.
type Identity struct {
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Store issues, resolves and revokes opaque session tokens. Each session
// has a fixed absolute expiry set at creation; activity does not renew it.
type Store interface {
	// Create issues a new token bound to identity.
	Create(ctx context.Context, identity Identity) (string, error)
	// Get resolves a token to its identity, or ErrNotFound.
	Get(ctx context.Context, token string) (*Identity, error)
	// Destroy invalidates a token. Idempotent: destroying an unknown or
	// already-destroyed token is not an error.
	Destroy(ctx context.Context, token string) error
}
