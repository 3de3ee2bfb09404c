// Package session provides server-side session storage keyed by opaque
// tokens. The in-memory store is the default; the Redis store exists for
// deployments that need sessions to survive a restart.
package session

import (
	"context"
	"errors"
)

// ErrNotFound indicates the token is unknown or expired.
var ErrNotFound = errors.New("session: not found")

// Store maps opaque session tokens to user ids. Tokens expire after the
// store's TTL; lookups past expiry behave as if the session never existed.
type Store interface {
	// Create issues a fresh token bound to the given user id.
	Create(ctx context.Context, userID int) (string, error)
	// Get resolves a token to a user id, or ErrNotFound.
	Get(ctx context.Context, token string) (int, error)
	// Delete invalidates a token. Deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
	Close() error
}
