package httputil

import (
	"context"
	"net/http"
)

// Context key type to avoid collisions
type contextKey string

const userIDKey contextKey = "userID"

// WithUserID adds the authenticated user's id to the request context
func WithUserID(r *http.Request, userID int) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, userID)
	return r.WithContext(ctx)
}

// GetUserID retrieves the user id from context; 0 means unauthenticated
// (ids issued by the store start at 1).
func GetUserID(r *http.Request) int {
	userID, _ := r.Context().Value(userIDKey).(int)
	return userID
}
