package auth

import (
	"context"
	"net/http"

	"github.com/homenest/HomeNest_Backend/internal/constants"
)

// ContextKey is a custom type for context keys to prevent collisions.
type ContextKey string

// Context keys for authenticated request information.
const (
	// UserIDContextKey stores the authenticated user's ID.
	UserIDContextKey ContextKey = constants.UserIDContextKey

	// SessionIDContextKey stores the resolved session's ID.
	SessionIDContextKey ContextKey = constants.SessionIDContextKey
)

// WithUserID returns a context carrying the authenticated user ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDContextKey, userID)
}

// WithSessionID returns a context carrying the resolved session ID.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDContextKey, sessionID)
}

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(UserIDContextKey).(int64)
	return userID, ok
}

// GetSessionID extracts the resolved session ID from the request context.
func GetSessionID(r *http.Request) (string, bool) {
	sessionID, ok := r.Context().Value(SessionIDContextKey).(string)
	return sessionID, ok
}
