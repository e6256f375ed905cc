package logging

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	sessionIDKey contextKey = "session_id"
	routeKey     contextKey = "route"
)

// NewSessionID returns a fresh identifier for one run of the TUI.
func NewSessionID() string {
	return uuid.NewString()
}

// WithSessionID adds a session ID to the context.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// WithRoute adds the active route path to the context.
func WithRoute(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, routeKey, route)
}

// GetSessionID retrieves the session ID from the context.
// Returns empty string if not present.
func GetSessionID(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// GetRoute retrieves the route path from the context.
// Returns empty string if not present.
func GetRoute(ctx context.Context) string {
	if r, ok := ctx.Value(routeKey).(string); ok {
		return r
	}
	return ""
}
