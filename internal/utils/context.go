// Package utils holds small helpers shared by the server and the client:
// typed context keys, JSON responses, JWT handling, id generation and the
// HTTP client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys never collide
// with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated profile id in a request context.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated profile id.
// ok is false when the value is missing, empty or of another type.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	return userID, ok && userID != ""
}

// WithUserID returns a child context carrying userID.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}
