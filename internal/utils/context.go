// Package utils provides small helpers shared by the server and the client:
// typed context keys, JSON response writing, JWT generation and validation,
// UUID generation and the resty HTTP client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions with
// string keys set by other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the auth middleware stores the
// authenticated user's identifier.
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, "0190d4c2-...")
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the user identifier stored under
// [UserIDCtxKey]. ok is false when the value is missing, has an unexpected
// type or is empty.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
