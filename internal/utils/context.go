// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, UUID generation,
// and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/recipe-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key used to store the resolved session in the
// request context. Used together with GetSessionFromContext for type-safe
// retrieval of the authenticated identity.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, session)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the resolved session from the context.
//
// Returns the models.Session and an ok flag:
//   - ok == true  — a session was resolved for this request
//   - ok == false — the request is anonymous or the value has an
//     unexpected type
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}

// GetUserIDFromContext retrieves the authenticated user's identifier from
// the session stored in the context.
//
// Returns the user ID of type int64 and an ok flag. A request with no
// resolved session yields ok == false.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}
