// Package session carries the caller's identity explicitly through every
// operation. Nothing in the service reads the current user from globals.
package session

import (
	"context"
	"errors"
)

// ErrNotAuthenticated no active session for a user-scoped operation
var ErrNotAuthenticated = errors.New("session: must be logged in")

// Session identity of the caller
type Session struct {
	UserID string
	// IDToken forwarded to the function gateway as a bearer token
	IDToken string
}

// IsAuthenticated true when the session names a user
func (s Session) IsAuthenticated() bool {
	return s.UserID != ""
}

// Require returns ErrNotAuthenticated for an empty session
func (s Session) Require() error {
	if !s.IsAuthenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

type ctxKey struct{}

// WithSession stores the session in a request context (set by the auth middleware)
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored by WithSession, or an empty one
func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}
