package domain

import "context"

// UserSession is the current signed-in identity. It is a demo session,
// not a security boundary: the ID is an opaque random token and the
// name is derived from the email local-part.
type UserSession struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionStore holds at most one authenticated session and mirrors it
// to a durable slot on every change (written when a session exists,
// erased when absent).
type SessionStore interface {
	// Login simulates a sign-in with network latency. It resolves true
	// and installs a session iff email is non-empty and the password is
	// at least 6 characters; otherwise it resolves false with no error
	// and leaves all state untouched. The only error returned is ctx
	// cancellation during the simulated delay.
	Login(ctx context.Context, email, password string) (bool, error)

	// Logout clears the current session unconditionally.
	Logout()

	// Current returns a copy of the session, or nil when signed out.
	Current() *UserSession

	// IsAuthenticated reports whether a session exists.
	IsAuthenticated() bool

	// Subscribe registers a change callback and returns an unsubscribe
	// function.
	Subscribe(fn func()) (unsubscribe func())
}
