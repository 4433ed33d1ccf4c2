package middleware

import (
	"context"
	"net/http"

	"github.com/neotechlabs/storefront/internal/domain"
)

const sessionContextKey contextKey = "session"

// WithSession injects the current shopper session, if any, into the
// request context so handlers and templates can read it without
// touching the store directly.
func WithSession(store domain.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := store.Current(); user != nil {
				ctx := context.WithValue(r.Context(), sessionContextKey, user)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetSessionFromContext returns the signed-in shopper, or nil when the
// request is anonymous.
func GetSessionFromContext(ctx context.Context) *domain.UserSession {
	if user, ok := ctx.Value(sessionContextKey).(*domain.UserSession); ok {
		return user
	}
	return nil
}
