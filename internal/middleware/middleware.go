// Package middleware carries the cross-cutting HTTP concerns: request
// IDs, request-scoped logging, session injection, and metrics.
package middleware

// contextKey is a private type for context values set by this package.
type contextKey string
