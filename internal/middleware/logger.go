package middleware

import (
	"context"
	"log/slog"
	"net/http"
)

const loggerContextKey contextKey = "logger"

// WithRequestLogger injects a request-scoped logger carrying the
// method, path, request ID, and signed-in shopper. Place it after
// RequestID and WithSession in the chain.
func WithRequestLogger(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestLogger := baseLogger.With(
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)

			if requestID := GetRequestID(r.Context()); requestID != "" {
				requestLogger = requestLogger.With(slog.String("request_id", requestID))
			}

			if user := GetSessionFromContext(r.Context()); user != nil {
				requestLogger = requestLogger.With(slog.String("user", user.Email))
			}

			ctx := context.WithValue(r.Context(), loggerContextKey, requestLogger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetLogger retrieves the request-scoped logger from the context,
// falling back to the provided logger or slog.Default().
func GetLogger(ctx context.Context, fallback ...*slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	if len(fallback) > 0 && fallback[0] != nil {
		return fallback[0]
	}
	return slog.Default()
}
