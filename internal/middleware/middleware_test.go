package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSessionStore implements domain.SessionStore with a fixed user.
type mockSessionStore struct {
	user *domain.UserSession
}

func (m *mockSessionStore) Login(ctx context.Context, email, password string) (bool, error) {
	return false, nil
}
func (m *mockSessionStore) Logout()                      {}
func (m *mockSessionStore) Current() *domain.UserSession { return m.user }
func (m *mockSessionStore) IsAuthenticated() bool        { return m.user != nil }
func (m *mockSessionStore) Subscribe(fn func()) func()   { return func() {} }

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	require.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
}

func TestRequestID_ReusesInboundHeader(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "upstream-id")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "upstream-id", seen)
}

func TestWithSession_InjectsSignedInShopper(t *testing.T) {
	sessions := &mockSessionStore{user: &domain.UserSession{
		ID:    "tok",
		Name:  "jane",
		Email: "jane@example.com",
	}}

	var seen *domain.UserSession
	handler := WithSession(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, "jane@example.com", seen.Email)
}

func TestWithSession_AnonymousRequestHasNoSession(t *testing.T) {
	sessions := &mockSessionStore{}

	var seen *domain.UserSession
	handler := WithSession(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Nil(t, seen)
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{path: "/", expected: "/"},
		{path: "/product/42", expected: "/product/:id"},
		{path: "/static/css/app.css", expected: "/static/*"},
		{path: "/checkout", expected: "/checkout"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizePath(tt.path), tt.path)
	}
}
