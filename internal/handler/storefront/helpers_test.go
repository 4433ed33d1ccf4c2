package storefront_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/neotechlabs/storefront/internal/catalog"
	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/handler"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// newTestRenderer loads the real page templates so rendering failures
// surface in handler tests.
func newTestRenderer(t *testing.T) *handler.Renderer {
	t.Helper()

	renderer, err := handler.NewRenderer("../../../web/templates")
	require.NoError(t, err)
	return renderer
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func domainProduct(id int, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Title: "Test Product",
		Price: decimal.RequireFromString(price),
	}
}

// newCatalogServer serves a fixed product set over the catalog API
// shape.
func newCatalogServer(t *testing.T, products []map[string]any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(products)
	})
	mux.HandleFunc("GET /products/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"electronics", "jewelery"})
	})
	mux.HandleFunc("GET /products/category/{category}", func(w http.ResponseWriter, r *http.Request) {
		var matched []map[string]any
		for _, p := range products {
			if p["category"] == r.PathValue("category") {
				matched = append(matched, p)
			}
		}
		json.NewEncoder(w).Encode(matched)
	})
	mux.HandleFunc("GET /products/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, p := range products {
			if pid, ok := p["id"].(int); ok && r.PathValue("id") == strconv.Itoa(pid) {
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		http.NotFound(w, r)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func catalogFixture() []map[string]any {
	return []map[string]any{
		{
			"id":          1,
			"title":       "Wireless Headphones",
			"price":       109.95,
			"description": "Over-ear, noise cancelling.",
			"category":    "electronics",
			"image":       "https://example.com/headphones.jpg",
			"rating":      map[string]any{"rate": 4.5, "count": 120},
		},
		{
			"id":          2,
			"title":       "Silver Ring",
			"price":       22.30,
			"description": "Sterling silver.",
			"category":    "jewelery",
			"image":       "https://example.com/ring.jpg",
			"rating":      map[string]any{"rate": 3.9, "count": 70},
		},
	}
}

func newCatalogClient(t *testing.T) *catalog.Client {
	t.Helper()
	srv := newCatalogServer(t, catalogFixture())
	return catalog.NewClient(srv.URL)
}

// mockSessionStore implements domain.SessionStore with a fixed user.
type mockSessionStore struct {
	user      *domain.UserSession
	loginFn   func(ctx context.Context, email, password string) (bool, error)
	loggedOut bool
}

func (m *mockSessionStore) Login(ctx context.Context, email, password string) (bool, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return false, nil
}

func (m *mockSessionStore) Logout() {
	m.user = nil
	m.loggedOut = true
}

func (m *mockSessionStore) Current() *domain.UserSession { return m.user }
func (m *mockSessionStore) IsAuthenticated() bool        { return m.user != nil }
func (m *mockSessionStore) Subscribe(fn func()) func()   { return func() {} }
