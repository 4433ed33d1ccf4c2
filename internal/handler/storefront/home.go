package storefront

import (
	"net/http"

	"github.com/neotechlabs/storefront/internal/catalog"
	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/handler"
	"github.com/neotechlabs/storefront/internal/middleware"
)

// HomeHandler renders the product listing.
type HomeHandler struct {
	loader   *catalog.Loader
	client   *catalog.Client
	cart     domain.CartStore
	renderer *handler.Renderer
}

// NewHomeHandler creates a new home handler.
func NewHomeHandler(loader *catalog.Loader, client *catalog.Client, cart domain.CartStore, renderer *handler.Renderer) *HomeHandler {
	return &HomeHandler{
		loader:   loader,
		client:   client,
		cart:     cart,
		renderer: renderer,
	}
}

// ServeHTTP handles GET / with an optional ?category= filter.
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	category := r.URL.Query().Get("category")

	h.loader.Load(ctx, category)
	state := h.loader.State()

	// Category chips are decorative; a fetch failure here never blocks
	// the listing.
	categories, err := h.client.Categories(ctx)
	if err != nil {
		logger.Warn("failed to fetch categories", "error", err)
		categories = nil
	}

	data := BaseTemplateData(r, h.cart)
	data["Products"] = state.Products
	data["Error"] = state.Err
	data["Categories"] = categories
	data["ActiveCategory"] = category

	if state.Err != "" {
		logger.Warn("product listing unavailable", "category", category, "message", state.Err)
	}

	h.renderer.RenderHTTP(w, "home", data)
}
