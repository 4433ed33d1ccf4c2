package storefront

import (
	"net/http"
	"strconv"

	"github.com/neotechlabs/storefront/internal/catalog"
	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/handler"
	"github.com/neotechlabs/storefront/internal/middleware"
	"github.com/neotechlabs/storefront/internal/telemetry"
)

// ProductHandler renders the product detail page.
type ProductHandler struct {
	client   *catalog.Client
	cart     domain.CartStore
	renderer *handler.Renderer
}

// NewProductHandler creates a new product handler.
func NewProductHandler(client *catalog.Client, cart domain.CartStore, renderer *handler.Renderer) *ProductHandler {
	return &ProductHandler{
		client:   client,
		cart:     cart,
		renderer: renderer,
	}
}

// Detail handles GET /product/{id}.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		h.renderError(w, r, http.StatusNotFound, "Product not found")
		return
	}

	product, err := h.client.FetchProductByID(ctx, id)
	if err != nil {
		logger.Warn("failed to fetch product", "product_id", id, "error", err)
		h.renderError(w, r, handler.ErrorCodeToHTTPStatus(domain.ErrorCode(err)), domain.ErrorMessage(err))
		return
	}

	if telemetry.Business != nil {
		telemetry.Business.ProductViews.Inc()
	}

	data := BaseTemplateData(r, h.cart)
	data["Product"] = product

	h.renderer.RenderHTTP(w, "product", data)
}

func (h *ProductHandler) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := BaseTemplateData(r, h.cart)
	data["Error"] = message

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.renderer.Render(w, "product", data); err != nil {
		http.Error(w, message, status)
	}
}
