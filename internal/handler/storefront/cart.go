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

// CartHandler handles all cart routes.
type CartHandler struct {
	cart     domain.CartStore
	client   *catalog.Client
	renderer *handler.Renderer
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart domain.CartStore, client *catalog.Client, renderer *handler.Renderer) *CartHandler {
	return &CartHandler{
		cart:     cart,
		client:   client,
		renderer: renderer,
	}
}

// View handles GET /cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	data := BaseTemplateData(r, h.cart)
	data["Items"] = h.cart.Items()
	data["Total"] = h.cart.CartTotal()

	h.renderer.RenderHTTP(w, "cart", data)
}

// Add handles POST /cart/add. The product is fetched by ID so the cart
// line carries the full product snapshot.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil || id < 1 {
		respondInvalid(w, "cart.add", "Invalid product")
		return
	}

	product, err := h.client.FetchProductByID(ctx, id)
	if err != nil {
		logger.Warn("add to cart failed", "product_id", id, "error", err)
		status := handler.ErrorCodeToHTTPStatus(domain.ErrorCode(err))
		http.Error(w, domain.ErrorMessage(err), status)
		return
	}

	h.cart.AddToCart(*product)

	if telemetry.Business != nil {
		telemetry.Business.ProductAddToCart.Inc()
	}

	redirectBack(w, r, "/cart")
}

// Update handles POST /cart/update. A quantity of zero or less removes
// the line.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		respondInvalid(w, "cart.update", "Invalid product")
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		respondInvalid(w, "cart.update", "Invalid quantity")
		return
	}

	h.cart.UpdateQuantity(id, quantity)

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.Inc()
	}

	redirectBack(w, r, "/cart")
}

// Remove handles POST /cart/remove.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	id, err := strconv.Atoi(r.FormValue("product_id"))
	if err != nil {
		respondInvalid(w, "cart.remove", "Invalid product")
		return
	}

	h.cart.RemoveFromCart(id)

	if telemetry.Business != nil {
		telemetry.Business.CartUpdated.Inc()
	}

	redirectBack(w, r, "/cart")
}

// respondInvalid rejects a malformed cart mutation with a domain
// validation error.
func respondInvalid(w http.ResponseWriter, op, message string) {
	err := domain.Invalid(op, message)
	http.Error(w, domain.ErrorMessage(err), handler.ErrorCodeToHTTPStatus(domain.ErrorCode(err)))
}

// redirectBack sends the shopper to the page the form was submitted
// from, falling back when the referer is absent.
func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	target := r.FormValue("return_to")
	if target == "" || target[0] != '/' {
		target = fallback
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
