package storefront

import (
	"net/http"

	"github.com/neotechlabs/storefront/internal/checkout"
	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/handler"
	"github.com/neotechlabs/storefront/internal/middleware"
	"github.com/neotechlabs/storefront/internal/telemetry"
)

// CheckoutHandler handles the checkout page, form submission, and the
// order confirmation view.
type CheckoutHandler struct {
	cart         domain.CartStore
	sessions     domain.SessionStore
	validator    *checkout.Validator
	orchestrator *checkout.Orchestrator
	renderer     *handler.Renderer
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(
	cart domain.CartStore,
	sessions domain.SessionStore,
	validator *checkout.Validator,
	orchestrator *checkout.Orchestrator,
	renderer *handler.Renderer,
) *CheckoutHandler {
	return &CheckoutHandler{
		cart:         cart,
		sessions:     sessions,
		validator:    validator,
		orchestrator: orchestrator,
		renderer:     renderer,
	}
}

// Page handles GET /checkout. An anonymous shopper sees the sign-in
// form in place of the payment form; an empty cart shows the empty
// state.
func (h *CheckoutHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, checkout.Form{}, nil)
}

// Submit handles POST /checkout.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	if !h.sessions.IsAuthenticated() {
		http.Redirect(w, r, "/checkout", http.StatusSeeOther)
		return
	}

	if h.cart.ItemsCount() == 0 {
		http.Redirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := checkout.Form{
		Email:      r.FormValue("email"),
		CardNumber: r.FormValue("cardNumber"),
		CardName:   r.FormValue("cardName"),
		Expiry:     r.FormValue("expiry"),
		CVV:        r.FormValue("cvv"),
		Address:    r.FormValue("address"),
		City:       r.FormValue("city"),
		ZipCode:    r.FormValue("zipCode"),
	}

	if err := h.validator.Validate(form); err != nil {
		errs := domain.GetValidationFields(err)
		logger.Info("checkout rejected", "fields", len(errs))
		h.renderPage(w, r, form, errs)
		return
	}

	order, err := h.orchestrator.PlaceOrder(ctx)
	if err != nil {
		logger.Error("order placement failed", "error", err)
		http.Error(w, domain.ErrorMessage(err), handler.ErrorCodeToHTTPStatus(domain.ErrorCode(err)))
		return
	}

	logger.Info("checkout complete", "order_number", order.Number)
	http.Redirect(w, r, "/order-confirmation", http.StatusSeeOther)
}

// OrderConfirmation handles GET /order-confirmation. Without a live
// order there is nothing to show, so the shopper goes home.
func (h *CheckoutHandler) OrderConfirmation(w http.ResponseWriter, r *http.Request) {
	order := h.orchestrator.LastOrder()
	if order == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := BaseTemplateData(r, h.cart)
	data["Order"] = order
	data["RedirectSeconds"] = int(h.orchestrator.RedirectDelay().Seconds())

	h.renderer.RenderHTTP(w, "confirmation", data)
}

func (h *CheckoutHandler) renderPage(w http.ResponseWriter, r *http.Request, form checkout.Form, errs map[string]string) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	data := BaseTemplateData(r, h.cart)
	data["SignedIn"] = h.sessions.IsAuthenticated()
	data["Items"] = h.cart.Items()
	data["Form"] = form
	data["Errors"] = errs

	if r.URL.Query().Get("login_error") != "" {
		data["LoginError"] = loginFailedMessage
	}

	if h.cart.ItemsCount() > 0 {
		quote, err := h.orchestrator.QuoteTotals(ctx)
		if err != nil {
			logger.Error("failed to compute totals", "error", err)
			http.Error(w, domain.ErrorMessage(err), handler.ErrorCodeToHTTPStatus(domain.ErrorCode(err)))
			return
		}
		data["Quote"] = quote

		if telemetry.Business != nil && errs == nil {
			telemetry.Business.CheckoutStarted.Inc()
		}
	}

	h.renderer.RenderHTTP(w, "checkout", data)
}
