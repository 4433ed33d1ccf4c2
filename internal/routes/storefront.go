package routes

import (
	"github.com/neotechlabs/storefront/internal/router"
)

// RegisterStorefrontRoutes registers all shopper-facing routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Product browsing
	r.Get("/{$}", deps.HomeHandler.ServeHTTP)
	r.Get("/product/{id}", deps.ProductHandler.Detail)

	// Shopping cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/add", deps.CartHandler.Add)
	r.Post("/cart/update", deps.CartHandler.Update)
	r.Post("/cart/remove", deps.CartHandler.Remove)

	// Checkout flow
	r.Get("/checkout", deps.CheckoutHandler.Page)
	r.Post("/checkout", deps.CheckoutHandler.Submit)
	r.Get("/order-confirmation", deps.CheckoutHandler.OrderConfirmation)

	// Authentication
	r.Post("/login", deps.AuthHandler.Login)
	r.Post("/logout", deps.AuthHandler.Logout)
}
