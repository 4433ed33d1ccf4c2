// Package routes binds handlers to URL patterns.
package routes

import (
	"net/http"

	"github.com/neotechlabs/storefront/internal/handler/storefront"
)

// StorefrontDeps contains the handlers for the shopper-facing routes.
type StorefrontDeps struct {
	// Home / product listing
	HomeHandler http.Handler

	// Product detail
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Checkout flow and order confirmation
	CheckoutHandler *storefront.CheckoutHandler

	// Sign-in / sign-out
	AuthHandler *storefront.AuthHandler
}
