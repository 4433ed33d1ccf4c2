package domain

import "github.com/shopspring/decimal"

// LineItem pairs a product with a purchased quantity.
// Identity is the product ID: the cart never holds two lines for the
// same product, and quantity is at least 1 while the line exists.
type LineItem struct {
	Product  Product
	Quantity int
}

// CartStore holds the ordered collection of line items for the current
// shopping session. Items keep insertion order, and quantity updates
// preserve a line's position. All operations are total: there are no
// failure modes, and unknown product IDs are silently ignored.
//
// Every mutation notifies subscribers synchronously, so by the time the
// view next reads the store it observes a single consistent state.
type CartStore interface {
	// AddToCart inserts a new line with quantity 1, or increments the
	// existing line for the same product by 1.
	AddToCart(p Product)

	// UpdateQuantity sets the quantity for a product's line. A quantity
	// of zero or less removes the line entirely.
	UpdateQuantity(productID, quantity int)

	// RemoveFromCart drops the line for the product, if present.
	RemoveFromCart(productID int)

	// ClearCart empties the cart unconditionally.
	ClearCart()

	// Items returns a copy of the line items in insertion order.
	Items() []LineItem

	// CartTotal returns the sum of price x quantity over all lines,
	// exact to cent precision. Zero for an empty cart.
	CartTotal() decimal.Decimal

	// ItemsCount returns the sum of all line quantities, not the number
	// of distinct products.
	ItemsCount() int

	// Subscribe registers a change callback and returns an unsubscribe
	// function.
	Subscribe(fn func()) (unsubscribe func())
}
