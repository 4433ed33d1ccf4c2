package domain

import "github.com/shopspring/decimal"

// Product is a catalog record owned by the external product source.
// Views and the cart hold read-only copies; nothing in this process
// mutates a product.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating is the aggregate review score shipped with each product.
type Rating struct {
	Rate  decimal.Decimal `json:"rate"`
	Count int             `json:"count"`
}
