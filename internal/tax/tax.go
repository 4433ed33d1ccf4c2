// Package tax computes the tax applied to an order at checkout.
package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// Calculator defines the interface for tax calculation.
type Calculator interface {
	// CalculateTax computes tax on the order subtotal.
	CalculateTax(ctx context.Context, params Params) (*Result, error)
}

// Params contains the information needed for tax calculation.
type Params struct {
	Subtotal decimal.Decimal
}

// Result contains the calculated tax.
type Result struct {
	Amount decimal.Decimal
	Rate   decimal.Decimal
}
