package tax

import (
	"context"

	"github.com/shopspring/decimal"
)

// PercentageCalculator applies a fixed percentage rate.
type PercentageCalculator struct {
	rate decimal.Decimal // e.g., 0.10 for 10%
}

// NewPercentageCalculator creates a percentage-based tax calculator.
func NewPercentageCalculator(rate float64) *PercentageCalculator {
	return &PercentageCalculator{
		rate: decimal.NewFromFloat(rate),
	}
}

// CalculateTax computes subtotal x rate, rounded to cents.
func (c *PercentageCalculator) CalculateTax(ctx context.Context, params Params) (*Result, error) {
	amount := params.Subtotal.Mul(c.rate).Round(2)

	return &Result{
		Amount: amount,
		Rate:   c.rate,
	}, nil
}
