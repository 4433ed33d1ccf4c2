package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the ephemeral record produced when checkout completes.
// It exists only for the confirmation view and is never persisted.
type Order struct {
	Number   string
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	PlacedAt time.Time
}
