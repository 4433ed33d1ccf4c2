package handler

import (
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/neotechlabs/storefront/internal/checkout"
)

// TemplateFuncs returns the FuncMap shared by all page templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatPrice": func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		},
		"formatCard": checkout.FormatCardNumber,
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
		"year": func() int {
			return time.Now().Year()
		},
	}
}
