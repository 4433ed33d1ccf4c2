// Package storefront holds the page handlers for the shopper-facing
// site.
package storefront

import (
	"net/http"
	"time"

	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/middleware"
)

// BaseTemplateData returns the data every page template expects: the
// current year, the cart badge count, and the signed-in shopper if any.
func BaseTemplateData(r *http.Request, cart domain.CartStore) map[string]interface{} {
	data := map[string]interface{}{
		"Year":      time.Now().Year(),
		"CartCount": cart.ItemsCount(),
	}

	if user := middleware.GetSessionFromContext(r.Context()); user != nil {
		data["User"] = user
	}

	return data
}
