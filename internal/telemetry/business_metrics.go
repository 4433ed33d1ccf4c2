// Package telemetry exposes business-level Prometheus metrics.
package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business is the global metrics instance. Callers must nil-check it so
// code paths stay testable without a registry.
var Business *BusinessMetrics

// Init registers the business metrics under the given namespace.
func Init(namespace string) {
	Business = NewBusinessMetrics(namespace)
}

// BusinessMetrics holds Prometheus collectors for storefront-level
// observability.
type BusinessMetrics struct {
	// Product engagement
	ProductViews     prometheus.Counter
	ProductAddToCart prometheus.Counter

	// Cart
	CartUpdated prometheus.Counter
	CartCleared prometheus.Counter

	// Checkout funnel
	CheckoutStarted   prometheus.Counter
	CheckoutCompleted prometheus.Counter
	OrdersCreated     prometheus.Counter
	OrderValue        prometheus.Histogram

	// Auth
	Logins      prometheus.Counter
	LoginFailed prometheus.Counter
}

// NewBusinessMetrics creates and registers all business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "neotech"
	}

	subsystem := "business"

	return &BusinessMetrics{
		ProductViews: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "product_views_total",
			Help:      "Product detail page views",
		}),
		ProductAddToCart: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "product_add_to_cart_total",
			Help:      "Products added to the cart",
		}),
		CartUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cart_updated_total",
			Help:      "Cart quantity updates and removals",
		}),
		CartCleared: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "cart_cleared_total",
			Help:      "Cart clear operations",
		}),
		CheckoutStarted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "checkout_started_total",
			Help:      "Checkout pages shown with a non-empty cart",
		}),
		CheckoutCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "checkout_completed_total",
			Help:      "Checkout submissions that passed validation",
		}),
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "orders_created_total",
			Help:      "Orders placed",
		}),
		OrderValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "order_value_dollars",
			Help:      "Order totals in dollars",
			Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000},
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "logins_total",
			Help:      "Successful sign-ins",
		}),
		LoginFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "login_failed_total",
			Help:      "Rejected sign-in attempts",
		}),
	}
}
