package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/tax"
	"github.com/neotechlabs/storefront/internal/telemetry"
)

// Navigator performs the post-confirmation redirect back to the home
// page. The HTTP layer supplies the concrete implementation.
type Navigator interface {
	NavigateHome()
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func()

func (f NavigatorFunc) NavigateHome() { f() }

// Quote is the totals breakdown shown on the checkout page before the
// shopper submits.
type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Orchestrator runs the order placement sequence: totals, order number,
// cart clearing, and the delayed return to the home page. A single
// instance serves the whole process; all methods are safe for
// concurrent use.
type Orchestrator struct {
	cart   domain.CartStore
	calc   tax.Calculator
	nav    Navigator
	delay  time.Duration
	logger *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
	last  *domain.Order
}

// NewOrchestrator wires the order placement sequence. delay is how long
// the confirmation view stays up before the navigator fires.
func NewOrchestrator(cart domain.CartStore, calc tax.Calculator, nav Navigator, delay time.Duration, logger *slog.Logger) *Orchestrator {
	return &Orchestrator{
		cart:   cart,
		calc:   calc,
		nav:    nav,
		delay:  delay,
		logger: logger,
	}
}

// QuoteTotals computes the checkout page's subtotal, tax, and grand
// total from the current cart without placing an order.
func (o *Orchestrator) QuoteTotals(ctx context.Context) (*Quote, error) {
	const op = "checkout.Orchestrator.QuoteTotals"

	subtotal := o.cart.CartTotal()

	result, err := o.calc.CalculateTax(ctx, tax.Params{Subtotal: subtotal})
	if err != nil {
		return nil, &domain.Error{Op: op, Err: err}
	}

	return &Quote{
		Subtotal: subtotal,
		Tax:      result.Amount,
		Total:    subtotal.Add(result.Amount),
	}, nil
}

// PlaceOrder turns the current cart into a confirmed order. It computes
// the totals, generates the order number, clears the cart, and
// schedules the return home after the configured delay. The shopper
// sees the returned order on the confirmation view until then.
//
// Placing a new order while a previous confirmation is still pending
// replaces it; the earlier redirect timer is cancelled.
func (o *Orchestrator) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	const op = "checkout.Orchestrator.PlaceOrder"

	subtotal := o.cart.CartTotal()

	result, err := o.calc.CalculateTax(ctx, tax.Params{Subtotal: subtotal})
	if err != nil {
		return nil, &domain.Error{Op: op, Err: err}
	}

	number, err := NewOrderNumber()
	if err != nil {
		return nil, &domain.Error{Op: op, Err: err}
	}

	order := &domain.Order{
		Number:   number,
		Subtotal: subtotal,
		Tax:      result.Amount,
		Total:    subtotal.Add(result.Amount),
		PlacedAt: time.Now(),
	}

	o.cart.ClearCart()

	o.mu.Lock()
	if o.timer != nil {
		o.timer.Stop()
	}
	o.last = order
	o.timer = time.AfterFunc(o.delay, func() {
		o.expire(order.Number)
	})
	o.mu.Unlock()

	if telemetry.Business != nil {
		telemetry.Business.OrdersCreated.Inc()
		telemetry.Business.CheckoutCompleted.Inc()
		telemetry.Business.CartCleared.Inc()
		telemetry.Business.OrderValue.Observe(order.Total.InexactFloat64())
	}

	o.logger.Info("order placed",
		slog.String("order_number", order.Number),
		slog.String("total", order.Total.StringFixed(2)))

	return order, nil
}

// RedirectDelay reports how long a confirmation stays up before the
// shopper is sent home. The confirmation view uses it so the browser
// redirect matches the server-side expiry.
func (o *Orchestrator) RedirectDelay() time.Duration {
	return o.delay
}

// LastOrder returns the most recently placed order while its
// confirmation is still showing, or nil once it has expired.
func (o *Orchestrator) LastOrder() *domain.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.last == nil {
		return nil
	}
	order := *o.last
	return &order
}

// Cancel stops any pending redirect and drops the held order. Called on
// shutdown and when the shopper navigates away before the timer fires.
func (o *Orchestrator) Cancel() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
	o.last = nil
}

// expire runs when the confirmation delay elapses. The order number
// guards against a timer from a superseded order firing late.
func (o *Orchestrator) expire(number string) {
	o.mu.Lock()
	if o.last == nil || o.last.Number != number {
		o.mu.Unlock()
		return
	}
	o.last = nil
	o.timer = nil
	o.mu.Unlock()

	if o.nav != nil {
		o.nav.NavigateHome()
	}
}
