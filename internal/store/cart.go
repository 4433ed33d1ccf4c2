// Package store holds the client-side state of the storefront: the
// shopping cart and the mock authentication session. Both stores notify
// subscribers synchronously on every change.
package store

import (
	"sync"

	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type cartStore struct {
	mu      sync.Mutex
	items   []domain.LineItem
	subs    map[int]func()
	nextSub int
}

// NewCartStore creates an empty cart.
func NewCartStore() domain.CartStore {
	return &cartStore{
		subs: make(map[int]func()),
	}
}

// AddToCart increments the existing line for the product, or appends a
// new line with quantity 1.
func (s *cartStore) AddToCart(p domain.Product) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].Product.ID == p.ID {
			s.items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, domain.LineItem{Product: p, Quantity: 1})
	}
	s.mu.Unlock()
	s.notify()
}

// UpdateQuantity sets the quantity for a product's line, keeping its
// position. A quantity of zero or less removes the line; an unknown
// product ID is a no-op.
func (s *cartStore) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// RemoveFromCart drops the line for the product, if present.
func (s *cartStore) RemoveFromCart(productID int) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notify()
}

// ClearCart empties the cart unconditionally.
func (s *cartStore) ClearCart() {
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	s.notify()
}

// Items returns a copy of the line items in insertion order.
func (s *cartStore) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.LineItem, len(s.items))
	copy(items, s.items)
	return items
}

// CartTotal sums price x quantity over all lines with decimal
// arithmetic, so the result is exact to cent precision.
func (s *cartStore) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, item := range s.items {
		line := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// ItemsCount returns the sum of all line quantities.
func (s *cartStore) ItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subscribe registers a change callback and returns an unsubscribe
// function.
func (s *cartStore) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// notify invokes subscribers outside the lock so callbacks may read the
// store.
func (s *cartStore) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
