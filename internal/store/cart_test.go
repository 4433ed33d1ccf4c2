package store_test

import (
	"testing"

	"github.com/neotechlabs/storefront/internal/domain"
	"github.com/neotechlabs/storefront/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id int, title, price string) domain.Product {
	return domain.Product{
		ID:    id,
		Title: title,
		Price: decimal.RequireFromString(price),
	}
}

func TestCartStore_AddDistinctProducts(t *testing.T) {
	cart := store.NewCartStore()

	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	cart.AddToCart(product(2, "Neo Jacket", "22.30"))
	cart.AddToCart(product(3, "Holo Lamp", "35.50"))

	assert.Equal(t, 3, cart.ItemsCount())
	assert.True(t, cart.CartTotal().Equal(decimal.RequireFromString("167.75")),
		"got %s", cart.CartTotal())
}

func TestCartStore_AddSameProductTwiceMergesLines(t *testing.T) {
	cart := store.NewCartStore()
	p := product(1, "Quantum Headset", "109.95")

	cart.AddToCart(p)
	cart.AddToCart(p)

	items := cart.Items()
	require.Len(t, items, 1, "same product must merge into one line")
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.ItemsCount())
	assert.True(t, cart.CartTotal().Equal(decimal.RequireFromString("219.90")))
}

func TestCartStore_InsertionOrderPreserved(t *testing.T) {
	cart := store.NewCartStore()

	cart.AddToCart(product(3, "Holo Lamp", "35.50"))
	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	cart.AddToCart(product(2, "Neo Jacket", "22.30"))
	cart.AddToCart(product(1, "Quantum Headset", "109.95")) // merge, not move

	items := cart.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{items[0].Product.ID, items[1].Product.ID, items[2].Product.ID})
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantCount int
	}{
		{name: "positive quantity sets it", quantity: 5, wantLines: 1, wantCount: 5},
		{name: "zero removes the line", quantity: 0, wantLines: 0, wantCount: 0},
		{name: "negative removes the line", quantity: -1, wantLines: 0, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := store.NewCartStore()
			cart.AddToCart(product(1, "Quantum Headset", "109.95"))

			cart.UpdateQuantity(1, tt.quantity)

			assert.Len(t, cart.Items(), tt.wantLines)
			assert.Equal(t, tt.wantCount, cart.ItemsCount())
		})
	}
}

func TestCartStore_UpdateQuantityKeepsPosition(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	cart.AddToCart(product(2, "Neo Jacket", "22.30"))

	cart.UpdateQuantity(1, 9)

	items := cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Product.ID, "updated line must keep its slot")
	assert.Equal(t, 9, items[0].Quantity)
}

func TestCartStore_UpdateQuantityUnknownProductIsNoop(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(product(1, "Quantum Headset", "109.95"))

	cart.UpdateQuantity(999, 4)

	require.Len(t, cart.Items(), 1)
	assert.Equal(t, 1, cart.ItemsCount())
}

func TestCartStore_RemoveFromCart(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	cart.AddToCart(product(2, "Neo Jacket", "22.30"))

	cart.RemoveFromCart(1)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Product.ID)

	// removing an absent product is a silent no-op
	cart.RemoveFromCart(1)
	assert.Len(t, cart.Items(), 1)
}

func TestCartStore_ClearCart(t *testing.T) {
	cart := store.NewCartStore()
	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	cart.AddToCart(product(2, "Neo Jacket", "22.30"))

	cart.ClearCart()

	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.ItemsCount())
	assert.True(t, cart.CartTotal().IsZero())
}

func TestCartStore_TotalIsExactToCents(t *testing.T) {
	cart := store.NewCartStore()
	// 0.1 + 0.2 style float traps must not leak into the total
	cart.AddToCart(product(1, "Sticker", "0.10"))
	cart.AddToCart(product(2, "Pin", "0.20"))
	cart.UpdateQuantity(2, 3)

	assert.Equal(t, "0.70", cart.CartTotal().StringFixed(2))
}

func TestCartStore_EmptyCartAggregates(t *testing.T) {
	cart := store.NewCartStore()

	assert.Equal(t, 0, cart.ItemsCount())
	assert.True(t, cart.CartTotal().IsZero())
	assert.Empty(t, cart.Items())
}

func TestCartStore_SubscribersNotifiedOnEveryMutation(t *testing.T) {
	cart := store.NewCartStore()

	calls := 0
	unsubscribe := cart.Subscribe(func() { calls++ })

	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	cart.UpdateQuantity(1, 2)
	cart.RemoveFromCart(1)
	cart.ClearCart()

	assert.Equal(t, 4, calls)

	unsubscribe()
	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	assert.Equal(t, 4, calls, "unsubscribed callback must not fire")
}

func TestCartStore_SubscriberSeesConsistentState(t *testing.T) {
	cart := store.NewCartStore()

	var observedCount int
	cart.Subscribe(func() {
		observedCount = cart.ItemsCount()
	})

	cart.AddToCart(product(1, "Quantum Headset", "109.95"))
	cart.AddToCart(product(1, "Quantum Headset", "109.95"))

	assert.Equal(t, 2, observedCount)
}
