package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart(t *testing.T) {
	s := NewSession()

	s.AddToCart(10, "Margherita", 8.50, 2)
	require.Len(t, s.Entries(), 1)
	assert.Equal(t, 2, s.Entries()[0].Quantity)

	// Re-adding merges quantities and keeps the original price snapshot.
	s.AddToCart(10, "Margherita", 99.99, 1)
	require.Len(t, s.Entries(), 1)
	assert.Equal(t, 3, s.Entries()[0].Quantity)
	assert.Equal(t, 8.50, s.Entries()[0].Price)

	// Non-positive quantity is a no-op.
	s.AddToCart(11, "Pepperoni", 9.75, 0)
	s.AddToCart(11, "Pepperoni", 9.75, -3)
	assert.Len(t, s.Entries(), 1)
}

func TestUpdateQuantity_Idempotent(t *testing.T) {
	s := NewSession()
	s.AddToCart(10, "Margherita", 8.50, 2)

	s.UpdateQuantity(10, 5)
	once := s.Entries()
	s.UpdateQuantity(10, 5)
	twice := s.Entries()

	assert.Equal(t, once, twice)
	assert.Equal(t, 5, twice[0].Quantity)
}

func TestUpdateQuantity_ZeroNormalizesToRemoval(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		viaUpdate := NewSession()
		viaUpdate.AddToCart(10, "Margherita", 8.50, 2)
		viaUpdate.UpdateQuantity(10, qty)

		viaRemove := NewSession()
		viaRemove.AddToCart(10, "Margherita", 8.50, 2)
		viaRemove.RemoveFromCart(10)

		assert.Equal(t, viaRemove.Entries(), viaUpdate.Entries(), "qty=%d", qty)
		assert.True(t, viaUpdate.IsEmpty())
	}
}

func TestRemoveFromCart_MissingIsNoop(t *testing.T) {
	s := NewSession()
	s.AddToCart(10, "Margherita", 8.50, 1)
	s.RemoveFromCart(999)
	assert.Len(t, s.Entries(), 1)
}

func TestEntries_InsertionOrder(t *testing.T) {
	s := NewSession()
	s.AddToCart(11, "Pepperoni", 9.75, 1)
	s.AddToCart(10, "Margherita", 8.50, 1)
	s.AddToCart(12, "Calzone", 11.00, 1)
	s.RemoveFromCart(10)
	s.AddToCart(10, "Margherita", 8.50, 1)

	var ids []int
	for _, line := range s.Entries() {
		ids = append(ids, line.ItemID)
	}
	assert.Equal(t, []int{11, 12, 10}, ids)
}

func TestConfirmOrder_Validation(t *testing.T) {
	tests := []struct {
		name     string
		custName string
		address  string
		fillCart bool
		wantErr  error
	}{
		{"valid", "Alice", "1 Main St", true, nil},
		{"blank name", "", "1 Main St", true, ErrMissingCustomerInfo},
		{"whitespace name", "   ", "1 Main St", true, ErrMissingCustomerInfo},
		{"blank address", "Alice", "\t ", true, ErrMissingCustomerInfo},
		{"empty cart", "Alice", "1 Main St", false, ErrEmptyCart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession()
			if tt.fillCart {
				s.AddToCart(10, "Margherita", 8.50, 2)
			}
			before := s.Entries()

			err := s.ConfirmOrder(tt.custName, tt.address, "Pizza Place")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, before, s.Entries(), "failed confirm must not touch the cart")
				assert.False(t, s.PaymentPending())
				assert.Nil(t, s.Pending())
				return
			}
			require.NoError(t, err)
			assert.True(t, s.PaymentPending())
			require.NotNil(t, s.Pending())
			assert.Equal(t, "Alice", s.Pending().CustomerName)
		})
	}
}

// The concrete end-to-end scenario: two pizzas and a pepperoni come to
// 26.75, and the payload built at pay time round-trips that total.
func TestCheckoutScenario(t *testing.T) {
	s := NewSession()
	s.AddToCart(10, "Margherita", 8.50, 2)
	s.AddToCart(11, "Pepperoni", 9.75, 1)
	assert.InDelta(t, 26.75, s.Total(), 1e-9)

	require.NoError(t, s.ConfirmOrder("Alice", "1 Main St", "Pizza Place"))

	req := s.BuildOrderRequest(time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "Alice", req.CustomerName)
	assert.Equal(t, "1 Main St", req.Address)
	assert.Equal(t, "Pizza Place", req.Restaurant)
	require.Len(t, req.Items, 2)
	assert.Equal(t, "2026-08-31T12:00:00Z", req.Timestamp)

	// Total round-trip: the cart total equals the sum recomputed from
	// the order's line items.
	assert.InDelta(t, s.Total(), req.CalculateTotal(), 1e-9)
	assert.InDelta(t, req.Total, req.CalculateTotal(), 1e-9)

	s.CompleteOrder()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.PaymentPending())
	assert.Nil(t, s.Pending())
}

func TestCancelPayment_KeepsCart(t *testing.T) {
	s := NewSession()
	s.AddToCart(10, "Margherita", 8.50, 1)
	require.NoError(t, s.ConfirmOrder("Alice", "1 Main St", "Pizza Place"))

	s.CancelPayment()
	assert.False(t, s.PaymentPending())
	assert.Nil(t, s.Pending())
	assert.Len(t, s.Entries(), 1)
}

// Snapshot semantics: cart mutations after confirm do not leak into the
// pending order.
func TestPendingOrder_IsSnapshot(t *testing.T) {
	s := NewSession()
	s.AddToCart(10, "Margherita", 8.50, 2)
	require.NoError(t, s.ConfirmOrder("Alice", "1 Main St", "Pizza Place"))

	s.UpdateQuantity(10, 7)
	assert.Equal(t, 2, s.Pending().Items[0].Quantity)
	assert.InDelta(t, 17.00, s.Pending().Total, 1e-9)
}
