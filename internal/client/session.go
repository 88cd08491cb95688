package client

import (
	"errors"
	"strings"
	"time"

	"github.com/Devanandan1369/online-food-delivery/internal/models"
)

var (
	// ErrEmptyCart is returned when confirming an order with nothing
	// in the cart.
	ErrEmptyCart = errors.New("your cart is empty")

	// ErrMissingCustomerInfo is returned when the customer name or
	// delivery address is blank.
	ErrMissingCustomerInfo = errors.New("please provide both your name and delivery address")
)

// CartEntry is one selected item in the cart. Price is a snapshot taken
// when the item was first added; re-adding the same item keeps the
// original snapshot.
type CartEntry struct {
	Name     string
	Price    float64
	Quantity int
}

// CartLine pairs a cart entry with its item id for rendering.
type CartLine struct {
	ItemID int
	CartEntry
}

// PendingOrder is the checkout snapshot captured at confirm time and
// consumed at pay time.
type PendingOrder struct {
	CustomerName string
	Address      string
	Restaurant   string
	Items        []models.OrderItem
	Total        float64
}

// Session holds one user's in-memory ordering state: the cart, the
// payment-pending flag, and the pending order snapshot. It is created
// at session start and not shared across sessions.
type Session struct {
	cart           map[int]*CartEntry
	cartOrder      []int // item ids in insertion order
	paymentPending bool
	pending        *PendingOrder
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{cart: make(map[int]*CartEntry)}
}

// AddToCart adds qty of the item to the cart. A qty of zero or less is
// a no-op. If the item is already present its quantity is incremented
// and the original price snapshot kept.
func (s *Session) AddToCart(itemID int, name string, price float64, qty int) {
	if qty <= 0 {
		return
	}
	if entry, ok := s.cart[itemID]; ok {
		entry.Quantity += qty
		return
	}
	s.cart[itemID] = &CartEntry{Name: name, Price: price, Quantity: qty}
	s.cartOrder = append(s.cartOrder, itemID)
}

// UpdateQuantity overwrites the item's quantity. A qty of zero or less
// removes the entry; quantities of zero are never stored.
func (s *Session) UpdateQuantity(itemID int, qty int) {
	if qty <= 0 {
		s.RemoveFromCart(itemID)
		return
	}
	if entry, ok := s.cart[itemID]; ok {
		entry.Quantity = qty
	}
}

// RemoveFromCart deletes the entry if present.
func (s *Session) RemoveFromCart(itemID int) {
	if _, ok := s.cart[itemID]; !ok {
		return
	}
	delete(s.cart, itemID)
	for i, id := range s.cartOrder {
		if id == itemID {
			s.cartOrder = append(s.cartOrder[:i], s.cartOrder[i+1:]...)
			break
		}
	}
}

// Entries returns the cart lines in insertion order.
func (s *Session) Entries() []CartLine {
	lines := make([]CartLine, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		lines = append(lines, CartLine{ItemID: id, CartEntry: *s.cart[id]})
	}
	return lines
}

// Total sums price x quantity over all cart entries.
func (s *Session) Total() float64 {
	total := 0.0
	for _, entry := range s.cart {
		total += entry.Price * float64(entry.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no entries.
func (s *Session) IsEmpty() bool {
	return len(s.cart) == 0
}

// PaymentPending reports whether a confirmed order is awaiting payment.
func (s *Session) PaymentPending() bool {
	return s.paymentPending
}

// Pending returns the checkout snapshot, if one exists.
func (s *Session) Pending() *PendingOrder {
	return s.pending
}

// ConfirmOrder validates the checkout form and snapshots the cart plus
// customer details into the pending order. On validation failure the
// session is left unchanged.
func (s *Session) ConfirmOrder(name, address, restaurant string) error {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)
	if name == "" || address == "" {
		return ErrMissingCustomerInfo
	}
	if s.IsEmpty() {
		return ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(s.cartOrder))
	for _, id := range s.cartOrder {
		entry := s.cart[id]
		items = append(items, models.OrderItem{
			Name:     entry.Name,
			Price:    entry.Price,
			Quantity: entry.Quantity,
		})
	}

	s.pending = &PendingOrder{
		CustomerName: name,
		Address:      address,
		Restaurant:   restaurant,
		Items:        items,
		Total:        s.Total(),
	}
	s.paymentPending = true
	return nil
}

// CancelPayment discards the pending order and returns to the cart.
// The cart itself is untouched.
func (s *Session) CancelPayment() {
	s.paymentPending = false
	s.pending = nil
}

// BuildOrderRequest assembles the POST /order payload from the pending
// order with a freshly generated timestamp.
func (s *Session) BuildOrderRequest(now time.Time) models.PlaceOrderRequest {
	return models.PlaceOrderRequest{
		CustomerName: s.pending.CustomerName,
		Address:      s.pending.Address,
		Restaurant:   s.pending.Restaurant,
		Items:        s.pending.Items,
		Total:        s.pending.Total,
		Timestamp:    now.Format(time.RFC3339),
	}
}

// CompleteOrder clears all session state after a successful placement.
func (s *Session) CompleteOrder() {
	s.cart = make(map[int]*CartEntry)
	s.cartOrder = nil
	s.paymentPending = false
	s.pending = nil
}
