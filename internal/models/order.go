package models

import (
	"fmt"
	"time"
)

// OrderItem represents one line item in an order.
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order represents a placed order in the ledger. OrderID is assigned by
// the order service; orders are never mutated or deleted after that.
type Order struct {
	OrderID      int         `json:"order_id"`
	CustomerName string      `json:"customer_name"`
	Address      string      `json:"address"`
	Restaurant   string      `json:"restaurant"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Timestamp    string      `json:"timestamp"`
}

// PlaceOrderRequest is the POST /order body: an Order minus order_id.
type PlaceOrderRequest struct {
	CustomerName string      `json:"customer_name"`
	Address      string      `json:"address"`
	Restaurant   string      `json:"restaurant"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	Timestamp    string      `json:"timestamp"`
}

// PlaceOrderResponse is the 201 response body for POST /order.
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID int    `json:"order_id"`
}

// Validate checks that the request carries some order structure at all.
// Field values (negative prices, empty item names) are deliberately not
// checked: the ledger accepts any structurally valid payload.
func (req *PlaceOrderRequest) Validate() error {
	if req.CustomerName == "" && req.Address == "" && req.Restaurant == "" &&
		req.Items == nil && req.Total == 0 && req.Timestamp == "" {
		return fmt.Errorf("request body is empty")
	}
	return nil
}

// CalculateTotal sums price x quantity over the line items.
func (req *PlaceOrderRequest) CalculateTotal() float64 {
	total := 0.0
	for _, item := range req.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ParseTimestamp parses the order's ISO-8601 timestamp. Orders with an
// unparsable timestamp sort as the zero time.
func (o *Order) ParseTimestamp() time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05"} {
		if ts, err := time.Parse(layout, o.Timestamp); err == nil {
			return ts
		}
	}
	return time.Time{}
}
