package models

import (
	"testing"
	"time"
)

func TestPlaceOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     *PlaceOrderRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: &PlaceOrderRequest{
				CustomerName: "Alice",
				Address:      "1 Main St",
				Restaurant:   "Pizza Place",
				Items:        []OrderItem{{Name: "Margherita", Price: 8.50, Quantity: 2}},
				Total:        17.00,
				Timestamp:    "2026-08-31T12:00:00Z",
			},
			wantErr: false,
		},
		{
			name:    "empty body",
			req:     &PlaceOrderRequest{},
			wantErr: true,
		},
		{
			name: "sparse but structurally present",
			req: &PlaceOrderRequest{
				Items: []OrderItem{},
			},
			wantErr: false,
		},
		{
			name: "no value validation on fields",
			req: &PlaceOrderRequest{
				CustomerName: "Bob",
				Items:        []OrderItem{{Name: "", Price: -1, Quantity: 0}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPlaceOrderRequest_CalculateTotal(t *testing.T) {
	req := &PlaceOrderRequest{
		Items: []OrderItem{
			{Name: "Margherita", Price: 8.50, Quantity: 2},
			{Name: "Pepperoni", Price: 9.75, Quantity: 1},
		},
	}
	if got := req.CalculateTotal(); got != 26.75 {
		t.Errorf("CalculateTotal() = %v, want 26.75", got)
	}
}

func TestOrder_ParseTimestamp(t *testing.T) {
	o := &Order{Timestamp: "2026-08-30T18:45:00Z"}
	want := time.Date(2026, 8, 30, 18, 45, 0, 0, time.UTC)
	if got := o.ParseTimestamp(); !got.Equal(want) {
		t.Errorf("ParseTimestamp() = %v, want %v", got, want)
	}

	o = &Order{Timestamp: "2026-08-30T18:45:00.123456"}
	if o.ParseTimestamp().IsZero() {
		t.Error("expected bare ISO timestamp without zone to parse")
	}

	o = &Order{Timestamp: "not-a-time"}
	if !o.ParseTimestamp().IsZero() {
		t.Error("expected zero time for unparsable timestamp")
	}
}
