package order

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/models"
	"github.com/Devanandan1369/online-food-delivery/internal/storage"
)

func testOrderHandler(t *testing.T) *Handler {
	t.Helper()
	log := logger.NewWithWriter("order-service", os.Stderr)
	store := storage.NewOrderStore(filepath.Join(t.TempDir(), "orders.json"), log)
	return NewHandler(NewService(store, log), log)
}

func TestGetOrders_EmptyLedger(t *testing.T) {
	h := testOrderHandler(t)
	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestPostOrder(t *testing.T) {
	h := testOrderHandler(t)
	mux := h.SetupRoutes()

	payload := `{
		"customer_name": "Alice",
		"address": "1 Main St",
		"restaurant": "Pizza Place",
		"items": [
			{"name": "Margherita", "price": 8.50, "quantity": 2},
			{"name": "Pepperoni", "price": 9.75, "quantity": 1}
		],
		"total": 26.75,
		"timestamp": "2026-08-31T12:00:00Z"
	}`

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(payload)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var resp models.PlaceOrderResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.OrderID != 1 {
		t.Errorf("order_id = %d, want 1", resp.OrderID)
	}
	if resp.Message == "" {
		t.Error("expected non-empty message")
	}

	// The placed order comes back through GET /orders.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
	var orders []models.Order
	if err := json.NewDecoder(rec.Body).Decode(&orders); err != nil {
		t.Fatalf("decode orders: %v", err)
	}
	if len(orders) != 1 || orders[0].Total != 26.75 || len(orders[0].Items) != 2 {
		t.Errorf("unexpected ledger contents: %+v", orders)
	}
}

func TestPostOrder_InvalidBody(t *testing.T) {
	h := testOrderHandler(t)
	mux := h.SetupRoutes()

	tests := []struct {
		name string
		body string
	}{
		{"unparsable JSON", "{nope"},
		{"empty body", ""},
		{"structurally empty object", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/order", strings.NewReader(tt.body)))
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] != "Invalid request data" {
				t.Errorf("error = %q, want %q", body["error"], "Invalid request data")
			}
		})
	}
}

func TestRequestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("order-service", &buf)
	store := storage.NewOrderStore(filepath.Join(t.TempDir(), "orders.json"), log)
	h := NewHandler(NewService(store, log), log)

	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))

	logs := buf.String()
	if !strings.Contains(logs, "request_started") {
		t.Error("middleware should log request_started")
	}
	if !strings.Contains(logs, "request_completed") {
		t.Error("middleware should log request_completed")
	}
}

func TestPostOrder_MethodNotAllowed(t *testing.T) {
	h := testOrderHandler(t)
	rec := httptest.NewRecorder()
	h.SetupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
