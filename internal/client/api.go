package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/models"
)

// API is the ordering client's HTTP gateway to the menu and order
// services. Read endpoints are memoized for a TTL; the order cache is
// invalidated explicitly after a successful placement so fresh history
// shows up immediately.
type API struct {
	menuURL    string
	orderURL   string
	httpClient *http.Client
	logger     *logger.Logger
	ttl        time.Duration

	mu            sync.Mutex
	restaurants   []models.Restaurant
	restaurantsAt time.Time
	orders        []models.Order
	ordersAt      time.Time
}

// NewAPI creates an API client for the given service base URLs.
func NewAPI(menuURL, orderURL string, ttl time.Duration, log *logger.Logger) *API {
	return &API{
		menuURL:    menuURL,
		orderURL:   orderURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
		ttl:        ttl,
	}
}

// Restaurants returns the full catalog, memoized for the TTL.
func (a *API) Restaurants(ctx context.Context) ([]models.Restaurant, error) {
	a.mu.Lock()
	if a.restaurants != nil && time.Since(a.restaurantsAt) < a.ttl {
		cached := a.restaurants
		a.mu.Unlock()
		return cached, nil
	}
	a.mu.Unlock()

	var restaurants []models.Restaurant
	if err := a.getJSON(ctx, a.menuURL+"/menus", &restaurants); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.restaurants = restaurants
	a.restaurantsAt = time.Now()
	a.mu.Unlock()
	return restaurants, nil
}

// Restaurant fetches one restaurant by id, bypassing the cache.
func (a *API) Restaurant(ctx context.Context, id int) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := a.getJSON(ctx, fmt.Sprintf("%s/menu/%d", a.menuURL, id), &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// Orders returns the order history, memoized for the TTL.
func (a *API) Orders(ctx context.Context) ([]models.Order, error) {
	a.mu.Lock()
	if a.orders != nil && time.Since(a.ordersAt) < a.ttl {
		cached := a.orders
		a.mu.Unlock()
		return cached, nil
	}
	a.mu.Unlock()

	var orders []models.Order
	if err := a.getJSON(ctx, a.orderURL+"/orders", &orders); err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.orders = orders
	a.ordersAt = time.Now()
	a.mu.Unlock()
	return orders, nil
}

// InvalidateOrders drops the memoized order history so the next Orders
// call re-fetches.
func (a *API) InvalidateOrders() {
	a.mu.Lock()
	a.orders = nil
	a.ordersAt = time.Time{}
	a.mu.Unlock()
}

// PlaceOrder submits the order and returns the ledger-assigned id. Any
// response other than 201 is an error; the order cache is invalidated
// only on success.
func (a *API) PlaceOrder(ctx context.Context, order models.PlaceOrderRequest) (int, error) {
	body, err := json.Marshal(order)
	if err != nil {
		return 0, fmt.Errorf("failed to encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.orderURL+"/order", bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to reach order service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("order service returned %d: %s", resp.StatusCode, msg)
	}

	var placed models.PlaceOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		return 0, fmt.Errorf("failed to decode response: %w", err)
	}

	a.InvalidateOrders()
	return placed.OrderID, nil
}

func (a *API) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("service returned %d: %s", resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
