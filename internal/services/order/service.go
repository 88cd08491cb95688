package order

import (
	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/models"
	"github.com/Devanandan1369/online-food-delivery/internal/storage"
)

// Service owns the order ledger. Placing an order reads the whole
// ledger, assigns the next sequential id (count + 1), appends, and
// rewrites the whole file. With no locking this read-append-overwrite
// sequence can lose updates under concurrent writers; the deployment
// assumption is a single writer at a time.
type Service struct {
	store  *storage.OrderStore
	logger *logger.Logger
}

// NewService creates a new order service.
func NewService(store *storage.OrderStore, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// ListOrders returns all placed orders. A ledger that has never seen an
// order is an empty sequence, not an error.
func (s *Service) ListOrders() ([]models.Order, error) {
	return s.store.Load()
}

// PlaceOrder validates the candidate structurally, persists it, and
// returns the assigned order id.
func (s *Service) PlaceOrder(req *models.PlaceOrderRequest, requestID string) (int, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		Address:      req.Address,
		Restaurant:   req.Restaurant,
		Items:        req.Items,
		Total:        req.Total,
		Timestamp:    req.Timestamp,
	}

	orderID, err := s.store.Append(order)
	if err != nil {
		return 0, err
	}

	s.logger.Info("order_placed", "Order appended to ledger", requestID, map[string]interface{}{
		"order_id":      orderID,
		"customer_name": order.CustomerName,
		"restaurant":    order.Restaurant,
		"total":         order.Total,
	})
	return orderID, nil
}
