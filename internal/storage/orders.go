package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/models"
)

// OrderStore persists the order ledger as a single JSON file. Every
// write rewrites the whole file; the file is created lazily on the
// first order. There is no locking around the read-append-overwrite
// sequence, so concurrent writers can lose updates (single-writer use
// is assumed).
type OrderStore struct {
	path   string
	logger *logger.Logger
}

// NewOrderStore creates an order store backed by the given ledger file.
func NewOrderStore(path string, log *logger.Logger) *OrderStore {
	return &OrderStore{path: path, logger: log}
}

// Load reads the full ledger. A missing or empty file is an empty
// ledger, not an error.
func (s *OrderStore) Load() ([]models.Order, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("%w: reading ledger file: %v", ErrNotAvailable, err)
	}
	if len(data) == 0 {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("%w: parsing ledger file: %v", ErrNotAvailable, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

// Save overwrites the ledger file with the given sequence.
func (s *OrderStore) Save(orders []models.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger file: %w", err)
	}
	return nil
}

// Append assigns the next sequential id (ledger length + 1) to the
// order, appends it, and rewrites the whole file. Returns the assigned
// id.
func (s *OrderStore) Append(order models.Order) (int, error) {
	orders, err := s.Load()
	if err != nil {
		return 0, err
	}

	order.OrderID = len(orders) + 1
	orders = append(orders, order)

	if err := s.Save(orders); err != nil {
		return 0, err
	}
	return order.OrderID, nil
}
