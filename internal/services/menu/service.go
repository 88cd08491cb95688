package menu

import (
	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/models"
	"github.com/Devanandan1369/online-food-delivery/internal/storage"
)

// Service exposes read-only catalog lookups. The catalog is re-read
// from the store on every call so provisioning changes are picked up
// without a restart.
type Service struct {
	store  *storage.MenuStore
	logger *logger.Logger
}

// NewService creates a new menu service.
func NewService(store *storage.MenuStore, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		logger: log,
	}
}

// ListRestaurants returns the full catalog.
func (s *Service) ListRestaurants() ([]models.Restaurant, error) {
	return s.store.Load()
}

// GetRestaurant returns one restaurant by id.
func (s *Service) GetRestaurant(id int) (*models.Restaurant, error) {
	return s.store.FindRestaurant(id)
}
