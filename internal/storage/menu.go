package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Devanandan1369/online-food-delivery/internal/logger"
	"github.com/Devanandan1369/online-food-delivery/internal/models"
)

var (
	// ErrNotAvailable means the durable store could not be read at all
	// (missing file, I/O failure, corrupt JSON).
	ErrNotAvailable = errors.New("data not available")

	// ErrNotFound means the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)

// MenuStore reads the restaurant catalog from a JSON file. The catalog
// is read fresh on every call; menu content is provisioned out-of-band
// and never written by this process.
type MenuStore struct {
	path   string
	logger *logger.Logger
}

// NewMenuStore creates a menu store backed by the given catalog file.
func NewMenuStore(path string, log *logger.Logger) *MenuStore {
	return &MenuStore{path: path, logger: log}
}

// Load reads and returns the full catalog.
func (s *MenuStore) Load() ([]models.Restaurant, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading catalog file: %v", ErrNotAvailable, err)
	}

	var restaurants []models.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, fmt.Errorf("%w: parsing catalog file: %v", ErrNotAvailable, err)
	}
	return restaurants, nil
}

// FindRestaurant returns the restaurant with the given id, scanning the
// catalog in order.
func (s *MenuStore) FindRestaurant(id int) (*models.Restaurant, error) {
	restaurants, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range restaurants {
		if restaurants[i].ID == id {
			return &restaurants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: restaurant %d", ErrNotFound, id)
}
