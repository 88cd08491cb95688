package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Devanandan1369/online-food-delivery/internal/logger"
)

const testCatalog = `[
  {
    "restaurant_id": 1,
    "name": "Pizza Place",
    "items": [
      {"id": 10, "name": "Margherita", "description": "Classic", "price": 8.50},
      {"id": 11, "name": "Pepperoni", "description": "Spicy", "price": 9.75}
    ]
  },
  {
    "restaurant_id": 2,
    "name": "Sushi Corner",
    "items": [
      {"id": 20, "name": "Salmon Roll", "description": "8 pieces", "price": 12.00}
    ]
  }
]`

func testMenuStore(t *testing.T, content string) *MenuStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menus.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write catalog: %v", err)
		}
	}
	return NewMenuStore(path, logger.NewWithWriter("menu-service", os.Stderr))
}

func TestMenuLoad(t *testing.T) {
	store := testMenuStore(t, testCatalog)
	restaurants, err := store.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(restaurants))
	}
	if restaurants[0].Name != "Pizza Place" || len(restaurants[0].Items) != 2 {
		t.Errorf("unexpected first restaurant: %+v", restaurants[0])
	}
}

func TestMenuLoad_MissingFile(t *testing.T) {
	store := testMenuStore(t, "")
	_, err := store.Load()
	if !errors.Is(err, ErrNotAvailable) {
		t.Errorf("expected ErrNotAvailable, got %v", err)
	}
}

func TestFindRestaurant(t *testing.T) {
	store := testMenuStore(t, testCatalog)

	r, err := store.FindRestaurant(2)
	if err != nil {
		t.Fatalf("FindRestaurant(2): %v", err)
	}
	if r.Name != "Sushi Corner" {
		t.Errorf("FindRestaurant(2).Name = %q", r.Name)
	}

	_, err = store.FindRestaurant(99)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing id, got %v", err)
	}
}
