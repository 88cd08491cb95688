package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Devanandan1369/online-food-delivery/internal/models"
)

func TestFilterItems(t *testing.T) {
	items := []models.MenuItem{
		{ID: 1, Name: "Soup", Price: 5},
		{ID: 2, Name: "Burger", Price: 10},
		{ID: 3, Name: "Steak", Price: 15},
	}

	t.Run("price range with empty search matches by price only", func(t *testing.T) {
		got := FilterItems(items, "", 6, 12)
		assert.Len(t, got, 1)
		assert.Equal(t, "Burger", got[0].Name)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		got := FilterItems(items, "bUr", 0, 100)
		assert.Len(t, got, 1)
		assert.Equal(t, "Burger", got[0].Name)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		got := FilterItems(items, "", 5, 15)
		assert.Len(t, got, 3)
	})

	t.Run("no matches", func(t *testing.T) {
		got := FilterItems(items, "pizza", 0, 100)
		assert.Empty(t, got)
	})

	t.Run("input not mutated", func(t *testing.T) {
		FilterItems(items, "", 6, 12)
		assert.Len(t, items, 3)
	})
}

func TestSortOrdersNewestFirst(t *testing.T) {
	orders := []models.Order{
		{OrderID: 1, Timestamp: "2026-08-29T10:00:00Z"},
		{OrderID: 2, Timestamp: "garbage"},
		{OrderID: 3, Timestamp: "2026-08-31T10:00:00Z"},
		{OrderID: 4, Timestamp: "2026-08-30T10:00:00Z"},
	}

	SortOrdersNewestFirst(orders)

	var ids []int
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}
	assert.Equal(t, []int{3, 4, 1, 2}, ids)
}
