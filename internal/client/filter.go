package client

import (
	"sort"
	"strings"

	"github.com/Devanandan1369/online-food-delivery/internal/models"
)

// FilterItems projects the item list down to entries whose name
// contains the search term (case-insensitive; an empty term matches
// everything) and whose price lies in [minPrice, maxPrice] inclusive.
// The input is never mutated.
func FilterItems(items []models.MenuItem, search string, minPrice, maxPrice float64) []models.MenuItem {
	search = strings.ToLower(search)
	filtered := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if item.Price < minPrice || item.Price > maxPrice {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

// SortOrdersNewestFirst orders the history for display, newest
// timestamp first. Orders with unparsable timestamps sort last.
func SortOrdersNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].ParseTimestamp().After(orders[j].ParseTimestamp())
	})
}
