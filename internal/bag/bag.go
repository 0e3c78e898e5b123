// Package bag holds the in-progress product selection of a storefront session.
package bag

import (
	"sort"

	"github.com/campanini-sabores/storefront/internal/models"
)

// Bag maps product IDs to quantities. The zero value is not usable; use New.
// An entry never holds a quantity below 1.
type Bag struct {
	items map[string]int
}

// New creates an empty bag
func New() *Bag {
	return &Bag{items: make(map[string]int)}
}

// Add puts one more unit of productID in the bag
func (b *Bag) Add(productID string) {
	b.items[productID]++
}

// Remove takes one unit of productID out of the bag, dropping the entry
// when its last unit goes. Removing an absent product is a no-op.
func (b *Bag) Remove(productID string) {
	qty, ok := b.items[productID]
	if !ok {
		return
	}
	if qty <= 1 {
		delete(b.items, productID)
		return
	}
	b.items[productID] = qty - 1
}

// QuantityOf returns the quantity held for productID, or 0
func (b *Bag) QuantityOf(productID string) int {
	return b.items[productID]
}

// Len returns the number of distinct products in the bag
func (b *Bag) Len() int {
	return len(b.items)
}

// IsEmpty reports whether the bag has no entries
func (b *Bag) IsEmpty() bool {
	return len(b.items) == 0
}

// TotalItems sums the quantities of all entries
func (b *Bag) TotalItems() int {
	total := 0
	for _, qty := range b.items {
		total += qty
	}
	return total
}

// Entries returns the bag content ordered by the given product order.
// Products missing from order follow, sorted by ID.
func (b *Bag) Entries(order []string) []models.BagEntry {
	entries := make([]models.BagEntry, 0, len(b.items))
	seen := make(map[string]bool, len(b.items))

	for _, id := range order {
		qty, ok := b.items[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		entries = append(entries, models.BagEntry{ProductID: id, Quantity: qty})
	}

	var rest []string
	for id := range b.items {
		if !seen[id] {
			rest = append(rest, id)
		}
	}
	sort.Strings(rest)
	for _, id := range rest {
		entries = append(entries, models.BagEntry{ProductID: id, Quantity: b.items[id]})
	}

	return entries
}

// Clone returns an independent copy of the bag
func (b *Bag) Clone() *Bag {
	c := New()
	for id, qty := range b.items {
		c.items[id] = qty
	}
	return c
}

// Equal reports whether both bags hold the same quantities
func (b *Bag) Equal(other *Bag) bool {
	if len(b.items) != len(other.items) {
		return false
	}
	for id, qty := range b.items {
		if other.items[id] != qty {
			return false
		}
	}
	return true
}
