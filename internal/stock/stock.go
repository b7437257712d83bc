// Package stock implements the deduction engine that applies a finalized
// sale cart against the inventory snapshot, plus the low-stock predicate.
// The engine is pure: it takes a snapshot and returns a new one, and the
// caller persists the result. It has no awareness of concurrent sales;
// two carts applied to the same stale snapshot are last-writer-wins.
package stock

import (
	"fmt"
	"strings"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// Cart entry kinds. A product entry expands to its recipe; an item entry
// deducts the inventory item directly.
const (
	EntryProduct = "product"
	EntryItem    = "item"
)

// CartEntry is a transient line of a sale being composed. It exists only
// until finalization and is never persisted.
type CartEntry struct {
	Kind            string  `json:"kind"`
	ProductID       string  `json:"product_id,omitempty"`
	InventoryItemID string  `json:"inventory_item_id,omitempty"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price,omitempty"`
}

// ClampEvent records a deduction that was cut short because the stock ran
// out. Oversold stock is a business event for the surrounding alerting,
// not an engine error.
type ClampEvent struct {
	InventoryItemID string  `json:"inventory_item_id"`
	ItemName        string  `json:"item_name"`
	Requested       float64 `json:"requested"`
	Available       float64 `json:"available"`
}

// ApplyCart deducts a finalized cart from the inventory snapshot and
// returns the updated snapshot. Entries are processed in cart order.
// Quantities clamp at zero and never go negative. References to missing
// products or inventory items are skipped silently; the catalog may have
// drifted since the sale was composed and that must not block it.
func ApplyCart(inventory []models.InventoryItem, products []models.Product, cart []CartEntry) ([]models.InventoryItem, []ClampEvent) {
	out := make([]models.InventoryItem, len(inventory))
	copy(out, inventory)

	index := make(map[string]int, len(out))
	for i, item := range out {
		index[item.ID] = i
	}
	byProduct := make(map[string]models.Product, len(products))
	for _, p := range products {
		byProduct[p.ID] = p
	}

	var clamps []ClampEvent
	deduct := func(itemID string, amount float64) {
		i, ok := index[itemID]
		if !ok {
			return // lenient dangling reference
		}
		if amount > out[i].Quantity {
			clamps = append(clamps, ClampEvent{
				InventoryItemID: out[i].ID,
				ItemName:        out[i].Name,
				Requested:       amount,
				Available:       out[i].Quantity,
			})
			out[i].Quantity = 0
			return
		}
		out[i].Quantity -= amount
	}

	for _, entry := range cart {
		switch entry.Kind {
		case EntryItem:
			deduct(entry.InventoryItemID, entry.Quantity)
		case EntryProduct:
			product, ok := byProduct[entry.ProductID]
			if !ok {
				continue
			}
			for _, line := range product.Recipe {
				deduct(line.InventoryItemID, line.Quantity*entry.Quantity)
			}
		}
	}

	return out, clamps
}

// IsLowStock reports whether the item is at or below its minimum
// threshold. The boundary is inclusive: quantity equal to the threshold
// counts as low.
func IsLowStock(item models.InventoryItem) bool {
	return item.Quantity <= item.MinThreshold
}

// CartTotal sums quantity times captured unit price over the cart.
func CartTotal(cart []CartEntry) float64 {
	var total float64
	for _, entry := range cart {
		total += entry.Quantity * entry.UnitPrice
	}
	return total
}

// DescribeCart renders the cart as the write-once description string
// stored on the sale, e.g. "2x Lavender Candle, 1x Coconut Wax (g)".
// Dangling references render as "unknown item". Notes, when present, are
// appended after the cart lines.
func DescribeCart(cart []CartEntry, products []models.Product, inventory []models.InventoryItem, notes string) string {
	byProduct := make(map[string]models.Product, len(products))
	for _, p := range products {
		byProduct[p.ID] = p
	}
	byItem := make(map[string]models.InventoryItem, len(inventory))
	for _, item := range inventory {
		byItem[item.ID] = item
	}

	parts := make([]string, 0, len(cart)+1)
	for _, entry := range cart {
		name := "unknown item"
		switch entry.Kind {
		case EntryProduct:
			if p, ok := byProduct[entry.ProductID]; ok {
				name = p.Name
			}
		case EntryItem:
			if item, ok := byItem[entry.InventoryItemID]; ok {
				name = fmt.Sprintf("%s (%s)", item.Name, item.Unit)
			}
		}
		parts = append(parts, fmt.Sprintf("%gx %s", entry.Quantity, name))
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		parts = append(parts, notes)
	}
	return strings.Join(parts, ", ")
}
