package models

// RecipeItem is one line of a product's bill of materials: the referenced
// inventory item and how much of it (in the item's own unit) one unit of
// the product consumes.
type RecipeItem struct {
	InventoryItemID string  `json:"inventory_item_id"`
	Quantity        float64 `json:"quantity"`
}

// Product represents a sellable finished good and its recipe.
type Product struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Price     float64      `json:"price"`
	Recipe    []RecipeItem `json:"recipe"`
	CreatedAt string       `json:"created_at,omitempty"`
	UpdatedAt string       `json:"updated_at,omitempty"`
}
