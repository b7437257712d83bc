// Package recipe implements composition of a product's bill of materials.
// A recipe lists each inventory item at most once; insertion order is the
// display order and carries no computational meaning.
package recipe

import (
	"errors"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

var (
	// ErrDuplicateIngredient is returned when the inventory item is already
	// part of the recipe.
	ErrDuplicateIngredient = errors.New("ingredient already in recipe")
	// ErrInvalidQuantity is returned when the per-unit quantity is not
	// strictly positive.
	ErrInvalidQuantity = errors.New("ingredient quantity must be greater than zero")
)

// AddIngredient returns a new recipe with the ingredient appended. The
// input recipe is never mutated; on error it is returned unchanged.
func AddIngredient(r []models.RecipeItem, inventoryItemID string, quantity float64) ([]models.RecipeItem, error) {
	if quantity <= 0 {
		return r, ErrInvalidQuantity
	}
	for _, item := range r {
		if item.InventoryItemID == inventoryItemID {
			return r, ErrDuplicateIngredient
		}
	}

	out := make([]models.RecipeItem, len(r), len(r)+1)
	copy(out, r)
	return append(out, models.RecipeItem{InventoryItemID: inventoryItemID, Quantity: quantity}), nil
}

// RemoveIngredient returns a new recipe without the given inventory item.
// Removing an absent ingredient is a no-op.
func RemoveIngredient(r []models.RecipeItem, inventoryItemID string) []models.RecipeItem {
	out := make([]models.RecipeItem, 0, len(r))
	for _, item := range r {
		if item.InventoryItemID != inventoryItemID {
			out = append(out, item)
		}
	}
	return out
}

// Validate checks a whole recipe as submitted by a client: positive
// quantities and no duplicate ingredient ids.
func Validate(r []models.RecipeItem) error {
	seen := make(map[string]bool, len(r))
	for _, item := range r {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if seen[item.InventoryItemID] {
			return ErrDuplicateIngredient
		}
		seen[item.InventoryItemID] = true
	}
	return nil
}
