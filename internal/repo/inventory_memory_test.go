package repo

import (
	"errors"
	"testing"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

func TestFindByNameCategory(t *testing.T) {
	r := NewInMemoryInventoryRepository()
	created, _ := r.Create(models.InventoryItem{Name: "Coconut Wax", Category: "wax", Quantity: 500, Unit: "g"})
	r.Create(models.InventoryItem{Name: "Coconut Wax", Category: "fragrance", Quantity: 50, Unit: "g"})

	got, err := r.FindByNameCategory("COCONUT wax", "wax")
	if err != nil {
		t.Fatalf("expected a case-insensitive match, got %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("matched the wrong item: %v", got)
	}

	if _, err := r.FindByNameCategory("Coconut Wax", "dye"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound for another category, got %v", err)
	}
}

func TestSaveAllReplacesSnapshot(t *testing.T) {
	r := NewInMemoryInventoryRepository()
	r.Create(models.InventoryItem{ID: "a", Name: "Coconut Wax", Category: "wax", Quantity: 500, Unit: "g"})
	r.Create(models.InventoryItem{ID: "b", Name: "Wicks", Category: "accessories", Quantity: 30, Unit: "un"})

	if err := r.SaveAll([]models.InventoryItem{
		{ID: "a", Name: "Coconut Wax", Category: "wax", Quantity: 350, Unit: "g"},
	}); err != nil {
		t.Fatalf("SaveAll failed: %v", err)
	}

	items, _ := r.GetAll()
	if len(items) != 1 {
		t.Fatalf("expected the snapshot to replace the collection, got %d items", len(items))
	}
	if items[0].Quantity != 350 {
		t.Errorf("expected quantity 350 from the snapshot, got %v", items[0].Quantity)
	}

	if _, err := r.GetByID("b"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("item absent from the snapshot should be gone, got %v", err)
	}
}
