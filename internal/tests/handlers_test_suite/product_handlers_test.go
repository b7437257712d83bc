package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	api "github.com/camila-fonseca/aroma-atelier/internal/http"
	handler "github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

func TestCreateProductHandler_WithRecipe(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	wax := seedInventoryItem("Coconut Wax", "wax", 1000, "g", 200)
	oil := seedInventoryItem("Lavender Oil", "fragrance", 200, "ml", 50)

	w := doJSON(r, http.MethodPost, "/products", handler.ProductRequest{
		Name:  "Lavender Candle",
		Price: 45,
		Recipe: []models.RecipeItem{
			{InventoryItemID: wax.ID, Quantity: 30},
			{InventoryItemID: oil.ID, Quantity: 5},
		},
	}, true)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(created.Recipe) != 2 {
		t.Errorf("expected 2 recipe lines, got %d", len(created.Recipe))
	}
	if created.Recipe[0].InventoryItemID != wax.ID {
		t.Errorf("recipe lines should keep insertion order")
	}
}

func TestCreateProductHandler_RejectsDuplicateRecipeLine(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	wax := seedInventoryItem("Coconut Wax", "wax", 1000, "g", 200)

	w := doJSON(r, http.MethodPost, "/products", handler.ProductRequest{
		Name:  "Lavender Candle",
		Price: 45,
		Recipe: []models.RecipeItem{
			{InventoryItemID: wax.ID, Quantity: 30},
			{InventoryItemID: wax.ID, Quantity: 10},
		},
	}, true)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate recipe line, got %d", w.Code)
	}

	var errs []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("error decoding validation errors: %v", err)
	}
	found := false
	for _, e := range errs {
		if e.Field == "Recipe" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a Recipe validation error, got %v", errs)
	}
}

func TestAddRecipeIngredientHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	wax := seedInventoryItem("Coconut Wax", "wax", 1000, "g", 200)
	oil := seedInventoryItem("Lavender Oil", "fragrance", 200, "ml", 50)
	product := seedProduct("Lavender Candle", 45, []models.RecipeItem{
		{InventoryItemID: wax.ID, Quantity: 30},
	})

	w := doJSON(r, http.MethodPost, "/products/"+product.ID+"/recipe", handler.RecipeItemRequest{
		InventoryItemID: oil.ID,
		Quantity:        5,
	}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var updated models.Product
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(updated.Recipe) != 2 {
		t.Fatalf("expected 2 recipe lines after add, got %d", len(updated.Recipe))
	}

	// Second add of the same item is a conflict.
	w = doJSON(r, http.MethodPost, "/products/"+product.ID+"/recipe", handler.RecipeItemRequest{
		InventoryItemID: oil.ID,
		Quantity:        2,
	}, true)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate ingredient, got %d", w.Code)
	}

	// Referencing an inventory item that does not exist is rejected.
	w = doJSON(r, http.MethodPost, "/products/"+product.ID+"/recipe", handler.RecipeItemRequest{
		InventoryItemID: "missing-item",
		Quantity:        1,
	}, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown inventory item, got %d", w.Code)
	}

	// Non-positive quantities never enter a recipe.
	w = doJSON(r, http.MethodPost, "/products/"+product.ID+"/recipe", handler.RecipeItemRequest{
		InventoryItemID: wax.ID,
		Quantity:        0,
	}, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero quantity, got %d", w.Code)
	}
}

func TestRemoveRecipeIngredientHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	wax := seedInventoryItem("Coconut Wax", "wax", 1000, "g", 200)
	oil := seedInventoryItem("Lavender Oil", "fragrance", 200, "ml", 50)
	product := seedProduct("Lavender Candle", 45, []models.RecipeItem{
		{InventoryItemID: wax.ID, Quantity: 30},
		{InventoryItemID: oil.ID, Quantity: 5},
	})

	w := doJSON(r, http.MethodDelete, "/products/"+product.ID+"/recipe/"+oil.ID, nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var updated models.Product
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(updated.Recipe) != 1 {
		t.Fatalf("expected 1 recipe line after removal, got %d", len(updated.Recipe))
	}

	// Removing an absent ingredient is a no-op, not an error.
	w = doJSON(r, http.MethodDelete, "/products/"+product.ID+"/recipe/"+oil.ID, nil, true)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200 OK for absent ingredient, got %d", w.Code)
	}
}

func TestDeleteProductHandler_KeepsSalesIntact(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	product := seedProduct("Lavender Candle", 45, nil)
	saleRepo.Create(models.Sale{
		ID: "s1", Date: "2026-08-01", CustomerName: "Ana",
		Products: "1x Lavender Candle", TotalValue: 45,
	})

	w := doJSON(r, http.MethodDelete, "/products/"+product.ID, nil, true)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	// The sale keeps its rendered description even though the product is gone.
	sales, _ := saleRepo.GetAll()
	if len(sales) != 1 || sales[0].Products != "1x Lavender Candle" {
		t.Errorf("sale description should survive product deletion, got %v", sales)
	}
}
