package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
	"github.com/camila-fonseca/aroma-atelier/internal/repo"
	"github.com/camila-fonseca/aroma-atelier/internal/stock"
)

func toInventoryResponse(item models.InventoryItem) InventoryItemResponse {
	return InventoryItemResponse{
		InventoryItem: item,
		LowStock:      stock.IsLowStock(item),
	}
}

// CreateInventoryItemHandler godoc
// @Summary Add stock to the inventory
// @Description Creates an inventory item. When an item with the same name (case-insensitive) and category already exists, the quantity is merged into it instead.
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body InventoryItemRequest true "Item to add"
// @Success 200 {object} InventoryItemResponse "Merged into an existing item"
// @Success 201 {object} InventoryItemResponse "New item created"
// @Failure 400 {array} ValidationError
// @Router /inventory [post]
func CreateInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	var req InventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateInventoryItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	existing, err := inventoryRepo.FindByNameCategory(req.Name, req.Category)
	if err == nil {
		existing.Quantity += req.Quantity
		existing.UpdatedAt = time.Now().Format(time.RFC3339)
		merged, err := inventoryRepo.Update(existing)
		if err != nil {
			http.Error(w, "could not merge inventory item", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toInventoryResponse(merged))
		return
	}
	if !errors.Is(err, repo.ErrItemNotFound) {
		http.Error(w, "could not create inventory item", http.StatusInternalServerError)
		return
	}

	now := time.Now().Format(time.RFC3339)
	item := models.InventoryItem{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := inventoryRepo.Create(item)
	if err != nil {
		http.Error(w, "could not create inventory item", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, toInventoryResponse(created))
}

// GetInventoryHandler godoc
// @Summary List all inventory items
// @Tags inventory
// @Produce json
// @Param low_stock query bool false "Only items at or below their minimum threshold"
// @Success 200 {array} InventoryItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /inventory [get]
func GetInventoryHandler(w http.ResponseWriter, r *http.Request) {
	items, err := inventoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}

	lowOnly := r.URL.Query().Get("low_stock") == "true"
	response := make([]InventoryItemResponse, 0, len(items))
	for _, item := range items {
		if lowOnly && !stock.IsLowStock(item) {
			continue
		}
		response = append(response, toInventoryResponse(item))
	}
	writeJSON(w, http.StatusOK, response)
}

// GetInventoryItemByIDHandler godoc
// @Summary Get inventory item by ID
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} InventoryItemResponse
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{id} [get]
func GetInventoryItemByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	item, err := inventoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch inventory item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponse(item))
}

// UpdateInventoryItemHandler godoc
// @Summary Update an inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param item body InventoryItemRequest true "Updated item"
// @Success 200 {object} InventoryItemResponse
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{id} [put]
func UpdateInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req InventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateInventoryItem(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	current, err := inventoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch inventory item", http.StatusInternalServerError)
		return
	}

	item := models.InventoryItem{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		MinThreshold: req.MinThreshold,
		CreatedAt:    current.CreatedAt,
		UpdatedAt:    time.Now().Format(time.RFC3339),
	}
	updated, err := inventoryRepo.Update(item)
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update inventory item", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toInventoryResponse(updated))
}

// DeleteInventoryItemHandler godoc
// @Summary Delete an inventory item
// @Tags inventory
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /inventory/{id} [delete]
func DeleteInventoryItemHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := inventoryRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "inventory item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete inventory item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
