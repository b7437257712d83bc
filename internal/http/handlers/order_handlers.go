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
)

// CreateOrderHandler godoc
// @Summary Create a customer order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param order body OrderRequest true "Order to create"
// @Success 201 {object} models.Order
// @Failure 400 {array} ValidationError
// @Router /orders [post]
func CreateOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req, true)
	if req.Status != "" && !models.ValidOrderStatus(req.Status) {
		validationErrors = append(validationErrors, ValidationError{Field: "Status", Description: "Unknown order status"})
	}
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	status := req.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	now := time.Now().Format(time.RFC3339)
	order := models.Order{
		ID:             uuid.NewString(),
		CustomerName:   req.CustomerName,
		Description:    req.Description,
		Deadline:       req.Deadline,
		Status:         status,
		EstimatedValue: req.EstimatedValue,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := orderRepo.Create(order)
	if err != nil {
		http.Error(w, "could not create order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// GetOrdersHandler godoc
// @Summary List all orders, earliest deadline first
// @Tags orders
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Order
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filtered := make([]models.Order, 0, len(orders))
		for _, o := range orders {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByIDHandler godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// UpdateOrderHandler godoc
// @Summary Update an order
// @Description Full update; the past-deadline rule applies only to new orders so old ones can still be edited
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param order body OrderRequest true "Updated order"
// @Success 200 {object} models.Order
// @Failure 400 {array} ValidationError
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id} [put]
func UpdateOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateOrder(req, false)
	if !models.ValidOrderStatus(req.Status) {
		validationErrors = append(validationErrors, ValidationError{Field: "Status", Description: "Unknown order status"})
	}
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	current, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}

	order := models.Order{
		ID:             id,
		CustomerName:   req.CustomerName,
		Description:    req.Description,
		Deadline:       req.Deadline,
		Status:         req.Status,
		EstimatedValue: req.EstimatedValue,
		CreatedAt:      current.CreatedAt,
		UpdatedAt:      time.Now().Format(time.RFC3339),
	}
	updated, err := orderRepo.Update(order)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteOrderHandler godoc
// @Summary Delete an order
// @Tags orders
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id} [delete]
func DeleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := orderRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete order", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
