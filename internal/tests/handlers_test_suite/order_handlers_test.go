package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	api "github.com/camila-fonseca/aroma-atelier/internal/http"
	handler "github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestCreateOrderHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/orders", handler.OrderRequest{
		CustomerName:   "Fernanda",
		Description:    "30 lavender candles for a wedding",
		EstimatedValue: 1350,
		Deadline:       futureDate(14),
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var order models.Order
	if err := json.NewDecoder(w.Body).Decode(&order); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected default status pending, got %q", order.Status)
	}
	if order.ID == "" {
		t.Errorf("expected a generated ID")
	}
}

func TestCreateOrderHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	tests := []struct {
		name           string
		payload        handler.OrderRequest
		expectedFields []string
	}{
		{
			name: "short description",
			payload: handler.OrderRequest{
				CustomerName: "Gabi", Description: "abc",
				EstimatedValue: 100, Deadline: futureDate(7),
			},
			expectedFields: []string{"Description"},
		},
		{
			name: "past deadline",
			payload: handler.OrderRequest{
				CustomerName: "Gabi", Description: "a dozen candles",
				EstimatedValue: 100, Deadline: "2020-01-01",
			},
			expectedFields: []string{"Deadline"},
		},
		{
			name: "unknown status",
			payload: handler.OrderRequest{
				CustomerName: "Gabi", Description: "a dozen candles",
				EstimatedValue: 100, Deadline: futureDate(7), Status: "shipped",
			},
			expectedFields: []string{"Status"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/orders", tt.payload, true)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 Bad Request, got %d", w.Code)
			}
			var errs []handler.ValidationError
			if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
				t.Fatalf("error decoding validation errors: %v", err)
			}
			got := map[string]bool{}
			for _, e := range errs {
				got[e.Field] = true
			}
			for _, field := range tt.expectedFields {
				if !got[field] {
					t.Errorf("expected a validation error for field %s, got %v", field, errs)
				}
			}
		})
	}
}

func TestGetOrdersHandler_StatusFilter(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	orderRepo.Create(models.Order{ID: "o1", CustomerName: "Ana", Description: "candles", Deadline: futureDate(3), Status: models.OrderStatusPending, EstimatedValue: 100})
	orderRepo.Create(models.Order{ID: "o2", CustomerName: "Bia", Description: "candles", Deadline: futureDate(5), Status: models.OrderStatusDelivered, EstimatedValue: 200})

	w := doJSON(r, http.MethodGet, "/orders?status=pending", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var orders []models.Order
	if err := json.NewDecoder(w.Body).Decode(&orders); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "o1" {
		t.Errorf("expected only the pending order, got %v", orders)
	}
}

func TestUpdateOrderHandler_StatusTransition(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	created, _ := orderRepo.Create(models.Order{
		ID: "o1", CustomerName: "Ana", Description: "30 candles",
		Deadline: "2020-06-01", Status: models.OrderStatusPending, EstimatedValue: 100,
	})

	// Old orders keep their past deadline editable.
	w := doJSON(r, http.MethodPut, "/orders/"+created.ID, handler.OrderRequest{
		CustomerName:   "Ana",
		Description:    "30 candles",
		EstimatedValue: 100,
		Deadline:       "2020-06-01",
		Status:         models.OrderStatusDelivered,
	}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var updated models.Order
	if err := json.NewDecoder(w.Body).Decode(&updated); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if updated.Status != models.OrderStatusDelivered {
		t.Errorf("expected status delivered, got %q", updated.Status)
	}
}

func TestDeleteOrderHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	created, _ := orderRepo.Create(models.Order{
		ID: "o1", CustomerName: "Ana", Description: "30 candles",
		Deadline: futureDate(3), Status: models.OrderStatusPending, EstimatedValue: 100,
	})

	w := doJSON(r, http.MethodDelete, "/orders/"+created.ID, nil, true)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doJSON(r, http.MethodDelete, "/orders/"+created.ID, nil, true)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}
