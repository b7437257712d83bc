package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/camila-fonseca/aroma-atelier/internal/alert"
	"github.com/camila-fonseca/aroma-atelier/internal/models"
	"github.com/camila-fonseca/aroma-atelier/internal/report"
	"github.com/camila-fonseca/aroma-atelier/internal/repo"
	"github.com/camila-fonseca/aroma-atelier/internal/stock"
)

// CreateSaleHandler godoc
// @Summary Record a sale manually
// @Description Records a sale without touching the stock; use checkout to deduct ingredients
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sale body SaleRequest true "Sale to record"
// @Success 201 {object} models.Sale
// @Failure 400 {array} ValidationError
// @Router /sales [post]
func CreateSaleHandler(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateSale(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	sale := models.Sale{
		ID:           uuid.NewString(),
		Date:         date,
		CustomerName: req.CustomerName,
		Products:     req.Products,
		TotalValue:   req.TotalValue,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	created, err := saleRepo.Create(sale)
	if err != nil {
		http.Error(w, "could not record sale", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// CheckoutHandler godoc
// @Summary Finalize a sale cart
// @Description Deducts the cart from the stock (recipes expanded, quantities clamped at zero) and records the sale
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param checkout body CheckoutRequest true "Cart to finalize"
// @Success 201 {object} CheckoutResponse
// @Failure 400 {string} string "Invalid cart"
// @Failure 500 {string} string "Internal error"
// @Router /sales/checkout [post]
func CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if len(req.Cart) == 0 {
		http.Error(w, "cart is empty", http.StatusBadRequest)
		return
	}

	cart := make([]stock.CartEntry, len(req.Cart))
	for i, entry := range req.Cart {
		if entry.Kind != stock.EntryProduct && entry.Kind != stock.EntryItem {
			http.Error(w, fmt.Sprintf("cart entry %d: kind must be %q or %q", i, stock.EntryProduct, stock.EntryItem), http.StatusBadRequest)
			return
		}
		if entry.Quantity <= 0 {
			http.Error(w, fmt.Sprintf("cart entry %d: quantity must be greater than zero", i), http.StatusBadRequest)
			return
		}
		cart[i] = stock.CartEntry{
			Kind:            entry.Kind,
			ProductID:       entry.ProductID,
			InventoryItemID: entry.InventoryItemID,
			Quantity:        entry.Quantity,
			UnitPrice:       entry.UnitPrice,
		}
	}

	inventory, err := inventoryRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch inventory", http.StatusInternalServerError)
		return
	}
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}

	updated, clamps := stock.ApplyCart(inventory, products, cart)
	if err := inventoryRepo.SaveAll(updated); err != nil {
		http.Error(w, "could not update stock", http.StatusInternalServerError)
		return
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	sale := models.Sale{
		ID:           uuid.NewString(),
		Date:         date,
		CustomerName: req.CustomerName,
		Products:     stock.DescribeCart(cart, products, inventory, req.Notes),
		TotalValue:   stock.CartTotal(cart),
		CreatedAt:    time.Now().Format(time.RFC3339),
	}
	created, err := saleRepo.Create(sale)
	if err != nil {
		http.Error(w, "could not record sale", http.StatusInternalServerError)
		return
	}

	if len(clamps) > 0 {
		alert.LogOversell(created.ID, clamps)
	}

	resp := CheckoutResponse{Sale: created}
	for _, c := range clamps {
		resp.StockClamps = append(resp.StockClamps, StockClampEvent(c))
	}
	writeJSON(w, http.StatusCreated, resp)
}

// GetSalesHandler godoc
// @Summary List all sales, most recent first
// @Tags sales
// @Produce json
// @Success 200 {array} models.Sale
// @Failure 500 {string} string "Internal error"
// @Router /sales [get]
func GetSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

// GetSaleByIDHandler godoc
// @Summary Get sale by ID
// @Tags sales
// @Produce json
// @Param id path string true "Sale ID"
// @Success 200 {object} models.Sale
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /sales/{id} [get]
func GetSaleByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sale, err := saleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrSaleNotFound) {
			http.Error(w, "sale not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch sale", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sale)
}

// GetDailyRevenueHandler godoc
// @Summary Revenue per day
// @Description Sums sale totals per calendar day, oldest first
// @Tags sales
// @Produce json
// @Param days query int false "Number of most recent days to return (default 7)"
// @Success 200 {array} DailyRevenuePoint
// @Failure 500 {string} string "Internal error"
// @Router /sales/daily [get]
func GetDailyRevenueHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}

	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &days); err != nil || days <= 0 {
			http.Error(w, "days must be a positive integer", http.StatusBadRequest)
			return
		}
	}

	byDay := make(map[string]float64)
	for _, sale := range sales {
		day := sale.Date
		if len(day) > 10 {
			day = day[:10]
		}
		byDay[day] += sale.TotalValue
	}

	points := make([]DailyRevenuePoint, 0, len(byDay))
	for day, revenue := range byDay {
		points = append(points, DailyRevenuePoint{Date: day, Revenue: revenue})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	if len(points) > days {
		points = points[len(points)-days:]
	}
	writeJSON(w, http.StatusOK, points)
}

// ExportSalesHandler godoc
// @Summary Export sales as a spreadsheet
// @Description Streams an xlsx workbook with one row per sale and a grand total
// @Tags sales
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 500 {string} string "Internal error"
// @Router /sales/export [get]
func ExportSalesHandler(w http.ResponseWriter, r *http.Request) {
	sales, err := saleRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch sales", http.StatusInternalServerError)
		return
	}
	data, err := report.BuildSalesWorkbook(sales)
	if err != nil {
		log.Printf("failed to build sales workbook: %v", err)
		http.Error(w, "could not build report", http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
