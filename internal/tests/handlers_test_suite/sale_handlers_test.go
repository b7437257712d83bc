package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	api "github.com/camila-fonseca/aroma-atelier/internal/http"
	handler "github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
	"github.com/camila-fonseca/aroma-atelier/internal/models"
	"github.com/camila-fonseca/aroma-atelier/internal/repo"
	"github.com/camila-fonseca/aroma-atelier/internal/stock"
)

func TestCreateSaleHandler_Manual(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/sales", handler.SaleRequest{
		Date:         "2026-08-20",
		CustomerName: "Ana",
		Products:     "2x Lavender Candle",
		TotalValue:   90,
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var sale models.Sale
	if err := json.NewDecoder(w.Body).Decode(&sale); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if sale.TotalValue != 90 || sale.Date != "2026-08-20" {
		t.Errorf("unexpected sale recorded: %+v", sale)
	}

	// Manual sales never touch the stock.
	items, _ := inventoryRepo.GetAll()
	if len(items) != 0 {
		t.Errorf("manual sale should not create inventory side effects")
	}
}

func TestCheckoutHandler_DeductsRecipe(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	wax := seedInventoryItem("Coconut Wax", "wax", 1000, "g", 200)
	oil := seedInventoryItem("Lavender Oil", "fragrance", 200, "ml", 50)
	candle := seedProduct("Lavender Candle", 45, []models.RecipeItem{
		{InventoryItemID: wax.ID, Quantity: 30},
		{InventoryItemID: oil.ID, Quantity: 5},
	})

	w := doJSON(r, http.MethodPost, "/sales/checkout", handler.CheckoutRequest{
		Date:         "2026-08-21",
		CustomerName: "Bruna",
		Cart: []handler.CartEntryRequest{
			{Kind: stock.EntryProduct, ProductID: candle.ID, Quantity: 5, UnitPrice: 45},
		},
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.CheckoutResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.StockClamps) != 0 {
		t.Errorf("expected no clamps, got %v", resp.StockClamps)
	}
	if resp.Sale.TotalValue != 225 {
		t.Errorf("expected total 225, got %v", resp.Sale.TotalValue)
	}
	if !strings.Contains(resp.Sale.Products, "5x Lavender Candle") {
		t.Errorf("expected description to mention '5x Lavender Candle', got %q", resp.Sale.Products)
	}

	gotWax, _ := inventoryRepo.GetByID(wax.ID)
	if gotWax.Quantity != 850 {
		t.Errorf("expected 850g of wax left, got %v", gotWax.Quantity)
	}
	gotOil, _ := inventoryRepo.GetByID(oil.ID)
	if gotOil.Quantity != 175 {
		t.Errorf("expected 175ml of oil left, got %v", gotOil.Quantity)
	}
}

func TestCheckoutHandler_ClampsAtZero(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	wax := seedInventoryItem("Coconut Wax", "wax", 1000, "g", 200)

	w := doJSON(r, http.MethodPost, "/sales/checkout", handler.CheckoutRequest{
		CustomerName: "Carla",
		Cart: []handler.CartEntryRequest{
			{Kind: stock.EntryItem, InventoryItemID: wax.ID, Quantity: 1200, UnitPrice: 0.1},
		},
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created (oversell is not an error), got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.CheckoutResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp.StockClamps) != 1 {
		t.Fatalf("expected exactly one clamp event, got %v", resp.StockClamps)
	}
	clamp := resp.StockClamps[0]
	if clamp.Requested != 1200 || clamp.Available != 1000 {
		t.Errorf("unexpected clamp event: %+v", clamp)
	}

	gotWax, _ := inventoryRepo.GetByID(wax.ID)
	if gotWax.Quantity != 0 {
		t.Errorf("expected stock clamped to 0, got %v", gotWax.Quantity)
	}
}

func TestCheckoutHandler_SkipsDanglingReferences(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	wax := seedInventoryItem("Coconut Wax", "wax", 1000, "g", 200)

	w := doJSON(r, http.MethodPost, "/sales/checkout", handler.CheckoutRequest{
		CustomerName: "Duda",
		Cart: []handler.CartEntryRequest{
			{Kind: stock.EntryProduct, ProductID: "deleted-product", Quantity: 2, UnitPrice: 45},
			{Kind: stock.EntryItem, InventoryItemID: wax.ID, Quantity: 100, UnitPrice: 0.1},
		},
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.CheckoutResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !strings.Contains(resp.Sale.Products, "unknown item") {
		t.Errorf("dangling reference should render as 'unknown item', got %q", resp.Sale.Products)
	}

	gotWax, _ := inventoryRepo.GetByID(wax.ID)
	if gotWax.Quantity != 900 {
		t.Errorf("expected 900g left after valid entry, got %v", gotWax.Quantity)
	}
}

func TestCheckoutHandler_RejectsBadCarts(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/sales/checkout", handler.CheckoutRequest{CustomerName: "Eva"}, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty cart, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/sales/checkout", handler.CheckoutRequest{
		CustomerName: "Eva",
		Cart:         []handler.CartEntryRequest{{Kind: "bundle", Quantity: 1}},
	}, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown entry kind, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/sales/checkout", handler.CheckoutRequest{
		CustomerName: "Eva",
		Cart:         []handler.CartEntryRequest{{Kind: stock.EntryItem, InventoryItemID: "x", Quantity: 0}},
	}, true)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero quantity, got %d", w.Code)
	}
}

func TestGetDailyRevenueHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	saleRepo.Create(models.Sale{ID: "s1", Date: "2026-08-18", CustomerName: "Ana", Products: "x", TotalValue: 40})
	saleRepo.Create(models.Sale{ID: "s2", Date: "2026-08-18", CustomerName: "Bia", Products: "y", TotalValue: 60})
	saleRepo.Create(models.Sale{ID: "s3", Date: "2026-08-19", CustomerName: "Ana", Products: "z", TotalValue: 25})

	w := doJSON(r, http.MethodGet, "/sales/daily", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var points []handler.DailyRevenuePoint
	if err := json.NewDecoder(w.Body).Decode(&points); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 daily points, got %d", len(points))
	}
	if points[0].Date != "2026-08-18" || points[0].Revenue != 100 {
		t.Errorf("expected 2026-08-18 with revenue 100, got %+v", points[0])
	}
	if points[1].Date != "2026-08-19" || points[1].Revenue != 25 {
		t.Errorf("expected 2026-08-19 with revenue 25, got %+v", points[1])
	}
}

func TestGetDashboardSummaryHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	seedInventoryItem("Coconut Wax", "wax", 100, "g", 200) // low
	seedInventoryItem("Lavender Oil", "fragrance", 200, "ml", 50)
	seedProduct("Lavender Candle", 45, nil)
	saleRepo.Create(models.Sale{ID: "s1", Date: "2026-08-18", CustomerName: "Ana", Products: "x", TotalValue: 40})
	saleRepo.Create(models.Sale{ID: "s2", Date: "2026-08-19", CustomerName: "Bia", Products: "y", TotalValue: 60})

	w := doJSON(r, http.MethodGet, "/dashboard/summary", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var summary repo.Summary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if summary.TotalRevenue != 100 || summary.SalesCount != 2 {
		t.Errorf("expected revenue 100 over 2 sales, got %+v", summary)
	}
	if summary.LastSaleDate != "2026-08-19" {
		t.Errorf("expected last sale date 2026-08-19, got %q", summary.LastSaleDate)
	}
	if summary.TotalProducts != 1 || summary.LowStockCount != 1 {
		t.Errorf("expected 1 product and 1 low stock item, got %+v", summary)
	}
}

func TestExportSalesHandler(t *testing.T) {
	t.Cleanup(clearAllData)
	r := api.NewRouter(false)

	saleRepo.Create(models.Sale{ID: "s1", Date: "2026-08-18", CustomerName: "Ana", Products: "2x Lavender Candle", TotalValue: 90})

	w := doJSON(r, http.MethodGet, "/sales/export", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected content type %q", ct)
	}
	if w.Body.Len() == 0 {
		t.Errorf("expected a non-empty workbook")
	}
}
