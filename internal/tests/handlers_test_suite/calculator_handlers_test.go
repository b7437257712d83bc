package handlers_test_suite

import (
	"encoding/json"
	"math"
	"net/http"
	"testing"

	api "github.com/camila-fonseca/aroma-atelier/internal/http"
	handler "github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
)

func TestUsageCostHandler(t *testing.T) {
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/calculators/usage-cost", handler.UsageCostRequest{
		PurchasePrice: 50,
		PurchaseQty:   1,
		PurchaseUnit:  "kg",
		UsageQty:      90,
		UsageUnit:     "g",
	}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.UsageCostResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if math.Abs(resp.Cost-4.5) > 1e-9 {
		t.Errorf("expected cost 4.5, got %v", resp.Cost)
	}
	if resp.UnitMismatch {
		t.Errorf("kg and g are the same group, no mismatch expected")
	}
}

func TestUsageCostHandler_CrossGroupWarns(t *testing.T) {
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/calculators/usage-cost", handler.UsageCostRequest{
		PurchasePrice: 30,
		PurchaseQty:   1,
		PurchaseUnit:  "l",
		UsageQty:      100,
		UsageUnit:     "g",
	}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK (mismatch is a warning, not an error), got %d", w.Code)
	}
	var resp handler.UsageCostResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.UnitMismatch {
		t.Errorf("expected unit_mismatch true for l vs g")
	}
	if math.Abs(resp.Cost-3.0) > 1e-9 {
		t.Errorf("expected cost 3 at the 1:1 base ratio, got %v", resp.Cost)
	}
}

func TestUsageCostHandler_BadInput(t *testing.T) {
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/calculators/usage-cost", handler.UsageCostRequest{
		PurchasePrice: 50, PurchaseQty: 1, PurchaseUnit: "lb", UsageQty: 90, UsageUnit: "g",
	}, false)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown unit, got %d", w.Code)
	}

	w = doJSON(r, http.MethodPost, "/calculators/usage-cost", handler.UsageCostRequest{
		PurchasePrice: 50, PurchaseQty: 0, PurchaseUnit: "kg", UsageQty: 90, UsageUnit: "g",
	}, false)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for zero purchase quantity, got %d", w.Code)
	}
}

func TestPricingHandler(t *testing.T) {
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/calculators/pricing", handler.PricingRequest{
		Costs:         []float64{4.5, 12, 3.5},
		MarginPercent: 150,
	}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.PricingResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if math.Abs(resp.TotalCost-20) > 1e-9 {
		t.Errorf("expected total cost 20, got %v", resp.TotalCost)
	}
	if math.Abs(resp.SellingPrice-50) > 1e-9 {
		t.Errorf("expected selling price 50, got %v", resp.SellingPrice)
	}
	if math.Abs(resp.Profit-30) > 1e-9 {
		t.Errorf("expected profit 30, got %v", resp.Profit)
	}
}

func TestBatchMixHandler(t *testing.T) {
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodPost, "/calculators/batch-mix", handler.BatchMixRequest{
		ContainerSize:    212,
		FragrancePercent: 10,
		Quantity:         10,
	}, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var resp handler.BatchMixResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if math.Abs(resp.TotalMix-2120) > 1e-9 {
		t.Errorf("expected total mix 2120, got %v", resp.TotalMix)
	}
	if math.Abs(resp.Wax-2120/1.1) > 1e-6 {
		t.Errorf("expected wax %v, got %v", 2120/1.1, resp.Wax)
	}
	if math.Abs(resp.Wax+resp.Fragrance-resp.TotalMix) > 1e-9 {
		t.Errorf("wax and fragrance should add up to the total mix")
	}
}

func TestGetUnitsHandler(t *testing.T) {
	r := api.NewRouter(false)

	w := doJSON(r, http.MethodGet, "/units", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var symbols []string
	if err := json.NewDecoder(w.Body).Decode(&symbols); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	want := map[string]bool{"kg": false, "g": false, "l": false, "ml": false, "un": false}
	for _, s := range symbols {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, seen := range want {
		if !seen {
			t.Errorf("expected unit %q in the listing, got %v", s, symbols)
		}
	}
}
