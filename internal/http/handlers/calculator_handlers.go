package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/camila-fonseca/aroma-atelier/internal/costing"
	"github.com/camila-fonseca/aroma-atelier/internal/units"
)

// UsageCostHandler godoc
// @Summary Cost of a material usage
// @Description Computes the cost of using part of a purchased material, converting between units of the same group. Mixing mass and volume units still computes at a 1:1 base ratio but flags the mismatch.
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body UsageCostRequest true "Purchase and usage figures"
// @Success 200 {object} UsageCostResponse
// @Failure 400 {string} string "Invalid input"
// @Router /calculators/usage-cost [post]
func UsageCostHandler(w http.ResponseWriter, r *http.Request) {
	var req UsageCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	purchaseUnit, err := units.Lookup(req.PurchaseUnit)
	if err != nil {
		http.Error(w, "unknown purchase unit", http.StatusBadRequest)
		return
	}
	usageUnit, err := units.Lookup(req.UsageUnit)
	if err != nil {
		http.Error(w, "unknown usage unit", http.StatusBadRequest)
		return
	}

	result, err := costing.ComputeUsageCost(req.PurchasePrice, req.PurchaseQty, purchaseUnit, req.UsageQty, usageUnit)
	if err != nil {
		if errors.Is(err, costing.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "could not compute cost", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, UsageCostResponse{Cost: result.Cost, UnitMismatch: result.UnitMismatch})
}

// PricingHandler godoc
// @Summary Selling price from material costs and margin
// @Description Sums the material costs and applies the margin percentage on top of cost
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body PricingRequest true "Material costs and margin percent"
// @Success 200 {object} PricingResponse
// @Failure 400 {string} string "Invalid input"
// @Router /calculators/pricing [post]
func PricingHandler(w http.ResponseWriter, r *http.Request) {
	var req PricingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	for _, c := range req.Costs {
		if c < 0 {
			http.Error(w, "costs cannot be negative", http.StatusBadRequest)
			return
		}
	}

	totalCost := costing.TotalMaterialCost(req.Costs)
	sellingPrice := costing.SellingPrice(totalCost, req.MarginPercent)
	writeJSON(w, http.StatusOK, PricingResponse{
		TotalCost:    totalCost,
		SellingPrice: sellingPrice,
		Profit:       costing.Profit(sellingPrice, totalCost),
	})
}

// BatchMixHandler godoc
// @Summary Wax and fragrance split for a production batch
// @Description Splits the total mix for a batch of containers into wax and fragrance, where the fragrance load is a percentage of the wax weight
// @Tags calculators
// @Accept json
// @Produce json
// @Param input body BatchMixRequest true "Container size, fragrance percent and quantity"
// @Success 200 {object} BatchMixResponse
// @Failure 400 {string} string "Invalid input"
// @Router /calculators/batch-mix [post]
func BatchMixHandler(w http.ResponseWriter, r *http.Request) {
	var req BatchMixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	mix, err := costing.ComputeBatchMix(req.ContainerSize, req.FragrancePercent, req.Quantity)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, BatchMixResponse{
		TotalMix:  mix.TotalMix,
		Wax:       mix.Wax,
		Fragrance: mix.Fragrance,
	})
}

// GetUnitsHandler godoc
// @Summary List known measurement units
// @Tags calculators
// @Produce json
// @Success 200 {array} string
// @Router /units [get]
func GetUnitsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, units.Symbols())
}
