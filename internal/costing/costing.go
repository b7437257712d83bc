// Package costing derives material costs and suggested selling prices from
// bulk purchases and recipe usage. All functions are pure.
package costing

import (
	"errors"

	"github.com/camila-fonseca/aroma-atelier/internal/units"
)

// ErrInvalidInput is returned when a price or quantity required to be
// positive is zero or negative.
var ErrInvalidInput = errors.New("price and quantities must be greater than zero")

// UsageCost is the outcome of costing one recipe usage against a bulk
// purchase. UnitMismatch is advisory only: the cost is still computed,
// assuming a 1:1 density between the two groups.
type UsageCost struct {
	Cost         float64
	UnitMismatch bool
}

// ComputeUsageCost prices a recipe usage (usageQty in usageUnit) out of a
// bulk purchase (purchaseQty of purchaseUnit bought for purchasePrice).
// Both quantities are normalized to their group's base unit, so buying in
// kg and using in g works directly. A cross-group pairing (e.g. mass
// purchase, volume usage) is not rejected; the result carries a
// UnitMismatch flag the caller must surface as a warning.
func ComputeUsageCost(purchasePrice, purchaseQty float64, purchaseUnit units.Unit, usageQty float64, usageUnit units.Unit) (UsageCost, error) {
	if purchasePrice <= 0 || purchaseQty <= 0 || usageQty <= 0 {
		return UsageCost{}, ErrInvalidInput
	}

	totalBase := purchaseUnit.ToBase(purchaseQty)
	pricePerBase := purchasePrice / totalBase
	usedBase := usageUnit.ToBase(usageQty)

	return UsageCost{
		Cost:         pricePerBase * usedBase,
		UnitMismatch: purchaseUnit.Group != usageUnit.Group,
	}, nil
}

// TotalMaterialCost sums a list of per-material costs.
func TotalMaterialCost(costs []float64) float64 {
	var total float64
	for _, c := range costs {
		total += c
	}
	return total
}

// SellingPrice applies a profit margin (percent) on top of a total material
// cost. Zero cost and negative margins are allowed: this is a sandbox
// calculator, not a policy enforcer.
func SellingPrice(totalCost, marginPercent float64) float64 {
	return totalCost * (1 + marginPercent/100)
}

// Profit is the difference between a selling price and the total cost.
func Profit(sellingPrice, totalCost float64) float64 {
	return sellingPrice - totalCost
}

// BatchMix is the wax/fragrance split for a production batch of container
// candles.
type BatchMix struct {
	TotalMix  float64 `json:"total_mix"`
	Wax       float64 `json:"wax"`
	Fragrance float64 `json:"fragrance"`
}

// ComputeBatchMix works backwards from the container capacity (grams), the
// fragrance load (percent of wax weight) and the number of candles in the
// batch to the amount of wax and fragrance to weigh out. The total mix is
// fixed by the containers; wax = total / (1 + load/100).
func ComputeBatchMix(containerSize, fragrancePercent, quantity float64) (BatchMix, error) {
	if containerSize <= 0 || quantity <= 0 || fragrancePercent < 0 {
		return BatchMix{}, ErrInvalidInput
	}

	total := containerSize * quantity
	wax := total / (1 + fragrancePercent/100)

	return BatchMix{
		TotalMix:  total,
		Wax:       wax,
		Fragrance: total - wax,
	}, nil
}
