// Package units holds the fixed unit-of-measure registry used for recipe
// costing. Units convert only within their physical group; the factor maps
// a quantity to the group's base unit (gram, milliliter or unit).
package units

import "errors"

// Group is the physical quantity a unit measures.
type Group string

const (
	Mass   Group = "mass"
	Volume Group = "volume"
	Count  Group = "count"
)

// Unit describes a symbol, its group and the multiplier to the group's
// base unit. Base units (g, ml, un) carry a factor of 1.
type Unit struct {
	Symbol       string
	Group        Group
	FactorToBase float64
}

// ErrUnknownUnit is returned when a symbol is not in the registry.
var ErrUnknownUnit = errors.New("unknown unit symbol")

var registry = map[string]Unit{
	"kg": {Symbol: "kg", Group: Mass, FactorToBase: 1000},
	"g":  {Symbol: "g", Group: Mass, FactorToBase: 1},
	"l":  {Symbol: "l", Group: Volume, FactorToBase: 1000},
	"ml": {Symbol: "ml", Group: Volume, FactorToBase: 1},
	"un": {Symbol: "un", Group: Count, FactorToBase: 1},
}

// Lookup resolves a unit symbol against the registry.
func Lookup(symbol string) (Unit, error) {
	u, ok := registry[symbol]
	if !ok {
		return Unit{}, ErrUnknownUnit
	}
	return u, nil
}

// Known reports whether the symbol is registered.
func Known(symbol string) bool {
	_, ok := registry[symbol]
	return ok
}

// Symbols returns the registered unit symbols.
func Symbols() []string {
	out := make([]string, 0, len(registry))
	for s := range registry {
		out = append(out, s)
	}
	return out
}

// ToBase converts a quantity expressed in u to the group's base unit.
func (u Unit) ToBase(qty float64) float64 {
	return qty * u.FactorToBase
}
