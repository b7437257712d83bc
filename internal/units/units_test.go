package units

import (
	"errors"
	"testing"
)

func TestLookup_KnownUnits(t *testing.T) {
	tests := []struct {
		symbol string
		group  Group
		factor float64
	}{
		{"kg", Mass, 1000},
		{"g", Mass, 1},
		{"l", Volume, 1000},
		{"ml", Volume, 1},
		{"un", Count, 1},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			u, err := Lookup(tt.symbol)
			if err != nil {
				t.Fatalf("Lookup(%q) returned error: %v", tt.symbol, err)
			}
			if u.Group != tt.group {
				t.Errorf("expected group %q, got %q", tt.group, u.Group)
			}
			if u.FactorToBase != tt.factor {
				t.Errorf("expected factor %v, got %v", tt.factor, u.FactorToBase)
			}
		})
	}
}

func TestLookup_UnknownUnit(t *testing.T) {
	_, err := Lookup("oz")
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatalf("expected ErrUnknownUnit, got %v", err)
	}
}

func TestBaseUnitsHaveFactorOne(t *testing.T) {
	for _, s := range []string{"g", "ml", "un"} {
		u, err := Lookup(s)
		if err != nil {
			t.Fatalf("Lookup(%q) returned error: %v", s, err)
		}
		if u.FactorToBase != 1 {
			t.Errorf("base unit %q must have factor 1, got %v", s, u.FactorToBase)
		}
	}
}

func TestToBase(t *testing.T) {
	kg, _ := Lookup("kg")
	if got := kg.ToBase(2.5); got != 2500 {
		t.Errorf("expected 2500 g, got %v", got)
	}
}
