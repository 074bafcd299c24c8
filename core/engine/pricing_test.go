package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pouch-cost/core/types"
)

func TestAmortizeCylinders(t *testing.T) {
	total := decimal.NewFromInt(27000)
	weight := decimal.RequireFromString("4.5")

	tests := []struct {
		name string
		qty  types.Quantity
		want string
	}{
		{"by weight", types.ByWeight{Kg: 500}, "54"},
		{"by count", types.ByCount{Pieces: 200000}, "30"},
		{"zero weight", types.ByWeight{Kg: 0}, "0"},
		{"zero count", types.ByCount{Pieces: 0}, "0"},
		{"negative count", types.ByCount{Pieces: -5}, "0"},
		{"no basis", nil, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDecimal(t, tt.want, AmortizeCylinders(total, tt.qty, weight), "amortized")
		})
	}
}

func TestAmortizeCylindersWeightlessPouch(t *testing.T) {
	got := AmortizeCylinders(decimal.NewFromInt(1000), types.ByCount{Pieces: 1000}, decimal.Zero)
	assert.True(t, got.IsZero())
}

func TestPriceWastageAppliesToBase(t *testing.T) {
	req := types.ProductRequirements{
		WastagePercent: 10,
		MarginPercent:  25,
	}
	stack := FilmStack{RawMaterialCostPerKg: decimal.NewFromInt(100)}
	process := ProcessCosts{Printing: decimal.NewFromInt(50)}

	p := Price(req, decimal.RequireFromString("0.05"), stack, process)

	// no film weight: nothing per pouch, but per-kg figures still hold
	assertDecimal(t, "150", p.BaseCostPerKg, "base")
	assertDecimal(t, "15", p.WastageCostPerKg, "wastage")
	assertDecimal(t, "165", p.TotalCostPerKg, "total")
	assert.True(t, p.CostPer1000Pouches.IsZero())
	assert.True(t, p.SellingPricePer1000.IsZero())
}
