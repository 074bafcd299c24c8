package engine

import (
	"github.com/shopspring/decimal"

	"pouch-cost/core/determinism"
	"pouch-cost/core/types"
)

// Pricing holds the unrounded amortization and price figures
type Pricing struct {
	WeightPerPouchG            decimal.Decimal
	CylinderCostTotal          decimal.Decimal
	CylinderCostAmortizedPerKg decimal.Decimal
	BaseCostPerKg              decimal.Decimal
	WastageCostPerKg           decimal.Decimal
	TotalCostPerKg             decimal.Decimal
	CostPer1000Pouches         decimal.Decimal
	SellingPricePer1000        decimal.Decimal
}

// CylinderCostTotal is the one-time tooling cost for the job
func CylinderCostTotal(req types.ProductRequirements) decimal.Decimal {
	return decimal.NewFromInt(int64(req.NumberOfColors)).Mul(determinism.FromFloat(req.CylinderCostPerUnit))
}

// AmortizeCylinders spreads the tooling cost over the job weight in kg.
// Without a positive job size the amortized cost is zero.
func AmortizeCylinders(total decimal.Decimal, qty types.Quantity, weightPerPouchG decimal.Decimal) decimal.Decimal {
	switch q := qty.(type) {
	case types.ByWeight:
		kg := determinism.FromFloat(q.Kg)
		if kg.IsPositive() {
			return total.Div(kg)
		}
	case types.ByCount:
		if q.Pieces > 0 {
			jobKg := decimal.NewFromInt(q.Pieces).Mul(weightPerPouchG).Div(thousand)
			if jobKg.IsPositive() {
				return total.Div(jobKg)
			}
		}
	}
	return decimal.Zero
}

// Price applies amortization, wastage and margin on top of the material
// and conversion cost per kg.
func Price(req types.ProductRequirements, area decimal.Decimal, stack FilmStack, process ProcessCosts) Pricing {
	var p Pricing

	p.WeightPerPouchG = area.Mul(stack.TotalGSM)
	p.CylinderCostTotal = CylinderCostTotal(req)
	p.CylinderCostAmortizedPerKg = AmortizeCylinders(p.CylinderCostTotal, req.Quantity, p.WeightPerPouchG)

	p.BaseCostPerKg = stack.RawMaterialCostPerKg.
		Add(process.Conversion()).
		Add(p.CylinderCostAmortizedPerKg)
	p.WastageCostPerKg = determinism.Percent(p.BaseCostPerKg, determinism.FromFloat(req.WastagePercent))
	p.TotalCostPerKg = p.BaseCostPerKg.Add(p.WastageCostPerKg)

	// grams per pouch == kg per 1000 pouches
	p.CostPer1000Pouches = p.TotalCostPerKg.Mul(p.WeightPerPouchG)
	markup := decimal.NewFromInt(1).Add(determinism.FromFloat(req.MarginPercent).Div(hundred))
	p.SellingPricePer1000 = p.CostPer1000Pouches.Mul(markup)

	return p
}
