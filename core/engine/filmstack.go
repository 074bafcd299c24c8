package engine

import (
	"github.com/shopspring/decimal"

	"pouch-cost/core/determinism"
	"pouch-cost/core/types"
)

// FilmStack is the aggregated basis weight and cost of a laminate
type FilmStack struct {
	// TotalGSM includes films, adhesive and ink
	TotalGSM decimal.Decimal

	// MaterialCostPerSqm includes films, adhesive and ink
	MaterialCostPerSqm decimal.Decimal

	InkGSM        decimal.Decimal
	InkCostPerSqm decimal.Decimal

	// RawMaterialCostPerKg is MaterialCostPerSqm normalised by TotalGSM
	RawMaterialCostPerKg decimal.Decimal

	// InkCostPerKg is InkCostPerSqm normalised by TotalGSM
	InkCostPerKg decimal.Decimal
}

// FilmMaterialCostPerKg is the per-kg material cost without ink
func (s FilmStack) FilmMaterialCostPerKg() decimal.Decimal {
	return s.RawMaterialCostPerKg.Sub(s.InkCostPerKg)
}

// AggregateFilmStack sums layer, adhesive and ink weight and cost in
// layer order. An empty structure yields zero weight and zero per-kg costs.
func AggregateFilmStack(film types.FilmStructure, colors int, tables types.MaterialTables) FilmStack {
	var stack FilmStack
	n := len(film.Layers)

	for i, layer := range film.Layers {
		layerGSM := determinism.FromFloat(layer.ThicknessMicron).
			Mul(determinism.FromFloat(tables.Density(layer.Material)))
		stack.TotalGSM = stack.TotalGSM.Add(layerGSM)

		rate := determinism.FromFloat(tables.Rate(layer.Material))
		stack.MaterialCostPerSqm = stack.MaterialCostPerSqm.Add(layerGSM.Div(thousand).Mul(rate))

		if i < n-1 {
			stack.TotalGSM = stack.TotalGSM.Add(adhesiveGSM)
			stack.MaterialCostPerSqm = stack.MaterialCostPerSqm.Add(adhesiveGSM.Div(thousand).Mul(adhesiveRate))
		}
	}

	if colors > 0 {
		stack.InkGSM = decimal.NewFromInt(int64(colors)).Mul(inkGSMPerColor).Add(primerVarnishGSMAllowance)
		stack.TotalGSM = stack.TotalGSM.Add(stack.InkGSM)
		stack.InkCostPerSqm = stack.InkGSM.Div(thousand).Mul(inkRate)
		stack.MaterialCostPerSqm = stack.MaterialCostPerSqm.Add(stack.InkCostPerSqm)
	}

	kgPerSqm := stack.TotalGSM.Div(thousand)
	stack.RawMaterialCostPerKg = determinism.SafeDiv(stack.MaterialCostPerSqm, kgPerSqm)
	stack.InkCostPerKg = determinism.SafeDiv(stack.InkCostPerSqm, kgPerSqm)

	return stack
}
