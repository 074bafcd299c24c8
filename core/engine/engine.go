// Package engine turns pouch requirements into an itemized cost breakdown.
// It is pure: no I/O, no logging, no shared mutable state. The CLI and the
// HTTP API are thin wrappers around it.
package engine

import (
	"pouch-cost/core/determinism"
	"pouch-cost/core/types"
)

// Engine computes estimates against a fixed set of material tables.
// It is safe for concurrent use.
type Engine struct {
	tables types.MaterialTables
}

// New creates an engine bound to a private copy of tables
func New(tables types.MaterialTables) *Engine {
	return &Engine{tables: tables.Clone()}
}

// NewDefault creates an engine bound to a fresh copy of the built-in tables
func NewDefault() *Engine {
	return &Engine{tables: types.DefaultMaterialTables()}
}

// Tables returns a copy of the tables the engine prices against
func (e *Engine) Tables() types.MaterialTables {
	return e.tables.Clone()
}

// Estimate is a breakdown plus the intermediate figures behind it
type Estimate struct {
	Dimensions types.OpenDimensions
	FilmStack  FilmStack
	Process    ProcessCosts
	Pricing    Pricing
	Breakdown  types.CostBreakdown
}

// Compute returns the rounded cost breakdown for req
func (e *Engine) Compute(req types.ProductRequirements) types.CostBreakdown {
	return e.Estimate(req).Breakdown
}

// Estimate runs the four stages: geometry, film stack, process costs,
// then amortization and pricing.
func (e *Engine) Estimate(req types.ProductRequirements) Estimate {
	dims := ResolveOpenDimensions(req)
	stack := AggregateFilmStack(req.FilmStructure, req.NumberOfColors, e.tables)
	process := CalculateProcessCosts(req)
	pricing := Price(req, dims.AreaSqm(), stack, process)

	return Estimate{
		Dimensions: dims,
		FilmStack:  stack,
		Process:    process,
		Pricing:    pricing,
		Breakdown:  breakdown(req, stack, process, pricing),
	}
}

// Compute prices req against tables, or the built-in tables when nil
func Compute(req types.ProductRequirements, tables *types.MaterialTables) types.CostBreakdown {
	if tables == nil {
		return NewDefault().Compute(req)
	}
	return New(*tables).Compute(req)
}

func breakdown(req types.ProductRequirements, stack FilmStack, process ProcessCosts, p Pricing) types.CostBreakdown {
	r2 := determinism.Round2
	r4 := determinism.Round4

	weight := r2(p.WeightPerPouchG)

	return types.CostBreakdown{
		TotalGSM:               r2(stack.TotalGSM),
		TotalThickness:         r2(determinism.FromFloat(req.FilmStructure.TotalThickness())),
		WeightPer1000PouchesKg: weight,
		WeightPerPouchG:        weight,

		MaterialCostPerKg:     r2(stack.FilmMaterialCostPerKg()),
		InkCostPerKg:          r2(stack.InkCostPerKg),
		PrintingCostPerKg:     r2(process.Printing),
		LaminationCostPerKg:   r2(process.Lamination),
		PouchingCostPerKg:     r2(process.Pouching),
		OverheadCostPerKg:     r2(process.Overhead()),
		LaborCostPerKg:        r2(process.Labor),
		MachineUsageCostPerKg: r2(process.Machine),
		WastageCostPerKg:      r2(p.WastageCostPerKg),

		CylinderCostTotal:          r2(p.CylinderCostTotal),
		CylinderCostAmortizedPerKg: r2(p.CylinderCostAmortizedPerKg),

		ConversionCostPerKg: r2(process.Conversion()),
		TotalCostPerKg:      r2(p.TotalCostPerKg),

		CostPer1000Pouches:   r2(p.CostPer1000Pouches),
		SellingPricePer1000:  r2(p.SellingPricePer1000),
		CostPerPouch:         r4(p.CostPer1000Pouches.Div(thousand)),
		SellingPricePerPouch: r4(p.SellingPricePer1000.Div(thousand)),

		MarginPercent: determinism.FromFloat(req.MarginPercent),
	}
}
