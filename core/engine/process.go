package engine

import (
	"github.com/shopspring/decimal"

	"pouch-cost/core/determinism"
	"pouch-cost/core/types"
)

// ProcessCosts are per-kg conversion costs, independent of film weight
type ProcessCosts struct {
	Printing   decimal.Decimal
	Lamination decimal.Decimal
	Pouching   decimal.Decimal
	Slitting   decimal.Decimal
	Overheads  decimal.Decimal
	Labor      decimal.Decimal
	Machine    decimal.Decimal
}

// Overhead is the reported overhead figure (overheads + slitting)
func (p ProcessCosts) Overhead() decimal.Decimal {
	return p.Overheads.Add(p.Slitting)
}

// Conversion is the sum of every conversion term
func (p ProcessCosts) Conversion() decimal.Decimal {
	return p.Printing.
		Add(p.Lamination).
		Add(p.Pouching).
		Add(p.Slitting).
		Add(p.Overheads).
		Add(p.Labor).
		Add(p.Machine)
}

// CalculateProcessCosts applies the printing and lamination formulas, or
// the per-job overrides when present. An override replaces its term.
func CalculateProcessCosts(req types.ProductRequirements) ProcessCosts {
	printing, ok := determinism.FromFloatPtr(req.PrintingCostPerKgOverride)
	if !ok {
		printing = printingCostPerKgBase.Add(decimal.NewFromInt(int64(req.NumberOfColors)).Mul(printingCostPerKgPerColor))
	}

	lamination, ok := determinism.FromFloatPtr(req.LaminationCostPerKgOverride)
	if !ok {
		passes := decimal.NewFromInt(int64(req.FilmStructure.LaminationPasses()))
		lamination = laminationCostPerKgBase.Add(passes.Mul(laminationCostPerKgPerPass))
	}

	return ProcessCosts{
		Printing:   printing,
		Lamination: lamination,
		Pouching:   pouchingCostPerKg,
		Slitting:   slittingCostPerKg,
		Overheads:  overheadsCostPerKg,
		Labor:      determinism.FromFloat(req.LaborCostPerKg),
		Machine:    determinism.FromFloat(req.MachineUsageCostPerKg),
	}
}
