package types

import "github.com/shopspring/decimal"

// CostBreakdown is the itemized engine output. Every figure is already
// rounded: 2 decimals for per-kg, per-1000 and totals, 4 for per-pouch.
type CostBreakdown struct {
	// TotalGSM is the laminate basis weight including adhesive and ink
	TotalGSM decimal.Decimal `json:"total_gsm"`

	// TotalThickness is the sum of layer thicknesses in microns
	TotalThickness decimal.Decimal `json:"total_thickness"`

	// WeightPer1000PouchesKg is computed as area * GSM, the grams of one
	// pouch, which is numerically the kilograms of a thousand.
	WeightPer1000PouchesKg decimal.Decimal `json:"weight_per_1000_pouches_kg"`

	// WeightPerPouchG is the same number read per pouch
	WeightPerPouchG decimal.Decimal `json:"weight_per_pouch_g"`

	MaterialCostPerKg     decimal.Decimal `json:"material_cost_per_kg"`
	InkCostPerKg          decimal.Decimal `json:"ink_cost_per_kg"`
	PrintingCostPerKg     decimal.Decimal `json:"printing_cost_per_kg"`
	LaminationCostPerKg   decimal.Decimal `json:"lamination_cost_per_kg"`
	PouchingCostPerKg     decimal.Decimal `json:"pouching_cost_per_kg"`
	OverheadCostPerKg     decimal.Decimal `json:"overhead_cost_per_kg"`
	LaborCostPerKg        decimal.Decimal `json:"labor_cost_per_kg"`
	MachineUsageCostPerKg decimal.Decimal `json:"machine_usage_cost_per_kg"`
	WastageCostPerKg      decimal.Decimal `json:"wastage_cost_per_kg"`

	CylinderCostTotal          decimal.Decimal `json:"cylinder_cost_total"`
	CylinderCostAmortizedPerKg decimal.Decimal `json:"cylinder_cost_amortized_per_kg"`

	ConversionCostPerKg decimal.Decimal `json:"conversion_cost_per_kg"`
	TotalCostPerKg      decimal.Decimal `json:"total_cost_per_kg"`

	CostPer1000Pouches   decimal.Decimal `json:"cost_per_1000_pouches"`
	SellingPricePer1000  decimal.Decimal `json:"selling_price_per_1000"`
	CostPerPouch         decimal.Decimal `json:"cost_per_pouch"`
	SellingPricePerPouch decimal.Decimal `json:"selling_price_per_pouch"`

	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// OpenDimensions is the flat film needed for one pouch
type OpenDimensions struct {
	OpenWidthMM decimal.Decimal `json:"open_width_mm"`
	CutLengthMM decimal.Decimal `json:"cut_length_mm"`
}

// AreaSqm returns the film area of one pouch in square meters
func (d OpenDimensions) AreaSqm() decimal.Decimal {
	return d.OpenWidthMM.Mul(d.CutLengthMM).Div(decimal.NewFromInt(1_000_000))
}
