package engine

import (
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pouch-cost/core/types"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	assert.Truef(t, w.Equal(got), "%s: want %s, got %s", field, w, got)
}

func floatPtr(f float64) *float64 { return &f }

// centerSealJob is the reference job: 150x200 center seal, PET12/LDPE40,
// six colors, 100k pieces.
func centerSealJob() types.ProductRequirements {
	return types.ProductRequirements{
		PouchType: types.PouchCenterSeal,
		WidthMM:   150,
		HeightMM:  200,
		GussetMM:  0,
		FilmStructure: types.FilmStructure{Layers: []types.Layer{
			{Material: types.MaterialPET, ThicknessMicron: 12},
			{Material: types.MaterialLDPE, ThicknessMicron: 40},
		}},
		NumberOfColors:        6,
		PrintingMethod:        types.PrintingRotogravure,
		CylinderCostPerUnit:   4500,
		Quantity:              types.ByCount{Pieces: 100000},
		MarginPercent:         20,
		WastagePercent:        5,
		LaborCostPerKg:        8,
		MachineUsageCostPerKg: 15,
	}
}

func TestComputeCenterSealReference(t *testing.T) {
	bd := NewDefault().Compute(centerSealJob())

	assertDecimal(t, "60.10", bd.TotalGSM, "total_gsm")
	assertDecimal(t, "52", bd.TotalThickness, "total_thickness")
	assertDecimal(t, "4.23", bd.WeightPer1000PouchesKg, "weight_per_1000_pouches_kg")
	assertDecimal(t, "105.44", bd.MaterialCostPerKg, "material_cost_per_kg")
	assertDecimal(t, "19.97", bd.InkCostPerKg, "ink_cost_per_kg")
	assertDecimal(t, "27", bd.PrintingCostPerKg, "printing_cost_per_kg")
	assertDecimal(t, "17", bd.LaminationCostPerKg, "lamination_cost_per_kg")
	assertDecimal(t, "20", bd.PouchingCostPerKg, "pouching_cost_per_kg")
	assertDecimal(t, "17", bd.OverheadCostPerKg, "overhead_cost_per_kg")
	assertDecimal(t, "8", bd.LaborCostPerKg, "labor_cost_per_kg")
	assertDecimal(t, "15", bd.MachineUsageCostPerKg, "machine_usage_cost_per_kg")
	assertDecimal(t, "104", bd.ConversionCostPerKg, "conversion_cost_per_kg")
	assertDecimal(t, "27000", bd.CylinderCostTotal, "cylinder_cost_total")
	assertDecimal(t, "63.81", bd.CylinderCostAmortizedPerKg, "cylinder_cost_amortized_per_kg")
	assertDecimal(t, "14.66", bd.WastageCostPerKg, "wastage_cost_per_kg")
	assertDecimal(t, "307.88", bd.TotalCostPerKg, "total_cost_per_kg")
	assertDecimal(t, "1302.66", bd.CostPer1000Pouches, "cost_per_1000_pouches")
	assertDecimal(t, "1563.20", bd.SellingPricePer1000, "selling_price_per_1000")
	assertDecimal(t, "1.3027", bd.CostPerPouch, "cost_per_pouch")
	assertDecimal(t, "1.5632", bd.SellingPricePerPouch, "selling_price_per_pouch")
	assertDecimal(t, "20", bd.MarginPercent, "margin_percent")

	assert.True(t, bd.SellingPricePer1000.GreaterThan(bd.CostPer1000Pouches))
}

func TestComputeThreeLayerPharma(t *testing.T) {
	req := types.ProductRequirements{
		PouchType: types.PouchThreeSideSeal,
		WidthMM:   80,
		HeightMM:  120,
		FilmStructure: types.FilmStructure{Layers: []types.Layer{
			{Material: types.MaterialPET, ThicknessMicron: 12},
			{Material: types.MaterialALFoil, ThicknessMicron: 9},
			{Material: types.MaterialLDPE, ThicknessMicron: 37.5},
		}},
		NumberOfColors:        4,
		CylinderCostPerUnit:   4500,
		Quantity:              types.ByCount{Pieces: 500000},
		MarginPercent:         30,
		WastagePercent:        5,
		LaborCostPerKg:        8,
		MachineUsageCostPerKg: 15,
	}

	bd := NewDefault().Compute(req)

	assertDecimal(t, "83.60", bd.TotalGSM, "total_gsm")
	assertDecimal(t, "196.66", bd.MaterialCostPerKg, "material_cost_per_kg")
	assertDecimal(t, "10.77", bd.InkCostPerKg, "ink_cost_per_kg")
	assertDecimal(t, "22", bd.LaminationCostPerKg, "lamination_cost_per_kg")
	assertDecimal(t, "105", bd.ConversionCostPerKg, "conversion_cost_per_kg")
	assertDecimal(t, "19.22", bd.CylinderCostAmortizedPerKg, "cylinder_cost_amortized_per_kg")
	assertDecimal(t, "348.23", bd.TotalCostPerKg, "total_cost_per_kg")
	assertDecimal(t, "652.11", bd.CostPer1000Pouches, "cost_per_1000_pouches")
	assertDecimal(t, "847.74", bd.SellingPricePer1000, "selling_price_per_1000")
	assertDecimal(t, "0.6521", bd.CostPerPouch, "cost_per_pouch")
	assertDecimal(t, "0.8477", bd.SellingPricePerPouch, "selling_price_per_pouch")
}

func TestComputeIsIdempotent(t *testing.T) {
	e := NewDefault()
	first := e.Compute(centerSealJob())
	second := e.Compute(centerSealJob())
	assert.Equal(t, first, second)
}

func TestComputeConcurrentCallsAgree(t *testing.T) {
	e := NewDefault()
	want := e.Compute(centerSealJob())

	var wg sync.WaitGroup
	results := make([]types.CostBreakdown, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := centerSealJob()
			req.NumberOfColors = i % 8
			results[i] = e.Compute(req)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, results[6])
	assert.Equal(t, results[6], results[14])
}

func TestComputeEmptyFilmStructure(t *testing.T) {
	req := centerSealJob()
	req.FilmStructure = types.FilmStructure{}
	req.NumberOfColors = 0

	bd := NewDefault().Compute(req)

	assert.True(t, bd.TotalGSM.IsZero())
	assert.True(t, bd.MaterialCostPerKg.IsZero())
	assert.True(t, bd.InkCostPerKg.IsZero())
	assert.True(t, bd.WeightPer1000PouchesKg.IsZero())
	assert.True(t, bd.CylinderCostAmortizedPerKg.IsZero())
	assert.True(t, bd.CostPerPouch.IsZero())
	assertDecimal(t, "12", bd.LaminationCostPerKg, "lamination_cost_per_kg")
}

func TestComputeEmptyFilmStructureWithInk(t *testing.T) {
	req := centerSealJob()
	req.FilmStructure = types.FilmStructure{}
	req.NumberOfColors = 2

	bd := NewDefault().Compute(req)

	// ink alone: 2*0.5+1 gsm, all of the material cost is ink
	assertDecimal(t, "2", bd.TotalGSM, "total_gsm")
	assertDecimal(t, "300", bd.InkCostPerKg, "ink_cost_per_kg")
	assertDecimal(t, "0", bd.MaterialCostPerKg, "material_cost_per_kg")
}

func TestComputeDegenerateInputsDoNotPanic(t *testing.T) {
	cases := map[string]func(*types.ProductRequirements){
		"zero dimensions":     func(r *types.ProductRequirements) { r.WidthMM, r.HeightMM = 0, 0 },
		"negative dimensions": func(r *types.ProductRequirements) { r.WidthMM, r.HeightMM = -10, -20 },
		"nan width":           func(r *types.ProductRequirements) { r.WidthMM = math.NaN() },
		"inf margin":          func(r *types.ProductRequirements) { r.MarginPercent = math.Inf(1) },
		"zero pieces":         func(r *types.ProductRequirements) { r.Quantity = types.ByCount{} },
		"negative kg":         func(r *types.ProductRequirements) { r.Quantity = types.ByWeight{Kg: -5} },
		"no quantity":         func(r *types.ProductRequirements) { r.Quantity = nil },
		"nan thickness": func(r *types.ProductRequirements) {
			r.FilmStructure.Layers = []types.Layer{{Material: "PET", ThicknessMicron: math.NaN()}}
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := centerSealJob()
			mutate(&req)
			require.NotPanics(t, func() { NewDefault().Compute(req) })
		})
	}
}

func TestComputeNoQuantityBasisSkipsAmortization(t *testing.T) {
	req := centerSealJob()
	req.Quantity = nil

	bd := NewDefault().Compute(req)

	assertDecimal(t, "27000", bd.CylinderCostTotal, "cylinder_cost_total")
	assert.True(t, bd.CylinderCostAmortizedPerKg.IsZero())
}

func TestQuantityBasisEquivalence(t *testing.T) {
	e := NewDefault()
	byCount := centerSealJob()
	est := e.Estimate(byCount)

	jobKg, _ := est.Pricing.WeightPerPouchG.Mul(decimal.NewFromInt(100000)).Div(decimal.NewFromInt(1000)).Float64()
	byWeight := centerSealJob()
	byWeight.Quantity = types.ByWeight{Kg: jobKg}

	a := est.Breakdown.CylinderCostAmortizedPerKg
	b := e.Compute(byWeight).CylinderCostAmortizedPerKg
	assert.True(t, a.Sub(b).Abs().LessThanOrEqual(decimal.RequireFromString("0.01")), "count %s vs weight %s", a, b)
}

func TestPrintingOverrideWins(t *testing.T) {
	e := NewDefault()
	for colors := 0; colors <= 10; colors++ {
		req := centerSealJob()
		req.NumberOfColors = colors
		req.PrintingCostPerKgOverride = floatPtr(42.5)
		assertDecimal(t, "42.5", e.Compute(req).PrintingCostPerKg, "printing_cost_per_kg")
	}
}

func TestLaminationOverrideWins(t *testing.T) {
	req := centerSealJob()
	req.LaminationCostPerKgOverride = floatPtr(0)

	bd := NewDefault().Compute(req)

	assert.True(t, bd.LaminationCostPerKg.IsZero())
	assertDecimal(t, "87", bd.ConversionCostPerKg, "conversion_cost_per_kg")
}

func TestColorsMonotonic(t *testing.T) {
	e := NewDefault()
	prev := e.Compute(withColors(0))
	for colors := 1; colors <= 10; colors++ {
		cur := e.Compute(withColors(colors))
		assert.True(t, cur.PrintingCostPerKg.GreaterThanOrEqual(prev.PrintingCostPerKg), "printing at %d", colors)
		assert.True(t, cur.InkCostPerKg.GreaterThanOrEqual(prev.InkCostPerKg), "ink at %d", colors)
		assert.True(t, cur.CylinderCostTotal.GreaterThanOrEqual(prev.CylinderCostTotal), "cylinders at %d", colors)
		prev = cur
	}
}

func withColors(n int) types.ProductRequirements {
	req := centerSealJob()
	req.NumberOfColors = n
	return req
}

func TestMarginMonotonic(t *testing.T) {
	e := NewDefault()
	var prev decimal.Decimal
	for i, margin := range []float64{0, 5, 12.5, 20, 45} {
		req := centerSealJob()
		req.MarginPercent = margin
		price := e.Compute(req).SellingPricePer1000
		if i > 0 {
			assert.True(t, price.GreaterThan(prev), "margin %v", margin)
		}
		prev = price
	}
}

func TestRateTableOverride(t *testing.T) {
	base := NewDefault().Compute(centerSealJob())

	tables := types.DefaultMaterialTables().WithRates(types.RateTable{"PET": 220})
	bd := Compute(centerSealJob(), &tables)

	// PET contributes 16.8 gsm * 110/1000 per sqm; doubling adds the same again
	assertDecimal(t, "136.19", bd.MaterialCostPerKg, "material_cost_per_kg")
	assert.True(t, bd.MaterialCostPerKg.GreaterThan(base.MaterialCostPerKg))
	assert.Equal(t, base.InkCostPerKg, bd.InkCostPerKg)

	unrelated := types.DefaultMaterialTables().WithRates(types.RateTable{"NYLON": 999})
	assert.Equal(t, base, Compute(centerSealJob(), &unrelated))
}

func TestComputeNilTablesUsesDefaults(t *testing.T) {
	assert.Equal(t, NewDefault().Compute(centerSealJob()), Compute(centerSealJob(), nil))
}

func TestEngineDoesNotMutateTables(t *testing.T) {
	tables := types.DefaultMaterialTables()
	e := New(tables)
	req := centerSealJob()
	req.FilmStructure.Layers = append(req.FilmStructure.Layers, types.Layer{Material: "KRAFT_X", ThicknessMicron: 30})

	e.Compute(req)

	assert.Equal(t, types.DefaultMaterialTables(), tables)
	_, ok := tables.Rates["KRAFT_X"]
	assert.False(t, ok)
}

func TestTablesAreNotShared(t *testing.T) {
	e := NewDefault()
	e.Tables().Rates[types.MaterialPET] = 999

	assertDecimal(t, "105.44", e.Compute(centerSealJob()).MaterialCostPerKg, "same engine after caller write")
	assertDecimal(t, "105.44", NewDefault().Compute(centerSealJob()).MaterialCostPerKg, "fresh default engine")
	assertDecimal(t, "105.44", Compute(centerSealJob(), nil).MaterialCostPerKg, "nil tables")
}

func TestNewCopiesCallerTables(t *testing.T) {
	tables := types.DefaultMaterialTables()
	e := New(tables)
	tables.Rates[types.MaterialPET] = 999

	assertDecimal(t, "105.44", e.Compute(centerSealJob()).MaterialCostPerKg, "material_cost_per_kg")
}

func TestExplicitZeroRateIsKept(t *testing.T) {
	tables := types.DefaultMaterialTables().WithRates(types.RateTable{types.MaterialPET: 0})
	bd := Compute(centerSealJob(), &tables)
	assert.True(t, bd.MaterialCostPerKg.LessThan(decimal.RequireFromString("105.44")))
}
