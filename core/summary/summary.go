// Package summary - Batch statistics over a set of priced jobs
package summary

import (
	"github.com/shopspring/decimal"

	"pouch-cost/core/determinism"
	"pouch-cost/core/types"
)

// NotAvailable fills popularity fields when there is nothing to count
const NotAvailable = "N/A"

// Entry is one priced job
type Entry struct {
	Requirements types.ProductRequirements
	Breakdown    types.CostBreakdown
}

// CostDistribution is the average of each per-kg component
type CostDistribution struct {
	Material   decimal.Decimal `json:"material"`
	Ink        decimal.Decimal `json:"ink"`
	Printing   decimal.Decimal `json:"printing"`
	Lamination decimal.Decimal `json:"lamination"`
	Pouching   decimal.Decimal `json:"pouching"`
	Overhead   decimal.Decimal `json:"overhead"`
	Cylinder   decimal.Decimal `json:"cylinder"`
}

// Summary describes a batch of estimates
type Summary struct {
	TotalJobs        int              `json:"total_jobs"`
	AvgMargin        decimal.Decimal  `json:"avg_margin"`
	TotalRevenue     decimal.Decimal  `json:"total_revenue"`
	AvgCostPerKg     decimal.Decimal  `json:"avg_cost_per_kg"`
	PopularPouchType string           `json:"popular_pouch_type"`
	PopularMaterial  string           `json:"popular_material"`
	MaterialUsage    map[string]int   `json:"material_usage"`
	PouchTypeUsage   map[string]int   `json:"pouch_type_usage"`
	CostDistribution CostDistribution `json:"cost_distribution"`
}

// Summarize aggregates entries. TotalRevenue sums selling price per 1000
// pouches; material usage counts layers, so a laminate with two PET plies
// counts PET twice.
func Summarize(entries []Entry) Summary {
	s := Summary{
		AvgMargin:        decimal.Zero,
		TotalRevenue:     decimal.Zero,
		AvgCostPerKg:     decimal.Zero,
		PopularPouchType: NotAvailable,
		PopularMaterial:  NotAvailable,
		MaterialUsage:    map[string]int{},
		PouchTypeUsage:   map[string]int{},
		CostDistribution: CostDistribution{
			Material:   decimal.Zero,
			Ink:        decimal.Zero,
			Printing:   decimal.Zero,
			Lamination: decimal.Zero,
			Pouching:   decimal.Zero,
			Overhead:   decimal.Zero,
			Cylinder:   decimal.Zero,
		},
	}
	if len(entries) == 0 {
		return s
	}

	var margin, revenue, costPerKg decimal.Decimal
	var dist CostDistribution
	for _, e := range entries {
		bd := e.Breakdown
		margin = margin.Add(bd.MarginPercent)
		revenue = revenue.Add(bd.SellingPricePer1000)
		costPerKg = costPerKg.Add(bd.TotalCostPerKg)

		dist.Material = dist.Material.Add(bd.MaterialCostPerKg)
		dist.Ink = dist.Ink.Add(bd.InkCostPerKg)
		dist.Printing = dist.Printing.Add(bd.PrintingCostPerKg)
		dist.Lamination = dist.Lamination.Add(bd.LaminationCostPerKg)
		dist.Pouching = dist.Pouching.Add(bd.PouchingCostPerKg)
		dist.Overhead = dist.Overhead.Add(bd.OverheadCostPerKg)
		dist.Cylinder = dist.Cylinder.Add(bd.CylinderCostAmortizedPerKg)

		s.PouchTypeUsage[string(e.Requirements.PouchType)]++
		for _, l := range e.Requirements.FilmStructure.Layers {
			s.MaterialUsage[l.Material]++
		}
	}

	n := decimal.NewFromInt(int64(len(entries)))
	avg := func(sum decimal.Decimal) decimal.Decimal {
		return determinism.Round2(sum.Div(n))
	}

	s.TotalJobs = len(entries)
	s.AvgMargin = margin.Div(n).Round(1)
	s.TotalRevenue = determinism.Round2(revenue)
	s.AvgCostPerKg = avg(costPerKg)
	s.CostDistribution = CostDistribution{
		Material:   avg(dist.Material),
		Ink:        avg(dist.Ink),
		Printing:   avg(dist.Printing),
		Lamination: avg(dist.Lamination),
		Pouching:   avg(dist.Pouching),
		Overhead:   avg(dist.Overhead),
		Cylinder:   avg(dist.Cylinder),
	}

	if top := mostCommon(s.PouchTypeUsage); top != "" {
		s.PopularPouchType = types.PouchType(top).Label()
	}
	if top := mostCommon(s.MaterialUsage); top != "" {
		s.PopularMaterial = top
	}
	return s
}

// mostCommon returns the highest count, breaking ties alphabetically
func mostCommon(counts map[string]int) string {
	best, bestCount := "", 0
	for _, k := range determinism.SortedKeys(counts) {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}
