package output

import (
	"fmt"
	"io"
	"strings"
)

// MarkdownFormatter renders tables suited to PR comments and quotes
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates the markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes every section present in result
func (f *MarkdownFormatter) Render(w io.Writer, result *Result) error {
	var b strings.Builder

	b.WriteString("# Pouch Cost Estimate\n\n")

	for _, job := range result.Jobs {
		req := job.Requirements
		bd := job.Breakdown

		fmt.Fprintf(&b, "## %s\n\n", job.Name)
		fmt.Fprintf(&b, "%s, %gx%g mm, %d colors, %s\n\n",
			req.PouchType.Label(), req.WidthMM, req.HeightMM, req.NumberOfColors, quantityText(req.Quantity))

		b.WriteString("| Item | Value |\n")
		b.WriteString("|------|------:|\n")
		rows := [][2]string{
			{"Open size (mm)", fmt.Sprintf("%s x %s", job.Dimensions.OpenWidthMM, job.Dimensions.CutLengthMM)},
			{"Total GSM", money(bd.TotalGSM)},
			{"Weight per pouch (g)", money(bd.WeightPerPouchG)},
			{"Material / kg", money(bd.MaterialCostPerKg)},
			{"Ink / kg", money(bd.InkCostPerKg)},
			{"Printing / kg", money(bd.PrintingCostPerKg)},
			{"Lamination / kg", money(bd.LaminationCostPerKg)},
			{"Pouching / kg", money(bd.PouchingCostPerKg)},
			{"Overheads / kg", money(bd.OverheadCostPerKg)},
			{"Labor / kg", money(bd.LaborCostPerKg)},
			{"Machine usage / kg", money(bd.MachineUsageCostPerKg)},
			{"Cylinders / kg", money(bd.CylinderCostAmortizedPerKg)},
			{"Wastage / kg", money(bd.WastageCostPerKg)},
			{"**Total cost / kg**", "**" + money(bd.TotalCostPerKg) + "**"},
			{"Cost / 1000 pouches", money(bd.CostPer1000Pouches)},
			{"**Price / 1000 pouches**", "**" + money(bd.SellingPricePer1000) + "**"},
			{"Cost / pouch", perPouch(bd.CostPerPouch)},
			{"Price / pouch", perPouch(bd.SellingPricePerPouch)},
		}
		for _, r := range rows {
			fmt.Fprintf(&b, "| %s | %s |\n", r[0], r[1])
		}
		b.WriteString("\n")
	}

	if s := result.Sweep; s != nil {
		fmt.Fprintf(&b, "## Sweep: %s (%s)\n\n", s.Param, s.Job)
		fmt.Fprintf(&b, "| %s | Cost / kg | Price / 1000 | Price / pouch |\n", s.Param)
		b.WriteString("|---:|---:|---:|---:|\n")
		for _, p := range s.Points {
			fmt.Fprintf(&b, "| %g | %s | %s | %s |\n", p.Value,
				money(p.Breakdown.TotalCostPerKg),
				money(p.Breakdown.SellingPricePer1000),
				perPouch(p.Breakdown.SellingPricePerPouch))
		}
		b.WriteString("\n")
	}

	if c := result.Comparison; c != nil {
		b.WriteString("## Comparison\n\n")
		b.WriteString("| Job | Cost / kg | Cost / pouch | Price / pouch |\n")
		b.WriteString("|-----|---:|---:|---:|\n")
		for _, e := range c.Entries {
			name := e.Name
			if name == c.Cheapest {
				name = "**" + name + "**"
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", name,
				money(e.Breakdown.TotalCostPerKg),
				perPouch(e.Breakdown.CostPerPouch),
				perPouch(e.Breakdown.SellingPricePerPouch))
		}
		fmt.Fprintf(&b, "\nCheapest per pouch: **%s**\n\n", c.Cheapest)
	}

	if s := result.Summary; s != nil {
		d := s.CostDistribution
		b.WriteString("## Summary\n\n")
		b.WriteString("| Metric | Value |\n")
		b.WriteString("|--------|------:|\n")
		fmt.Fprintf(&b, "| Jobs | %d |\n", s.TotalJobs)
		fmt.Fprintf(&b, "| Average margin (%%) | %s |\n", s.AvgMargin.StringFixed(1))
		fmt.Fprintf(&b, "| Total price / 1000 | %s |\n", money(s.TotalRevenue))
		fmt.Fprintf(&b, "| Average cost / kg | %s |\n", money(s.AvgCostPerKg))
		fmt.Fprintf(&b, "| Popular pouch type | %s |\n", s.PopularPouchType)
		fmt.Fprintf(&b, "| Popular material | %s |\n", s.PopularMaterial)
		fmt.Fprintf(&b, "| Avg material / ink / printing | %s / %s / %s |\n", money(d.Material), money(d.Ink), money(d.Printing))
		fmt.Fprintf(&b, "| Avg lamination / pouching / overhead | %s / %s / %s |\n", money(d.Lamination), money(d.Pouching), money(d.Overhead))
		fmt.Fprintf(&b, "| Avg cylinder | %s |\n", money(d.Cylinder))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
