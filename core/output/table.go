package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"pouch-cost/core/summary"
)

const (
	labelWidth = 34
	valueWidth = 14
)

// TableFormatter renders a boxed breakdown per job for the terminal
type TableFormatter struct {
	showDetails bool

	title   lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	total   lipgloss.Style
	muted   lipgloss.Style
	box     lipgloss.Style
}

// NewTableFormatter creates the CLI formatter. With showDetails the open
// size, GSM and weight lines are included.
func NewTableFormatter(showDetails bool) *TableFormatter {
	return &TableFormatter{
		showDetails: showDetails,
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#66FF66")),
		section:     lipgloss.NewStyle().Bold(true).Underline(true),
		label:       lipgloss.NewStyle().Width(labelWidth),
		value:       lipgloss.NewStyle().Width(valueWidth).Align(lipgloss.Right),
		total:       lipgloss.NewStyle().Bold(true).Width(valueWidth).Align(lipgloss.Right),
		muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#00AA00")).
			Padding(0, 1),
	}
}

// Format returns FormatCLI
func (f *TableFormatter) Format() Format {
	return FormatCLI
}

// Render writes every section present in result
func (f *TableFormatter) Render(w io.Writer, result *Result) error {
	var blocks []string
	for _, job := range result.Jobs {
		blocks = append(blocks, f.box.Render(f.job(job)))
	}
	if result.Sweep != nil {
		blocks = append(blocks, f.box.Render(f.sweep(result.Sweep)))
	}
	if result.Comparison != nil {
		blocks = append(blocks, f.box.Render(f.comparison(result)))
	}
	if result.Summary != nil {
		blocks = append(blocks, f.box.Render(f.summary(result.Summary)))
	}
	if result.Metadata.Duration != "" {
		blocks = append(blocks, f.muted.Render(fmt.Sprintf("computed in %s", result.Metadata.Duration)))
	}

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

func (f *TableFormatter) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, f.label.Render(label), f.value.Render(value))
}

func (f *TableFormatter) totalRow(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, f.label.Render(label), f.total.Render(value))
}

func (f *TableFormatter) job(job JobResult) string {
	req := job.Requirements
	bd := job.Breakdown

	lines := []string{
		f.title.Render(strings.ToUpper(job.Name)),
		f.muted.Render(fmt.Sprintf("%s  %gx%g mm  %d colors  %s",
			req.PouchType.Label(), req.WidthMM, req.HeightMM, req.NumberOfColors, quantityText(req.Quantity))),
		"",
	}

	if f.showDetails {
		lines = append(lines,
			f.section.Render("Film"),
			f.row("Open size (mm)", fmt.Sprintf("%s x %s", job.Dimensions.OpenWidthMM, job.Dimensions.CutLengthMM)),
			f.row("Total thickness (micron)", bd.TotalThickness.String()),
			f.row("Total GSM", money(bd.TotalGSM)),
			f.row("Weight per pouch (g)", money(bd.WeightPerPouchG)),
			"",
		)
	}

	lines = append(lines,
		f.section.Render("Cost per kg"),
		f.row("Material", money(bd.MaterialCostPerKg)),
		f.row("Ink", money(bd.InkCostPerKg)),
		f.row("Printing", money(bd.PrintingCostPerKg)),
		f.row("Lamination", money(bd.LaminationCostPerKg)),
		f.row("Pouching", money(bd.PouchingCostPerKg)),
		f.row("Overheads (incl. slitting)", money(bd.OverheadCostPerKg)),
		f.row("Labor", money(bd.LaborCostPerKg)),
		f.row("Machine usage", money(bd.MachineUsageCostPerKg)),
		f.row("Cylinders (amortized)", money(bd.CylinderCostAmortizedPerKg)),
		f.row("Wastage", money(bd.WastageCostPerKg)),
		f.totalRow("Total cost per kg", money(bd.TotalCostPerKg)),
		"",
		f.section.Render("Price"),
		f.row("Cylinder set", money(bd.CylinderCostTotal)),
		f.row("Cost per 1000 pouches", money(bd.CostPer1000Pouches)),
		f.totalRow(fmt.Sprintf("Price per 1000 (%s%% margin)", bd.MarginPercent), money(bd.SellingPricePer1000)),
		f.row("Cost per pouch", perPouch(bd.CostPerPouch)),
		f.totalRow("Price per pouch", perPouch(bd.SellingPricePerPouch)),
	)
	return strings.Join(lines, "\n")
}

func (f *TableFormatter) sweep(s *SweepResult) string {
	lines := []string{
		f.title.Render(fmt.Sprintf("SWEEP %s: %s", strings.ToUpper(string(s.Param)), s.Job)),
		"",
		f.section.Render(fmt.Sprintf("%-12s %14s %14s %14s", string(s.Param), "cost/kg", "price/1000", "price/pouch")),
	}
	for _, p := range s.Points {
		lines = append(lines, fmt.Sprintf("%-12g %14s %14s %14s",
			p.Value,
			money(p.Breakdown.TotalCostPerKg),
			money(p.Breakdown.SellingPricePer1000),
			perPouch(p.Breakdown.SellingPricePerPouch)))
	}
	return strings.Join(lines, "\n")
}

func (f *TableFormatter) comparison(result *Result) string {
	c := result.Comparison
	lines := []string{
		f.title.Render("COMPARISON"),
		"",
		f.section.Render(fmt.Sprintf("%-24s %14s %14s %14s", "job", "cost/kg", "cost/pouch", "price/pouch")),
	}
	for _, e := range c.Entries {
		marker := ""
		if e.Name == c.Cheapest {
			marker = " *"
		}
		lines = append(lines, fmt.Sprintf("%-24s %14s %14s %14s%s",
			truncate(e.Name, 24),
			money(e.Breakdown.TotalCostPerKg),
			perPouch(e.Breakdown.CostPerPouch),
			perPouch(e.Breakdown.SellingPricePerPouch),
			marker))
	}
	lines = append(lines, "", f.muted.Render("* cheapest per pouch: "+c.Cheapest))
	return strings.Join(lines, "\n")
}

func (f *TableFormatter) summary(s *summary.Summary) string {
	d := s.CostDistribution
	lines := []string{
		f.title.Render("SUMMARY"),
		"",
		f.row("Jobs", fmt.Sprintf("%d", s.TotalJobs)),
		f.row("Average margin (%)", s.AvgMargin.StringFixed(1)),
		f.row("Total price per 1000", money(s.TotalRevenue)),
		f.row("Average cost per kg", money(s.AvgCostPerKg)),
		f.row("Popular pouch type", s.PopularPouchType),
		f.row("Popular material", s.PopularMaterial),
		"",
		f.section.Render("Average cost per kg"),
		f.row("Material", money(d.Material)),
		f.row("Ink", money(d.Ink)),
		f.row("Printing", money(d.Printing)),
		f.row("Lamination", money(d.Lamination)),
		f.row("Pouching", money(d.Pouching)),
		f.row("Overhead", money(d.Overhead)),
		f.row("Cylinder", money(d.Cylinder)),
	}
	return strings.Join(lines, "\n")
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func perPouch(d decimal.Decimal) string {
	return d.StringFixed(4)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
