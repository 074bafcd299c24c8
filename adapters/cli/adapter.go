// Package cli provides the thin adapter between cobra commands and the core
// packages. It handles input/output only - all logic is in the engine.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"pouch-cost/adapters/jobfile"
	"pouch-cost/core/engine"
	"pouch-cost/core/output"
	"pouch-cost/core/presets"
	"pouch-cost/core/scenario"
	"pouch-cost/core/summary"
	"pouch-cost/core/types"
	"pouch-cost/internal/config"
	"pouch-cost/internal/errors"
	"pouch-cost/internal/logging"
)

// CLIAdapter is a THIN wrapper around the core engine.
type CLIAdapter struct {
	engine     *engine.Engine
	defaults   types.ProcessDefaults
	formatters *output.Registry
	workers    int
	version    string

	output io.Writer
	format string
}

// NewCLIAdapter creates an adapter pricing against cfg's tables and defaults
func NewCLIAdapter(cfg *config.Config, version string) *CLIAdapter {
	return &CLIAdapter{
		engine:     engine.New(cfg.Tables()),
		defaults:   cfg.Defaults,
		formatters: output.NewRegistry(cfg.Output.ShowDetails),
		workers:    cfg.Server.SweepWorkers,
		version:    version,
		output:     os.Stdout,
		format:     cfg.Output.DefaultFormat,
	}
}

// SetOutput sets the output writer
func (a *CLIAdapter) SetOutput(w io.Writer) {
	a.output = w
}

// SetFormat sets the output format
func (a *CLIAdapter) SetFormat(f string) {
	if f != "" {
		a.format = f
	}
}

// Sources names where jobs come from: job files, preset ids, or both
type Sources struct {
	Files   []string
	Presets []string
}

// Load resolves every job in files then presets, in argument order
func (a *CLIAdapter) Load(src Sources) ([]jobfile.Job, error) {
	var jobs []jobfile.Job
	for _, path := range src.Files {
		loaded, err := jobfile.LoadFile(path, a.defaults)
		if err != nil {
			return nil, err
		}
		logging.Debug("loaded job file", zap.String("file", path), zap.Int("jobs", len(loaded)))
		jobs = append(jobs, loaded...)
	}
	for _, id := range src.Presets {
		p, err := presets.Get(id)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, jobfile.Job{Name: p.ID, Requirements: p.Requirements(a.defaults)})
	}
	if len(jobs) == 0 {
		return nil, errors.Input("no jobs given: pass a job file or --preset")
	}
	return jobs, nil
}

// Estimate prices every job and renders one section per job
func (a *CLIAdapter) Estimate(ctx context.Context, src Sources) error {
	start := time.Now()
	jobs, err := a.Load(src)
	if err != nil {
		return err
	}

	result := &output.Result{}
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		est := a.engine.Estimate(job.Requirements)
		logging.Debug("estimated", logging.JobFields(job.Requirements)...)
		result.Jobs = append(result.Jobs, output.NewJobResult(job.Name, job.Requirements, est))
	}

	return a.render(result, start)
}

// Sweep varies one parameter of the first job in src
func (a *CLIAdapter) Sweep(ctx context.Context, src Sources, param string, values []float64) error {
	start := time.Now()
	p, err := scenario.ParseParam(param)
	if err != nil {
		return err
	}
	jobs, err := a.Load(src)
	if err != nil {
		return err
	}
	base := jobs[0]

	points, err := scenario.Sweep(ctx, a.engine, base.Requirements, p, values, a.workers)
	if err != nil {
		return err
	}

	return a.render(&output.Result{
		Sweep: &output.SweepResult{Job: base.Name, Param: p, Points: points},
	}, start)
}

// Compare prices every job in src and marks the cheapest per pouch
func (a *CLIAdapter) Compare(ctx context.Context, src Sources) error {
	start := time.Now()
	jobs, err := a.Load(src)
	if err != nil {
		return err
	}

	cmp, err := scenario.Compare(ctx, a.engine, named(jobs), a.workers)
	if err != nil {
		return err
	}
	return a.render(&output.Result{Comparison: &cmp}, start)
}

// Summary aggregates every job in src
func (a *CLIAdapter) Summary(ctx context.Context, src Sources) error {
	start := time.Now()
	jobs, err := a.Load(src)
	if err != nil {
		return err
	}

	entries := make([]summary.Entry, len(jobs))
	for i, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}
		entries[i] = summary.Entry{Requirements: job.Requirements, Breakdown: a.engine.Compute(job.Requirements)}
	}

	s := summary.Summarize(entries)
	return a.render(&output.Result{Summary: &s}, start)
}

// ListPresets prints the preset catalogue
func (a *CLIAdapter) ListPresets() error {
	list := presets.List()
	if a.format == string(output.FormatJSON) {
		return a.writeJSON(list)
	}

	tw := tabwriter.NewWriter(a.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPOUCH\tSIZE (mm)\tLAYERS\tCOLORS\tQUANTITY")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%gx%g\t%d\t%d\t%d pcs\n",
			p.ID, p.Name, p.PouchType.Label(), p.WidthMM, p.HeightMM,
			len(p.FilmStructure.Layers), p.NumberOfColors, p.QuantityPieces)
	}
	return tw.Flush()
}

// ListRates prints the material tables the engine prices against
func (a *CLIAdapter) ListRates() error {
	tables := a.engine.Tables()
	if a.format == string(output.FormatJSON) {
		return a.writeJSON(tables)
	}

	tw := tabwriter.NewWriter(a.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tRATE / KG\tDENSITY (g/cm3)")
	for _, m := range tables.Materials() {
		fmt.Fprintf(tw, "%s\t%g\t%g\n", m, tables.Rate(m), tables.Density(m))
	}
	fmt.Fprintf(tw, "(other)\t%g\t%g\n", types.DefaultMaterialRate, types.DefaultMaterialDensity)
	return tw.Flush()
}

func (a *CLIAdapter) render(result *output.Result, start time.Time) error {
	f, err := a.formatters.Get(a.format)
	if err != nil {
		return err
	}
	result.Metadata = output.Metadata{
		Timestamp: start.UTC().Format(time.RFC3339),
		Duration:  time.Since(start).Round(time.Microsecond).String(),
		Version:   a.version,
	}
	return f.Render(a.output, result)
}

func (a *CLIAdapter) writeJSON(v interface{}) error {
	encoder := json.NewEncoder(a.output)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func named(jobs []jobfile.Job) []scenario.Named {
	out := make([]scenario.Named, len(jobs))
	for i, j := range jobs {
		out[i] = scenario.Named{Name: j.Name, Requirements: j.Requirements}
	}
	return out
}
