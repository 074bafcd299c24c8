// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"io"
	"sort"
	"sync"

	"pouch-cost/core/determinism"
	"pouch-cost/core/engine"
	"pouch-cost/core/scenario"
	"pouch-cost/core/summary"
	"pouch-cost/core/types"
	"pouch-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Result is everything one command produced. Sections left nil are not
// rendered.
type Result struct {
	// Jobs are individually priced jobs
	Jobs []JobResult `json:"jobs,omitempty"`

	// Sweep is a one-parameter what-if run
	Sweep *SweepResult `json:"sweep,omitempty"`

	// Comparison ranks several jobs by cost per pouch
	Comparison *scenario.Comparison `json:"comparison,omitempty"`

	// Summary aggregates a batch of jobs
	Summary *summary.Summary `json:"summary,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// JobResult is one priced job with the figures behind its breakdown
type JobResult struct {
	// Name identifies the job in output
	Name string `json:"name"`

	// Requirements is the job as priced, defaults filled in
	Requirements types.ProductRequirements `json:"requirements"`

	// Dimensions is the open film size of one pouch
	Dimensions types.OpenDimensions `json:"dimensions"`

	// Breakdown is the rounded cost breakdown
	Breakdown types.CostBreakdown `json:"breakdown"`

	// InputHash identifies the requirements for caching and audit
	InputHash string `json:"input_hash"`
}

// NewJobResult pairs a job with its estimate
func NewJobResult(name string, req types.ProductRequirements, est engine.Estimate) JobResult {
	hash, err := determinism.HashJSON(req)
	hex := ""
	if err == nil {
		hex = hash.Hex()
	}
	return JobResult{
		Name:         name,
		Requirements: req,
		Dimensions:   est.Dimensions,
		Breakdown:    est.Breakdown,
		InputHash:    hex,
	}
}

// SweepResult is a sweep over one parameter of a named job
type SweepResult struct {
	Job    string           `json:"job"`
	Param  scenario.Param   `json:"param"`
	Points []scenario.Point `json:"points"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the estimation was performed
	Timestamp string `json:"timestamp"`

	// Duration is how long the estimation took
	Duration string `json:"duration"`

	// Version is the tool version
	Version string `json:"version"`
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry returns a registry holding the built-in formatters
func NewRegistry(showDetails bool) *Registry {
	r := &Registry{formatters: make(map[Format]Formatter)}
	_ = r.Register(NewTableFormatter(showDetails))
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewMarkdownFormatter())
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.formatters[f.Format()]; exists {
		return errors.Newf(errors.TypeConfig, "formatter %q already registered", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format name
func (r *Registry) Get(name string) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[Format(name)]
	if !ok {
		return nil, errors.NotSupported("output format " + name)
	}
	return f, nil
}

// Formats returns the registered format names, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func quantityText(q types.Quantity) string {
	if q == nil {
		return "no quantity"
	}
	return q.String()
}
