package jobfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"pouch-cost/core/types"
	"pouch-cost/internal/errors"
)

// Format is a job file encoding
type Format string

const (
	FormatHCL  Format = "hcl"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf picks the encoding from a file extension, defaulting to JSON
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return FormatHCL
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Job is a named, validated job ready for the engine
type Job struct {
	Name         string
	Requirements types.ProductRequirements
}

// LoadFile reads every job in a file and resolves it against defaults
func LoadFile(path string, defaults types.ProcessDefaults) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Input(fmt.Sprintf("read job file %s: %v", path, err)).WithContext("file", path)
	}
	jobs, err := Decode(data, FormatOf(path), defaults)
	if err != nil {
		if e, ok := errors.As(err); ok {
			return nil, e.WithContext("file", path)
		}
		return nil, err
	}
	return jobs, nil
}

// Decode parses job specs in the given format and resolves them
func Decode(data []byte, format Format, defaults types.ProcessDefaults) ([]Job, error) {
	specs, err := Parse(data, format)
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(specs))
	for i := range specs {
		req, err := specs[i].Requirements(defaults)
		if err != nil {
			if e, ok := errors.As(err); ok {
				return nil, e.WithContext("job", specs[i].Label())
			}
			return nil, err
		}
		jobs = append(jobs, Job{Name: specs[i].Label(), Requirements: req})
	}
	return jobs, nil
}

// Parse decodes job specs without validating them. JSON and YAML accept
// a single object or a list; HCL takes one or more labelled job blocks.
func Parse(data []byte, format Format) ([]Spec, error) {
	var (
		specs []Spec
		err   error
	)
	switch format {
	case FormatHCL:
		specs, err = parseHCL(data)
	case FormatYAML:
		specs, err = parseYAML(data)
	default:
		specs, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, errors.Input("job file contains no jobs")
	}
	return specs, nil
}

func parseJSON(data []byte) ([]Spec, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.Input("job file is empty")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.DisallowUnknownFields()

	if trimmed[0] == '[' {
		var specs []Spec
		if err := dec.Decode(&specs); err != nil {
			return nil, errors.Parsing("decode JSON jobs", err)
		}
		return specs, nil
	}

	var spec Spec
	if err := dec.Decode(&spec); err != nil {
		return nil, errors.Parsing("decode JSON job", err)
	}
	return []Spec{spec}, nil
}

func parseYAML(data []byte) ([]Spec, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, errors.Parsing("decode YAML jobs", err)
	}
	if len(root.Content) == 0 {
		return nil, errors.Input("job file is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if root.Content[0].Kind == yaml.SequenceNode {
		var specs []Spec
		if err := dec.Decode(&specs); err != nil && err != io.EOF {
			return nil, errors.Parsing("decode YAML jobs", err)
		}
		return specs, nil
	}

	var spec Spec
	if err := dec.Decode(&spec); err != nil && err != io.EOF {
		return nil, errors.Parsing("decode YAML job", err)
	}
	return []Spec{spec}, nil
}

// hclFile is the body of a .hcl job file
type hclFile struct {
	Jobs []hclJob `hcl:"job,block"`
}

type hclJob struct {
	Name       string `hcl:"name,label"`
	ClientName string `hcl:"client_name,optional"`

	PouchType string      `hcl:"pouch_type"`
	WidthMM   float64     `hcl:"width_mm"`
	HeightMM  float64     `hcl:"height_mm"`
	GussetMM  float64     `hcl:"gusset_mm,optional"`
	Layers    []LayerSpec `hcl:"layer,block"`

	NumberOfColors      int      `hcl:"number_of_colors,optional"`
	PrintingMethod      string   `hcl:"printing_method,optional"`
	CylinderCostPerUnit *float64 `hcl:"cylinder_cost_per_unit,optional"`

	QuantityKg     *float64 `hcl:"quantity_kg,optional"`
	QuantityPieces *int64   `hcl:"quantity_pieces,optional"`

	MarginPercent         *float64 `hcl:"margin_percent,optional"`
	WastagePercent        *float64 `hcl:"wastage_percent,optional"`
	LaborCostPerKg        *float64 `hcl:"labor_cost_per_kg,optional"`
	MachineUsageCostPerKg *float64 `hcl:"machine_usage_cost_per_kg,optional"`

	PrintingCostPerKgOverride   *float64 `hcl:"printing_cost_per_kg_override,optional"`
	LaminationCostPerKgOverride *float64 `hcl:"lamination_cost_per_kg_override,optional"`
}

func (j hclJob) spec() Spec {
	return Spec{
		Name:                        j.Name,
		ClientName:                  j.ClientName,
		PouchType:                   j.PouchType,
		WidthMM:                     j.WidthMM,
		HeightMM:                    j.HeightMM,
		GussetMM:                    j.GussetMM,
		FilmStructure:               FilmSpec{Layers: j.Layers},
		NumberOfColors:              j.NumberOfColors,
		PrintingMethod:              j.PrintingMethod,
		CylinderCostPerUnit:         j.CylinderCostPerUnit,
		QuantityKg:                  j.QuantityKg,
		QuantityPieces:              j.QuantityPieces,
		MarginPercent:               j.MarginPercent,
		WastagePercent:              j.WastagePercent,
		LaborCostPerKg:              j.LaborCostPerKg,
		MachineUsageCostPerKg:       j.MachineUsageCostPerKg,
		PrintingCostPerKgOverride:   j.PrintingCostPerKgOverride,
		LaminationCostPerKgOverride: j.LaminationCostPerKgOverride,
	}
}

func parseHCL(data []byte) ([]Spec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, "job.hcl")
	if diags.HasErrors() {
		return nil, diagError("parse HCL jobs", diags)
	}

	var body hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &body); diags.HasErrors() {
		return nil, diagError("decode HCL jobs", diags)
	}

	specs := make([]Spec, len(body.Jobs))
	for i, j := range body.Jobs {
		specs[i] = j.spec()
	}
	return specs, nil
}

// diagError keeps the first error diagnostic with its line
func diagError(op string, diags hcl.Diagnostics) error {
	for _, diag := range diags {
		if diag.Severity != hcl.DiagError {
			continue
		}
		line := 0
		if diag.Subject != nil {
			line = diag.Subject.Start.Line
		}
		return errors.Parsing(op, diags).
			WithContext("line", line).
			WithContext("detail", diag.Summary+": "+diag.Detail)
	}
	return errors.Parsing(op, diags)
}
