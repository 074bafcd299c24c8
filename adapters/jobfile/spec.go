// Package jobfile reads pouch job specifications from HCL, JSON and YAML
// and turns them into engine requirements.
package jobfile

import (
	"pouch-cost/core/types"
)

// LayerSpec is one film layer as written in a job file
type LayerSpec struct {
	Material        string  `json:"material" yaml:"material" hcl:"material" validate:"required"`
	ThicknessMicron float64 `json:"thickness_micron" yaml:"thickness_micron" hcl:"thickness_micron" validate:"gt=0"`
}

// FilmSpec is the laminate as written in a job file
type FilmSpec struct {
	Layers []LayerSpec `json:"layers" yaml:"layers" validate:"required,min=1,dive"`
}

// Spec is the wire form of a job: the field names of the
// quotation payloads, with process assumptions optional.
type Spec struct {
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	ClientName string `json:"client_name,omitempty" yaml:"client_name,omitempty"`

	PouchType string  `json:"pouch_type" yaml:"pouch_type" validate:"required,pouch_type"`
	WidthMM   float64 `json:"width_mm" yaml:"width_mm" validate:"gt=0"`
	HeightMM  float64 `json:"height_mm" yaml:"height_mm" validate:"gt=0"`
	GussetMM  float64 `json:"gusset_mm" yaml:"gusset_mm" validate:"gte=0"`

	FilmStructure FilmSpec `json:"film_structure" yaml:"film_structure"`

	NumberOfColors      int      `json:"number_of_colors" yaml:"number_of_colors" validate:"gte=0,lte=10"`
	PrintingMethod      string   `json:"printing_method,omitempty" yaml:"printing_method,omitempty" validate:"omitempty,oneof=ROTOGRAVURE FLEXO"`
	CylinderCostPerUnit *float64 `json:"cylinder_cost_per_unit,omitempty" yaml:"cylinder_cost_per_unit,omitempty" validate:"omitempty,gte=0"`

	QuantityKg     *float64 `json:"quantity_kg,omitempty" yaml:"quantity_kg,omitempty" validate:"required_without=QuantityPieces,excluded_with=QuantityPieces,omitempty,gt=0"`
	QuantityPieces *int64   `json:"quantity_pieces,omitempty" yaml:"quantity_pieces,omitempty" validate:"required_without=QuantityKg,excluded_with=QuantityKg,omitempty,gt=0"`

	MarginPercent         *float64 `json:"margin_percent,omitempty" yaml:"margin_percent,omitempty" validate:"omitempty,gte=0"`
	WastagePercent        *float64 `json:"wastage_percent,omitempty" yaml:"wastage_percent,omitempty" validate:"omitempty,gte=0"`
	LaborCostPerKg        *float64 `json:"labor_cost_per_kg,omitempty" yaml:"labor_cost_per_kg,omitempty" validate:"omitempty,gte=0"`
	MachineUsageCostPerKg *float64 `json:"machine_usage_cost_per_kg,omitempty" yaml:"machine_usage_cost_per_kg,omitempty" validate:"omitempty,gte=0"`

	PrintingCostPerKgOverride   *float64 `json:"printing_cost_per_kg_override,omitempty" yaml:"printing_cost_per_kg_override,omitempty" validate:"omitempty,gte=0"`
	LaminationCostPerKgOverride *float64 `json:"lamination_cost_per_kg_override,omitempty" yaml:"lamination_cost_per_kg_override,omitempty" validate:"omitempty,gte=0"`
}

// Label names the job for output: Name, else ClientName, else the pouch type
func (s *Spec) Label() string {
	switch {
	case s.Name != "":
		return s.Name
	case s.ClientName != "":
		return s.ClientName
	default:
		return s.PouchType
	}
}

// Requirements validates the spec and converts it into engine input,
// filling omitted process assumptions from defaults.
func (s *Spec) Requirements(defaults types.ProcessDefaults) (types.ProductRequirements, error) {
	if err := Validate(s); err != nil {
		return types.ProductRequirements{}, err
	}

	layers := make([]types.Layer, len(s.FilmStructure.Layers))
	for i, l := range s.FilmStructure.Layers {
		layers[i] = types.Layer{
			Material:        types.NormalizeMaterial(l.Material),
			ThicknessMicron: l.ThicknessMicron,
		}
	}

	method := types.PrintingMethod(s.PrintingMethod)
	if method == "" {
		method = defaults.PrintingMethod
	}

	req := types.ProductRequirements{
		PouchType:                   types.PouchType(s.PouchType),
		WidthMM:                     s.WidthMM,
		HeightMM:                    s.HeightMM,
		GussetMM:                    s.GussetMM,
		FilmStructure:               types.FilmStructure{Layers: layers},
		NumberOfColors:              s.NumberOfColors,
		PrintingMethod:              method,
		CylinderCostPerUnit:         orDefault(s.CylinderCostPerUnit, defaults.CylinderCostPerUnit),
		MarginPercent:               orDefault(s.MarginPercent, defaults.MarginPercent),
		WastagePercent:              orDefault(s.WastagePercent, defaults.WastagePercent),
		LaborCostPerKg:              orDefault(s.LaborCostPerKg, defaults.LaborCostPerKg),
		MachineUsageCostPerKg:       orDefault(s.MachineUsageCostPerKg, defaults.MachineUsageCostPerKg),
		PrintingCostPerKgOverride:   copyPtr(s.PrintingCostPerKgOverride),
		LaminationCostPerKgOverride: copyPtr(s.LaminationCostPerKgOverride),
	}

	switch {
	case s.QuantityKg != nil:
		req.Quantity = types.ByWeight{Kg: *s.QuantityKg}
	case s.QuantityPieces != nil:
		req.Quantity = types.ByCount{Pieces: *s.QuantityPieces}
	}

	return req, nil
}

// FromRequirements is the inverse of Requirements, used to echo jobs back
func FromRequirements(name string, req types.ProductRequirements) Spec {
	layers := make([]LayerSpec, len(req.FilmStructure.Layers))
	for i, l := range req.FilmStructure.Layers {
		layers[i] = LayerSpec{Material: l.Material, ThicknessMicron: l.ThicknessMicron}
	}

	s := Spec{
		Name:                        name,
		PouchType:                   string(req.PouchType),
		WidthMM:                     req.WidthMM,
		HeightMM:                    req.HeightMM,
		GussetMM:                    req.GussetMM,
		FilmStructure:               FilmSpec{Layers: layers},
		NumberOfColors:              req.NumberOfColors,
		PrintingMethod:              string(req.PrintingMethod),
		CylinderCostPerUnit:         ptr(req.CylinderCostPerUnit),
		MarginPercent:               ptr(req.MarginPercent),
		WastagePercent:              ptr(req.WastagePercent),
		LaborCostPerKg:              ptr(req.LaborCostPerKg),
		MachineUsageCostPerKg:       ptr(req.MachineUsageCostPerKg),
		PrintingCostPerKgOverride:   copyPtr(req.PrintingCostPerKgOverride),
		LaminationCostPerKgOverride: copyPtr(req.LaminationCostPerKgOverride),
	}
	switch q := req.Quantity.(type) {
	case types.ByWeight:
		s.QuantityKg = ptr(q.Kg)
	case types.ByCount:
		pieces := q.Pieces
		s.QuantityPieces = &pieces
	}
	return s
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func ptr(v float64) *float64 {
	return &v
}

func copyPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
