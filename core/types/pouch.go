// Package types - Pouch job types
package types

import (
	"encoding/json"
	"strings"
)

// PouchType is the seal/fold geometry of the finished package
type PouchType string

const (
	PouchCenterSeal    PouchType = "CENTER_SEAL"
	PouchThreeSideSeal PouchType = "THREE_SIDE_SEAL"
	PouchStandUp       PouchType = "STAND_UP_POUCH"
	PouchStandUpZipper PouchType = "STAND_UP_ZIPPER"
	PouchSideGusset    PouchType = "SIDE_GUSSET"
)

// PouchTypes returns every known pouch type in declaration order
func PouchTypes() []PouchType {
	return []PouchType{
		PouchCenterSeal,
		PouchThreeSideSeal,
		PouchStandUp,
		PouchStandUpZipper,
		PouchSideGusset,
	}
}

// Valid reports whether p is a known pouch type
func (p PouchType) Valid() bool {
	for _, known := range PouchTypes() {
		if p == known {
			return true
		}
	}
	return false
}

// Label returns a human-readable label ("CENTER SEAL")
func (p PouchType) Label() string {
	return strings.ReplaceAll(string(p), "_", " ")
}

// PrintingMethod is the print process used for the job
type PrintingMethod string

const (
	PrintingRotogravure PrintingMethod = "ROTOGRAVURE"
	PrintingFlexo       PrintingMethod = "FLEXO"
)

// Valid reports whether m is a known printing method
func (m PrintingMethod) Valid() bool {
	return m == PrintingRotogravure || m == PrintingFlexo
}

// Layer is a single film in the laminate
type Layer struct {
	// Material is a material identifier ("PET" or a custom UPPER_SNAKE name)
	Material string `json:"material" yaml:"material"`

	// ThicknessMicron is the film thickness in microns
	ThicknessMicron float64 `json:"thickness_micron" yaml:"thickness_micron"`
}

// FilmStructure is the ordered laminate, outermost layer first
type FilmStructure struct {
	Layers []Layer `json:"layers" yaml:"layers"`
}

// TotalThickness sums the layer thicknesses in microns
func (f FilmStructure) TotalThickness() float64 {
	var total float64
	for _, l := range f.Layers {
		total += l.ThicknessMicron
	}
	return total
}

// LaminationPasses is the number of adhesive bonding steps (layers - 1)
func (f FilmStructure) LaminationPasses() int {
	if len(f.Layers) < 2 {
		return 0
	}
	return len(f.Layers) - 1
}

// ProductRequirements is the engine input
type ProductRequirements struct {
	PouchType PouchType
	WidthMM   float64
	HeightMM  float64
	GussetMM  float64

	FilmStructure FilmStructure

	NumberOfColors int

	// PrintingMethod is carried for callers; no formula branches on it
	PrintingMethod PrintingMethod

	// CylinderCostPerUnit is the one-time engraving cost per color
	CylinderCostPerUnit float64

	// Quantity selects the amortization basis; nil means no basis
	Quantity Quantity

	MarginPercent         float64
	WastagePercent        float64
	LaborCostPerKg        float64
	MachineUsageCostPerKg float64

	// Overrides replace the formula-derived cost when set
	PrintingCostPerKgOverride   *float64
	LaminationCostPerKgOverride *float64
}

// requirementsWire is the flat JSON form used by the original quotation payloads
type requirementsWire struct {
	PouchType                   PouchType      `json:"pouch_type"`
	WidthMM                     float64        `json:"width_mm"`
	HeightMM                    float64        `json:"height_mm"`
	GussetMM                    float64        `json:"gusset_mm"`
	QuantityKg                  *float64       `json:"quantity_kg,omitempty"`
	QuantityPieces              *int64         `json:"quantity_pieces,omitempty"`
	FilmStructure               FilmStructure  `json:"film_structure"`
	NumberOfColors              int            `json:"number_of_colors"`
	PrintingMethod              PrintingMethod `json:"printing_method"`
	CylinderCostPerUnit         float64        `json:"cylinder_cost_per_unit"`
	MarginPercent               float64        `json:"margin_percent"`
	WastagePercent              float64        `json:"wastage_percent"`
	LaborCostPerKg              float64        `json:"labor_cost_per_kg"`
	MachineUsageCostPerKg       float64        `json:"machine_usage_cost_per_kg"`
	PrintingCostPerKgOverride   *float64       `json:"printing_cost_per_kg_override,omitempty"`
	LaminationCostPerKgOverride *float64       `json:"lamination_cost_per_kg_override,omitempty"`
}

// MarshalJSON flattens the quantity variant back into quantity_kg / quantity_pieces
func (r ProductRequirements) MarshalJSON() ([]byte, error) {
	w := requirementsWire{
		PouchType:                   r.PouchType,
		WidthMM:                     r.WidthMM,
		HeightMM:                    r.HeightMM,
		GussetMM:                    r.GussetMM,
		FilmStructure:               r.FilmStructure,
		NumberOfColors:              r.NumberOfColors,
		PrintingMethod:              r.PrintingMethod,
		CylinderCostPerUnit:         r.CylinderCostPerUnit,
		MarginPercent:               r.MarginPercent,
		WastagePercent:              r.WastagePercent,
		LaborCostPerKg:              r.LaborCostPerKg,
		MachineUsageCostPerKg:       r.MachineUsageCostPerKg,
		PrintingCostPerKgOverride:   r.PrintingCostPerKgOverride,
		LaminationCostPerKgOverride: r.LaminationCostPerKgOverride,
	}
	switch q := r.Quantity.(type) {
	case ByWeight:
		kg := q.Kg
		w.QuantityKg = &kg
	case ByCount:
		pieces := q.Pieces
		w.QuantityPieces = &pieces
	}
	if w.FilmStructure.Layers == nil {
		w.FilmStructure.Layers = []Layer{}
	}
	return json.Marshal(w)
}
