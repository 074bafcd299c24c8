// Package presets - Industry starting points for common pouch jobs
package presets

import (
	"pouch-cost/core/types"
	"pouch-cost/internal/errors"
)

// Preset is a named job template. Process assumptions it does not pin
// (wastage, labor, machine usage) come from the caller's defaults.
type Preset struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	PouchType           types.PouchType      `json:"pouch_type"`
	WidthMM             float64              `json:"width_mm"`
	HeightMM            float64              `json:"height_mm"`
	GussetMM            float64              `json:"gusset_mm"`
	FilmStructure       types.FilmStructure  `json:"film_structure"`
	NumberOfColors      int                  `json:"number_of_colors"`
	PrintingMethod      types.PrintingMethod `json:"printing_method"`
	CylinderCostPerUnit float64              `json:"cylinder_cost_per_unit"`
	QuantityPieces      int64                `json:"quantity_pieces"`
	MarginPercent       float64              `json:"margin_percent"`
}

// Requirements expands the preset into a full job
func (p Preset) Requirements(defaults types.ProcessDefaults) types.ProductRequirements {
	layers := make([]types.Layer, len(p.FilmStructure.Layers))
	copy(layers, p.FilmStructure.Layers)

	return types.ProductRequirements{
		PouchType:             p.PouchType,
		WidthMM:               p.WidthMM,
		HeightMM:              p.HeightMM,
		GussetMM:              p.GussetMM,
		FilmStructure:         types.FilmStructure{Layers: layers},
		NumberOfColors:        p.NumberOfColors,
		PrintingMethod:        p.PrintingMethod,
		CylinderCostPerUnit:   p.CylinderCostPerUnit,
		Quantity:              types.ByCount{Pieces: p.QuantityPieces},
		MarginPercent:         p.MarginPercent,
		WastagePercent:        defaults.WastagePercent,
		LaborCostPerKg:        defaults.LaborCostPerKg,
		MachineUsageCostPerKg: defaults.MachineUsageCostPerKg,
	}
}

func film(layers ...types.Layer) types.FilmStructure {
	return types.FilmStructure{Layers: layers}
}

func layer(material string, micron float64) types.Layer {
	return types.Layer{Material: material, ThicknessMicron: micron}
}

var catalog = []Preset{
	{
		ID:                  "snacks",
		Name:                "Snacks & Chips",
		Description:         "Namkeen and chips in nitrogen-flushed metallised barrier pouches",
		PouchType:           types.PouchCenterSeal,
		WidthMM:             160,
		HeightMM:            240,
		GussetMM:            50,
		FilmStructure:       film(layer(types.MaterialBOPP, 20), layer(types.MaterialMETBOPP, 20), layer(types.MaterialLDPE, 50)),
		NumberOfColors:      8,
		PrintingMethod:      types.PrintingRotogravure,
		CylinderCostPerUnit: 5000,
		QuantityPieces:      200000,
		MarginPercent:       20,
	},
	{
		ID:                  "pharma",
		Name:                "Pharma & Healthcare",
		Description:         "Tablets, sachets and ORS in high-barrier foil laminates",
		PouchType:           types.PouchThreeSideSeal,
		WidthMM:             80,
		HeightMM:            120,
		FilmStructure:       film(layer(types.MaterialPET, 12), layer(types.MaterialALFoil, 9), layer(types.MaterialLDPE, 37.5)),
		NumberOfColors:      4,
		PrintingMethod:      types.PrintingRotogravure,
		CylinderCostPerUnit: 4500,
		QuantityPieces:      500000,
		MarginPercent:       30,
	},
	{
		ID:                  "sweets",
		Name:                "Sweets & Mithai",
		Description:         "Bakery and sweets in premium printed pillow packs",
		PouchType:           types.PouchCenterSeal,
		WidthMM:             200,
		HeightMM:            150,
		FilmStructure:       film(layer(types.MaterialBOPP, 20), layer(types.MaterialMETBOPP, 20), layer(types.MaterialCPP, 30)),
		NumberOfColors:      7,
		PrintingMethod:      types.PrintingRotogravure,
		CylinderCostPerUnit: 5500,
		QuantityPieces:      100000,
		MarginPercent:       25,
	},
	{
		ID:                  "mop_detergent",
		Name:                "MOP & Detergents",
		Description:         "Shampoo and detergent sachets in liquid-resistant laminates",
		PouchType:           types.PouchThreeSideSeal,
		WidthMM:             120,
		HeightMM:            175,
		FilmStructure:       film(layer(types.MaterialPET, 12), layer(types.MaterialNylon, 15), layer(types.MaterialLDPE, 80)),
		NumberOfColors:      5,
		PrintingMethod:      types.PrintingRotogravure,
		CylinderCostPerUnit: 4000,
		QuantityPieces:      300000,
		MarginPercent:       18,
	},
	{
		ID:                  "dairy",
		Name:                "Dairy & Beverages",
		Description:         "Milk, lassi and juice in liquid-fill stand-up pouches",
		PouchType:           types.PouchStandUp,
		WidthMM:             140,
		HeightMM:            220,
		GussetMM:            60,
		FilmStructure:       film(layer(types.MaterialPET, 12), layer(types.MaterialALFoil, 7), layer(types.MaterialLDPE, 75)),
		NumberOfColors:      6,
		PrintingMethod:      types.PrintingRotogravure,
		CylinderCostPerUnit: 5000,
		QuantityPieces:      200000,
		MarginPercent:       22,
	},
	{
		ID:                  "agro",
		Name:                "Agro & Fertilizers",
		Description:         "Seeds and fertilizers in heavy-gauge stand-up sacks",
		PouchType:           types.PouchStandUp,
		WidthMM:             250,
		HeightMM:            350,
		GussetMM:            80,
		FilmStructure:       film(layer(types.MaterialBOPP, 25), layer(types.MaterialLDPE, 100)),
		NumberOfColors:      3,
		PrintingMethod:      types.PrintingFlexo,
		CylinderCostPerUnit: 3000,
		QuantityPieces:      50000,
		MarginPercent:       15,
	},
}

// List returns every preset in catalog order
func List() []Preset {
	out := make([]Preset, len(catalog))
	for i, p := range catalog {
		out[i] = p.clone()
	}
	return out
}

// Get looks a preset up by id
func Get(id string) (Preset, error) {
	for _, p := range catalog {
		if p.ID == id {
			return p.clone(), nil
		}
	}
	return Preset{}, errors.NotFound("preset", id)
}

// IDs returns the preset ids in catalog order
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, p := range catalog {
		ids[i] = p.ID
	}
	return ids
}

func (p Preset) clone() Preset {
	layers := make([]types.Layer, len(p.FilmStructure.Layers))
	copy(layers, p.FilmStructure.Layers)
	p.FilmStructure = types.FilmStructure{Layers: layers}
	return p
}
