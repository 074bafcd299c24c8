package types

import (
	"sort"
	"strings"
)

// Fallbacks for materials missing from the tables. A custom film the
// rate store does not know yet still prices, at a neutral rate and density.
const (
	DefaultMaterialRate    = 100.0
	DefaultMaterialDensity = 1.0
)

// Built-in material identifiers
const (
	MaterialPET     = "PET"
	MaterialBOPP    = "BOPP"
	MaterialMETPET  = "MET_PET"
	MaterialMETBOPP = "MET_BOPP"
	MaterialLDPE    = "LDPE"
	MaterialCPP     = "CPP"
	MaterialALFoil  = "AL_FOIL"
	MaterialNylon   = "NYLON"
	MaterialPaper   = "PAPER"
)

// RateTable maps a material identifier to its price per kilogram
type RateTable map[string]float64

// DensityTable maps a material identifier to its density in g/cm³
type DensityTable map[string]float64

// DefaultRates returns a fresh copy of the built-in rate table
func DefaultRates() RateTable {
	return RateTable{
		MaterialPET:     110,
		MaterialBOPP:    130,
		MaterialMETPET:  120,
		MaterialMETBOPP: 140,
		MaterialLDPE:    105,
		MaterialCPP:     115,
		MaterialALFoil:  400,
		MaterialNylon:   250,
		MaterialPaper:   80,
	}
}

// DefaultDensities returns a fresh copy of the built-in density table
func DefaultDensities() DensityTable {
	return DensityTable{
		MaterialPET:     1.4,
		MaterialBOPP:    0.905,
		MaterialMETPET:  1.4,
		MaterialMETBOPP: 0.905,
		MaterialLDPE:    0.92,
		MaterialCPP:     0.90,
		MaterialALFoil:  2.7,
		MaterialNylon:   1.15,
		MaterialPaper:   0.8,
	}
}

// MaterialTables is the rate/density configuration injected into the engine.
// The engine only reads from it.
type MaterialTables struct {
	Rates     RateTable    `json:"rates"`
	Densities DensityTable `json:"densities"`
}

// DefaultMaterialTables returns the built-in tables
func DefaultMaterialTables() MaterialTables {
	return MaterialTables{
		Rates:     DefaultRates(),
		Densities: DefaultDensities(),
	}
}

// Clone returns a deep copy of t
func (t MaterialTables) Clone() MaterialTables {
	rates := make(RateTable, len(t.Rates))
	for k, v := range t.Rates {
		rates[k] = v
	}
	densities := make(DensityTable, len(t.Densities))
	for k, v := range t.Densities {
		densities[k] = v
	}
	return MaterialTables{Rates: rates, Densities: densities}
}

// Rate returns the per-kg rate for material, or DefaultMaterialRate when
// absent. A material present with rate 0 prices at 0: only a missing key
// falls back. Config loading drops zero entries, so "unset" never reaches here.
func (t MaterialTables) Rate(material string) float64 {
	if rate, ok := t.Rates[material]; ok {
		return rate
	}
	return DefaultMaterialRate
}

// Density returns the density for material, or DefaultMaterialDensity when
// absent. As with Rate, an explicit 0 is kept.
func (t MaterialTables) Density(material string) float64 {
	if density, ok := t.Densities[material]; ok {
		return density
	}
	return DefaultMaterialDensity
}

// WithRates returns a copy of t with overrides merged over its rates
func (t MaterialTables) WithRates(overrides RateTable) MaterialTables {
	rates := make(RateTable, len(t.Rates)+len(overrides))
	for k, v := range t.Rates {
		rates[k] = v
	}
	for k, v := range overrides {
		rates[NormalizeMaterial(k)] = v
	}
	densities := make(DensityTable, len(t.Densities))
	for k, v := range t.Densities {
		densities[k] = v
	}
	return MaterialTables{Rates: rates, Densities: densities}
}

// Materials returns every material named in either table, sorted
func (t MaterialTables) Materials() []string {
	seen := make(map[string]struct{}, len(t.Rates))
	for k := range t.Rates {
		seen[k] = struct{}{}
	}
	for k := range t.Densities {
		seen[k] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// NormalizeMaterial turns a user-entered name into an identifier:
// "met pet" and "Met-PET" both become "MET_PET".
func NormalizeMaterial(name string) string {
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.':
			return '_'
		}
		return r
	}, name)
	return strings.ToUpper(name)
}
