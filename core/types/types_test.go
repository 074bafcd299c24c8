package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPouchTypeValid(t *testing.T) {
	for _, p := range PouchTypes() {
		assert.True(t, p.Valid(), p)
	}
	assert.False(t, PouchType("WICKET").Valid())
	assert.Equal(t, "STAND UP ZIPPER", PouchStandUpZipper.Label())
}

func TestFilmStructureDerived(t *testing.T) {
	assert.Equal(t, 0, FilmStructure{}.LaminationPasses())
	assert.Equal(t, 0, FilmStructure{Layers: []Layer{{Material: "PET", ThicknessMicron: 12}}}.LaminationPasses())

	film := FilmStructure{Layers: []Layer{
		{Material: "PET", ThicknessMicron: 12},
		{Material: "AL_FOIL", ThicknessMicron: 9},
		{Material: "LDPE", ThicknessMicron: 37.5},
	}}
	assert.Equal(t, 2, film.LaminationPasses())
	assert.InDelta(t, 58.5, film.TotalThickness(), 1e-9)
}

func TestMaterialTablesFallback(t *testing.T) {
	tables := DefaultMaterialTables()
	assert.Equal(t, 110.0, tables.Rate("PET"))
	assert.Equal(t, 0.905, tables.Density("BOPP"))
	assert.Equal(t, DefaultMaterialRate, tables.Rate("UNOBTAINIUM"))
	assert.Equal(t, DefaultMaterialDensity, tables.Density("UNOBTAINIUM"))
}

func TestMaterialTablesWithRatesCopies(t *testing.T) {
	base := DefaultMaterialTables()
	merged := base.WithRates(RateTable{"pet": 150, "kraft paper": 60})

	assert.Equal(t, 150.0, merged.Rate("PET"))
	assert.Equal(t, 60.0, merged.Rate("KRAFT_PAPER"))
	assert.Equal(t, 110.0, base.Rate("PET"), "base table must be untouched")
	assert.Contains(t, merged.Materials(), "KRAFT_PAPER")
}

func TestNormalizeMaterial(t *testing.T) {
	assert.Equal(t, "MET_PET", NormalizeMaterial(" met pet "))
	assert.Equal(t, "MET_BOPP", NormalizeMaterial("Met-BOPP"))
	assert.Equal(t, "AL_FOIL", NormalizeMaterial("AL_FOIL"))
}

func TestRequirementsMarshalFlattensQuantity(t *testing.T) {
	req := ProductRequirements{
		PouchType: PouchCenterSeal,
		WidthMM:   150,
		Quantity:  ByCount{Pieces: 100000},
	}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, float64(100000), out["quantity_pieces"])
	assert.NotContains(t, out, "quantity_kg")
	assert.NotContains(t, out, "printing_cost_per_kg_override")
	assert.Equal(t, "CENTER_SEAL", out["pouch_type"])

	req.Quantity = ByWeight{Kg: 250}
	data, err = json.Marshal(req)
	require.NoError(t, err)
	out = nil
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, float64(250), out["quantity_kg"])
	assert.NotContains(t, out, "quantity_pieces")
}

func TestQuantityBasis(t *testing.T) {
	assert.Equal(t, BasisWeight, ByWeight{Kg: 1}.Basis())
	assert.Equal(t, BasisCount, ByCount{Pieces: 1}.Basis())
	assert.Equal(t, "250 kg", ByWeight{Kg: 250}.String())
	assert.Equal(t, "1000 pcs", ByCount{Pieces: 1000}.String())
}

func TestMaterialTablesClone(t *testing.T) {
	base := DefaultMaterialTables()
	clone := base.Clone()
	clone.Rates["PET"] = 1
	clone.Densities["PET"] = 9

	assert.Equal(t, 110.0, base.Rate("PET"))
	assert.Equal(t, 1.4, base.Density("PET"))
	assert.Equal(t, 1.0, clone.Rate("PET"))
}

func TestMaterialTablesExplicitZero(t *testing.T) {
	tables := MaterialTables{Rates: RateTable{"PET": 0}, Densities: DensityTable{"PET": 0}}
	assert.Equal(t, 0.0, tables.Rate("PET"))
	assert.Equal(t, 0.0, tables.Density("PET"))
}
