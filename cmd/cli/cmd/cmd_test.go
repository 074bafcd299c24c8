package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pouch-cost version "+version+"\n", out)
}

func TestEstimatePreset(t *testing.T) {
	out, err := run(t, "estimate", "--preset", "pharma", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## pharma")
	assert.Contains(t, out, "| **Price / 1000 pouches** | **847.74** |")
}

func TestEstimateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: crunchy
pouch_type: CENTER_SEAL
width_mm: 150
height_mm: 200
number_of_colors: 6
cylinder_cost_per_unit: 4500
quantity_pieces: 100000
film_structure:
  layers:
    - material: PET
      thickness_micron: 12
    - material: LDPE
      thickness_micron: 40
`), 0644))

	out, err := run(t, "estimate", path, "-f", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| **Total cost / kg** | **307.88** |")
}

func TestEstimateWithoutJobs(t *testing.T) {
	_, err := run(t, "estimate")
	assert.Error(t, err)
}

func TestSweepRequiresParam(t *testing.T) {
	_, err := run(t, "sweep", "--preset", "pharma", "--values", "1,2")
	assert.Error(t, err)
}

func TestSweepPreset(t *testing.T) {
	out, err := run(t, "sweep", "--preset", "pharma", "--param", "margin", "--values", "30,40", "-f", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "## Sweep: margin (pharma)")
	assert.Contains(t, out, "| 30 | 348.23 | 847.74 |")
}

func TestCompareAndSummaryPresets(t *testing.T) {
	out, err := run(t, "compare", "-p", "pharma", "-p", "agro", "-f", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "Cheapest per pouch: **pharma**")

	out, err = run(t, "summary", "-p", "pharma,agro", "-f", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| Jobs | 2 |")
}

func TestPresetsAndRates(t *testing.T) {
	out, err := run(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "dairy")

	out, err = run(t, "rates", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"AL_FOIL": 400`)
}

func TestConfigInitAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pouch.toml")

	out, err := run(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote")

	_, err = run(t, "config", "init", path)
	assert.Error(t, err, "refuses to overwrite without --force")

	out, err = run(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "labor_cost_per_kg: 8")
}

func TestBadConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"defaults": {"wastage_percent": -1}}`), 0644))

	_, err := run(t, "--config", path, "presets")
	assert.Error(t, err)
}
