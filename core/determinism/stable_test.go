package determinism

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFloatCoercesNonFinite(t *testing.T) {
	assert.True(t, FromFloat(math.NaN()).IsZero())
	assert.True(t, FromFloat(math.Inf(1)).IsZero())
	assert.True(t, FromFloat(math.Inf(-1)).IsZero())
	assert.Equal(t, "0.905", FromFloat(0.905).String())
}

func TestFromFloatPtr(t *testing.T) {
	_, ok := FromFloatPtr(nil)
	assert.False(t, ok)

	v := 12.5
	d, ok := FromFloatPtr(&v)
	assert.True(t, ok)
	assert.Equal(t, "12.5", d.String())
}

func TestSafeDiv(t *testing.T) {
	assert.True(t, SafeDiv(decimal.NewFromInt(5), decimal.Zero).IsZero())
	assert.Equal(t, "2.5", SafeDiv(decimal.NewFromInt(5), decimal.NewFromInt(2)).String())
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in     string
		round2 string
		round4 string
	}{
		{"1.005", "1.01", "1.005"},
		{"1.00449", "1", "1.0045"},
		{"-2.345", "-2.35", "-2.345"},
		{"1302.664608", "1302.66", "1302.6646"},
	}
	for _, tt := range tests {
		d := decimal.RequireFromString(tt.in)
		assert.Equal(t, tt.round2, Round2(d).String(), "Round2(%s)", tt.in)
		assert.Equal(t, tt.round4, Round4(d).String(), "Round4(%s)", tt.in)
	}
}

func TestHashJSONStable(t *testing.T) {
	a, err := HashJSON(map[string]float64{"PET": 110, "LDPE": 105})
	require.NoError(t, err)
	b, err := HashJSON(map[string]float64{"LDPE": 105, "PET": 110})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a.Hex(), 64)
	assert.Len(t, a.String(), 16)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 1, "a": 2, "b": 3}))
}
