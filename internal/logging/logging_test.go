package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pouch-cost/core/types"
)

func TestJobFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger
	SetLogger(zap.New(core))
	defer SetLogger(prev)

	Info("estimate", JobFields(types.ProductRequirements{
		PouchType:      types.PouchStandUp,
		WidthMM:        140,
		HeightMM:       220,
		NumberOfColors: 6,
		FilmStructure:  types.FilmStructure{Layers: make([]types.Layer, 3)},
		Quantity:       types.ByCount{Pieces: 200000},
	})...)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "STAND_UP_POUCH", ctx["pouch_type"])
	assert.Equal(t, int64(3), ctx["layers"])
	assert.Equal(t, "200000 pcs", ctx["quantity"])
}

func TestInitializeToFile(t *testing.T) {
	prev := Logger
	defer SetLogger(prev)

	path := filepath.Join(t.TempDir(), "pouch-cost.log")
	require.NoError(t, Initialize(Config{Level: "debug", Format: "json", Output: path}))
	assert.True(t, Logger.Core().Enabled(zapcore.DebugLevel))
}

func TestInitializeBadLevelFallsBackToInfo(t *testing.T) {
	prev := Logger
	defer SetLogger(prev)

	require.NoError(t, Initialize(Config{Level: "loud", Format: "json", Output: "stderr"}))
	assert.False(t, Logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Logger.Core().Enabled(zapcore.InfoLevel))
}

func TestInitializeUnwritableOutput(t *testing.T) {
	prev := Logger
	defer SetLogger(prev)

	err := Initialize(Config{Level: "info", Output: filepath.Join(t.TempDir(), "missing", "x.log")})
	assert.Error(t, err)
	assert.Same(t, prev, Logger, "logger is untouched on failure")
}
