package engine

import (
	"testing"

	"pouch-cost/core/types"
)

func TestResolveOpenDimensions(t *testing.T) {
	tests := []struct {
		name       string
		pouch      types.PouchType
		w, h, g    float64
		wantWidth  string
		wantLength string
	}{
		{"center seal flat", types.PouchCenterSeal, 150, 200, 0, "320", "220"},
		{"center seal gusset", types.PouchCenterSeal, 160, 240, 50, "440", "260"},
		{"three side seal", types.PouchThreeSideSeal, 80, 120, 0, "160", "140"},
		{"three side seal ignores gusset", types.PouchThreeSideSeal, 80, 120, 30, "160", "140"},
		{"stand up", types.PouchStandUp, 140, 220, 60, "460", "240"},
		{"stand up zipper falls to default", types.PouchStandUpZipper, 140, 220, 60, "280", "220"},
		{"side gusset falls to default", types.PouchSideGusset, 100, 300, 40, "200", "300"},
		{"unknown type falls to default", types.PouchType("WICKET"), 100, 300, 40, "200", "300"},
		{"negative passes through", types.PouchThreeSideSeal, -10, 0, 0, "-20", "20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := ResolveOpenDimensions(types.ProductRequirements{
				PouchType: tt.pouch,
				WidthMM:   tt.w,
				HeightMM:  tt.h,
				GussetMM:  tt.g,
			})
			assertDecimal(t, tt.wantWidth, dims.OpenWidthMM, "open_width_mm")
			assertDecimal(t, tt.wantLength, dims.CutLengthMM, "cut_length_mm")
		})
	}
}

func TestOpenDimensionsArea(t *testing.T) {
	dims := ResolveOpenDimensions(centerSealJob())
	assertDecimal(t, "0.0704", dims.AreaSqm(), "area")
}
