package engine

import (
	"github.com/shopspring/decimal"

	"pouch-cost/core/determinism"
	"pouch-cost/core/types"
)

// ResolveOpenDimensions derives the flat film size of one pouch from its
// type and finished dimensions. Dimensions are not validated: zero or
// negative sizes flow through as zero or negative area.
func ResolveOpenDimensions(req types.ProductRequirements) types.OpenDimensions {
	width := determinism.FromFloat(req.WidthMM)
	height := determinism.FromFloat(req.HeightMM)
	gusset := determinism.FromFloat(req.GussetMM)
	two := decimal.NewFromInt(2)

	switch req.PouchType {
	case types.PouchCenterSeal:
		return types.OpenDimensions{
			OpenWidthMM: two.Mul(width).Add(two.Mul(gusset)).Add(centerSealOverlapMM),
			CutLengthMM: height.Add(two.Mul(sealWidthMM)),
		}
	case types.PouchThreeSideSeal:
		return types.OpenDimensions{
			OpenWidthMM: two.Mul(width),
			CutLengthMM: height.Add(two.Mul(sealWidthMM)),
		}
	case types.PouchStandUp:
		return types.OpenDimensions{
			OpenWidthMM: two.Mul(width).Add(two.Mul(gusset)).Add(standUpBottomFoldMM),
			CutLengthMM: height.Add(standUpLengthAllowMM),
		}
	default:
		// STAND_UP_ZIPPER, SIDE_GUSSET and unknown types: no seal allowance
		// on the cut length. Kept as-is until the per-type allowance is confirmed.
		return types.OpenDimensions{
			OpenWidthMM: two.Mul(width),
			CutLengthMM: height,
		}
	}
}
