package types

import (
	"cosmossdk.io/math"
)

// Params holds the module-wide pool constraints.
type Params struct {
	// MinWeight is the smallest weight any asset may carry, at any time.
	MinWeight Weight `json:"min_weight"`
	// MinWeightChangeDuration is the shortest allowed gradual update
	// window in seconds, measured from the effective start time.
	MinWeightChangeDuration int64 `json:"min_weight_change_duration"`
	// Swap fee bounds for pool creation.
	MinSwapFee math.LegacyDec `json:"min_swap_fee"`
	MaxSwapFee math.LegacyDec `json:"max_swap_fee"`
}

// DefaultParams returns the default pool constraints: 1% minimum weight,
// one-day minimum update window, swap fee between 0.0001% and 10%.
func DefaultParams() Params {
	return Params{
		MinWeight:               OneWeight / 100,
		MinWeightChangeDuration: 24 * 60 * 60,
		MinSwapFee:              math.LegacyNewDecWithPrec(1, 6),
		MaxSwapFee:              math.LegacyNewDecWithPrec(1, 1),
	}
}

// Validate checks internal parameter consistency.
func (p Params) Validate() error {
	if p.MinWeight == 0 || p.MinWeight > OneWeight {
		return ErrInvalidWeightVector.Wrap("min weight must be in (0, 1]")
	}
	if p.MinWeightChangeDuration <= 0 {
		return ErrWindowTooShort.Wrap("minimum duration must be positive")
	}
	if p.MinSwapFee.IsNil() || p.MaxSwapFee.IsNil() || p.MinSwapFee.IsNegative() || p.MaxSwapFee.LT(p.MinSwapFee) {
		return ErrInvalidSwapFee.Wrap("invalid swap fee bounds")
	}
	return nil
}
