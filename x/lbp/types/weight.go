package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// Weight is a fixed-point normalized pool weight. The scale matches
// LegacyDec: OneWeight (1e18) represents 100% of pool value. A valid
// weight vector always sums to exactly OneWeight.
type Weight uint64

// OneWeight is the fixed-point representation of 1.0 (100%).
const OneWeight Weight = 1_000_000_000_000_000_000

// Dec renders the weight as an 18-decimal fraction.
func (w Weight) Dec() math.LegacyDec {
	return math.LegacyNewDecFromIntWithPrec(math.NewIntFromUint64(uint64(w)), math.LegacyPrecision)
}

// WeightFromDec converts an 18-decimal fraction into a Weight.
// Fails for negative values and values above what a weight slot can hold.
func WeightFromDec(d math.LegacyDec) (Weight, error) {
	if d.IsNil() || d.IsNegative() {
		return 0, ErrInvalidWeightVector.Wrapf("weight must be non-negative, got %s", d)
	}
	raw := d.BigInt() // scaled by 1e18
	if !raw.IsUint64() {
		return 0, ErrInvalidWeightVector.Wrapf("weight %s exceeds slot range", d)
	}
	return Weight(raw.Uint64()), nil
}

// WeightVector is a bounded ordered sequence of up to MaxPoolAssets
// weights, indexed positionally 1:1 with the pool's asset list.
type WeightVector struct {
	weights [MaxPoolAssets]Weight
	count   int
}

// NewWeightVector builds a vector from the given weights in index order.
func NewWeightVector(weights ...Weight) (WeightVector, error) {
	if len(weights) > MaxPoolAssets {
		return WeightVector{}, ErrTooManyAssets.Wrapf("got %d weights, max %d", len(weights), MaxPoolAssets)
	}
	var v WeightVector
	v.count = len(weights)
	copy(v.weights[:], weights)
	return v, nil
}

// Len returns the number of populated slots.
func (v WeightVector) Len() int { return v.count }

// At returns the weight at index i. Callers are responsible for bounds;
// indexes are validated at the asset-resolution boundary, not here.
func (v WeightVector) At(i int) Weight { return v.weights[i] }

// Sum adds all populated slots with overflow-safe arithmetic.
func (v WeightVector) Sum() math.Uint {
	sum := math.ZeroUint()
	for i := 0; i < v.count; i++ {
		sum = sum.AddUint64(uint64(v.weights[i]))
	}
	return sum
}

// MaxIndex returns the index of the largest weight, ties broken by the
// first occurrence in index order.
func (v WeightVector) MaxIndex() int {
	maxIdx := 0
	for i := 1; i < v.count; i++ {
		if v.weights[i] > v.weights[maxIdx] {
			maxIdx = i
		}
	}
	return maxIdx
}

// Validate checks the structural weight invariants: every populated slot
// is at least minWeight and the vector sums to exactly OneWeight.
func (v WeightVector) Validate(minWeight Weight) error {
	for i := 0; i < v.count; i++ {
		if v.weights[i] < minWeight {
			return ErrInvalidWeightVector.Wrapf("weight[%d]=%s below minimum %s", i, v.weights[i].Dec(), minWeight.Dec())
		}
	}
	if !v.Sum().Equal(math.NewUint(uint64(OneWeight))) {
		return ErrInvalidWeightVector.Wrapf("weights sum to %s, want exactly 1", decFromUint(v.Sum()))
	}
	return nil
}

// Decs renders the vector as 18-decimal fractions, for responses and events.
func (v WeightVector) Decs() []math.LegacyDec {
	out := make([]math.LegacyDec, v.count)
	for i := 0; i < v.count; i++ {
		out[i] = v.weights[i].Dec()
	}
	return out
}

// ParseWeightVector parses 18-decimal fraction strings ("0.8") into a
// weight vector, preserving order.
func ParseWeightVector(fractions []string) (WeightVector, error) {
	if len(fractions) > MaxPoolAssets {
		return WeightVector{}, ErrTooManyAssets.Wrapf("got %d weights, max %d", len(fractions), MaxPoolAssets)
	}
	weights := make([]Weight, 0, len(fractions))
	for _, s := range fractions {
		d, err := math.LegacyNewDecFromStr(s)
		if err != nil {
			return WeightVector{}, ErrInvalidWeightVector.Wrapf("weight %q: %s", s, err)
		}
		w, err := WeightFromDec(d)
		if err != nil {
			return WeightVector{}, err
		}
		weights = append(weights, w)
	}
	return NewWeightVector(weights...)
}

func decFromUint(u math.Uint) math.LegacyDec {
	return math.LegacyNewDecFromBigIntWithPrec(new(big.Int).Set(u.BigInt()), math.LegacyPrecision)
}
