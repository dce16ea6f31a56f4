package types

import (
	"testing"

	"cosmossdk.io/math"
)

// TestWeightDecRoundTrip tests the fixed-point to decimal conversion
func TestWeightDecRoundTrip(t *testing.T) {
	cases := []struct {
		fraction string
		weight   Weight
	}{
		{"1.0", OneWeight},
		{"0.5", OneWeight / 2},
		{"0.8", 800_000_000_000_000_000},
		{"0.01", 10_000_000_000_000_000},
		{"0.000000000000000001", 1},
		{"0.0", 0},
	}

	for _, tc := range cases {
		d := math.LegacyMustNewDecFromStr(tc.fraction)
		w, err := WeightFromDec(d)
		if err != nil {
			t.Fatalf("WeightFromDec(%s): %v", tc.fraction, err)
		}
		if w != tc.weight {
			t.Errorf("WeightFromDec(%s) = %d, want %d", tc.fraction, w, tc.weight)
		}
		if !w.Dec().Equal(d) {
			t.Errorf("Dec round trip of %s = %s", tc.fraction, w.Dec())
		}
	}
}

// TestWeightFromDecRejectsNegative tests that negative fractions are rejected
func TestWeightFromDecRejectsNegative(t *testing.T) {
	if _, err := WeightFromDec(math.LegacyMustNewDecFromStr("-0.1")); err == nil {
		t.Error("expected error for negative weight")
	}
}

// TestWeightVectorValidate tests the structural weight invariants
func TestWeightVectorValidate(t *testing.T) {
	minWeight := OneWeight / 100 // 0.01

	cases := []struct {
		name      string
		fractions []string
		valid     bool
	}{
		{"two assets exact", []string{"0.8", "0.2"}, true},
		{"four assets exact", []string{"0.25", "0.25", "0.25", "0.25"}, true},
		{"boundary min weight", []string{"0.01", "0.33", "0.33", "0.33"}, true},
		{"one unit below min", []string{"0.009999999999999999", "0.330000000000000001", "0.33", "0.33"}, false},
		{"sum one unit short", []string{"0.5", "0.499999999999999999"}, false},
		{"sum one unit over", []string{"0.5", "0.500000000000000001"}, false},
		{"zero weight", []string{"0", "1.0"}, false},
	}

	for _, tc := range cases {
		v, err := ParseWeightVector(tc.fractions)
		if err != nil {
			t.Fatalf("%s: parse: %v", tc.name, err)
		}
		err = v.Validate(minWeight)
		if tc.valid && err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
		}
		if !tc.valid && err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

// TestWeightVectorTooManyAssets tests the asset count ceiling
func TestWeightVectorTooManyAssets(t *testing.T) {
	_, err := ParseWeightVector([]string{"0.2", "0.2", "0.2", "0.2", "0.2"})
	if err == nil {
		t.Error("expected error for five weights")
	}
}

// TestMaxIndex tests max weight index selection including tie-breaking
func TestMaxIndex(t *testing.T) {
	cases := []struct {
		name      string
		fractions []string
		want      int
	}{
		{"strictly descending", []string{"0.8", "0.2"}, 0},
		{"strictly ascending", []string{"0.2", "0.8"}, 1},
		{"middle heaviest", []string{"0.1", "0.7", "0.2"}, 1},
		{"tie takes first occurrence", []string{"0.25", "0.25", "0.25", "0.25"}, 0},
		{"tie among later slots", []string{"0.1", "0.45", "0.45"}, 1},
	}

	for _, tc := range cases {
		v, err := ParseWeightVector(tc.fractions)
		if err != nil {
			t.Fatalf("%s: parse: %v", tc.name, err)
		}
		if got := v.MaxIndex(); got != tc.want {
			t.Errorf("%s: MaxIndex = %d, want %d", tc.name, got, tc.want)
		}
	}
}

// TestPackedWeightsRoundTrip tests that packing preserves every slot
func TestPackedWeightsRoundTrip(t *testing.T) {
	v, err := ParseWeightVector([]string{"0.4", "0.3", "0.2", "0.1"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	packed := PackWeights(v)
	for i := 0; i < v.Len(); i++ {
		if packed.At(i) != v.At(i) {
			t.Errorf("slot %d = %d, want %d", i, packed.At(i), v.At(i))
		}
	}

	back := packed.Vector(v.Len())
	if back.Len() != v.Len() {
		t.Fatalf("unpacked length %d, want %d", back.Len(), v.Len())
	}
	if !back.Sum().Equal(math.NewUint(uint64(OneWeight))) {
		t.Errorf("unpacked sum %s, want exactly 1e18", back.Sum())
	}
}

// TestPackedWeightsUnusedSlots tests that unused slots stay zero
func TestPackedWeightsUnusedSlots(t *testing.T) {
	v, err := ParseWeightVector([]string{"0.8", "0.2"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	packed := PackWeights(v)
	if packed.At(2) != 0 || packed.At(3) != 0 {
		t.Errorf("unused slots not zero: %d, %d", packed.At(2), packed.At(3))
	}
}

// TestPackedWeightsJSON tests the hex JSON representation
func TestPackedWeightsJSON(t *testing.T) {
	v, err := ParseWeightVector([]string{"0.96", "0.04"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	packed := PackWeights(v)
	data, err := packed.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back PackedWeights
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != packed {
		t.Errorf("JSON round trip changed the word: %x -> %x", packed, back)
	}
}
