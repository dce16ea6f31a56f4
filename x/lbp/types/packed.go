package types

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// weightSlotBytes is the width of a single weight sub-field.
const weightSlotBytes = 8

// PackedWeights is the compact storage form of a weight vector: one
// 32-byte word holding four big-endian 64-bit slots at offset index*8.
// Unused trailing slots are zero and ignored. The codec is purely
// bitwise; weight invariants are validated by the scheduler, never here.
type PackedWeights [MaxPoolAssets * weightSlotBytes]byte

// PackWeights encodes a vector into its packed word.
func PackWeights(v WeightVector) PackedWeights {
	var p PackedWeights
	for i := 0; i < v.Len(); i++ {
		binary.BigEndian.PutUint64(p[i*weightSlotBytes:], uint64(v.At(i)))
	}
	return p
}

// At decodes the weight in slot i. Behavior is undefined for i >= capacity;
// callers resolve and bounds-check indexes before reaching the codec.
func (p PackedWeights) At(i int) Weight {
	return Weight(binary.BigEndian.Uint64(p[i*weightSlotBytes:]))
}

// Vector decodes the first count slots.
func (p PackedWeights) Vector(count int) WeightVector {
	var v WeightVector
	v.count = count
	for i := 0; i < count; i++ {
		v.weights[i] = p.At(i)
	}
	return v
}

// MarshalJSON renders the packed word as a hex string so pool records
// stay readable in genesis and query output.
func (p PackedWeights) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(p[:]))
}

// UnmarshalJSON parses the hex form written by MarshalJSON.
func (p *PackedWeights) UnmarshalJSON(bz []byte) error {
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(raw) != len(p) {
		return fmt.Errorf("packed weights: want %d bytes, got %d", len(p), len(raw))
	}
	copy(p[:], raw)
	return nil
}
