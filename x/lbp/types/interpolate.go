package types

import (
	"cosmossdk.io/math"
)

// InterpolateWeight computes the weight elapsed seconds into a linear
// transition from start to end over total seconds.
//
// The delta applied so far is floor(elapsed * |end-start| / total): the
// division truncates, so the result lies weakly between start and end for
// every elapsed in [0, total], and equals start exactly at elapsed == 0.
//
// Preconditions, enforced by the scheduler: total > 0 and 0 <= elapsed.
// The end boundary is not special-cased here; callers return the end
// weight directly once elapsed reaches total.
func InterpolateWeight(start, end Weight, total, elapsed int64) Weight {
	if start == end {
		return start
	}

	var totalDelta uint64
	if end > start {
		totalDelta = uint64(end - start)
	} else {
		totalDelta = uint64(start - end)
	}

	// elapsed * totalDelta can exceed 64 bits; go through math.Uint.
	currentDelta := math.NewUint(totalDelta).
		MulUint64(uint64(elapsed)).
		QuoUint64(uint64(total)).
		Uint64()

	if end > start {
		return start + Weight(currentDelta)
	}
	return start - Weight(currentDelta)
}
