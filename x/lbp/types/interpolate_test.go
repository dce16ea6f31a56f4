package types

import (
	"testing"
)

// TestInterpolateBoundaries tests exactness at the window edges
func TestInterpolateBoundaries(t *testing.T) {
	start := Weight(800_000_000_000_000_000) // 0.8
	end := Weight(500_000_000_000_000_000)   // 0.5
	total := int64(604800)                   // 7 days

	if got := InterpolateWeight(start, end, total, 0); got != start {
		t.Errorf("at elapsed 0 got %d, want start %d", got, start)
	}
	if got := InterpolateWeight(start, end, total, total); got != end {
		t.Errorf("at elapsed total got %d, want end %d", got, end)
	}
}

// TestInterpolateHalfway tests the canonical 80/20 to 50/50 launch curve
func TestInterpolateHalfway(t *testing.T) {
	total := int64(604800)
	half := total / 2

	// 0.8 -> 0.5 decreasing
	got := InterpolateWeight(800_000_000_000_000_000, 500_000_000_000_000_000, total, half)
	if got != 650_000_000_000_000_000 {
		t.Errorf("decreasing halfway = %d, want 0.65", got)
	}

	// 0.2 -> 0.5 increasing
	got = InterpolateWeight(200_000_000_000_000_000, 500_000_000_000_000_000, total, half)
	if got != 350_000_000_000_000_000 {
		t.Errorf("increasing halfway = %d, want 0.35", got)
	}
}

// TestInterpolateMonotonic tests that weights never move backwards in time
func TestInterpolateMonotonic(t *testing.T) {
	start := Weight(960_000_000_000_000_000) // 0.96
	end := Weight(40_000_000_000_000_000)    // 0.04
	total := int64(259200)                   // 3 days

	prev := InterpolateWeight(start, end, total, 0)
	for elapsed := int64(1); elapsed <= total; elapsed += 3600 {
		cur := InterpolateWeight(start, end, total, elapsed)
		if cur > prev {
			t.Fatalf("decreasing weight rose from %d to %d at elapsed %d", prev, cur, elapsed)
		}
		if cur < end {
			t.Fatalf("weight %d undershot end %d at elapsed %d", cur, end, elapsed)
		}
		prev = cur
	}
}

// TestInterpolateEqualEndpoints tests the constant-weight fast path
func TestInterpolateEqualEndpoints(t *testing.T) {
	w := Weight(500_000_000_000_000_000)
	if got := InterpolateWeight(w, w, 1000, 500); got != w {
		t.Errorf("constant weight moved to %d", got)
	}
}

// TestInterpolateTruncation tests that the applied delta is floored
func TestInterpolateTruncation(t *testing.T) {
	// delta 10 over 3 seconds: floor(10*1/3) = 3 applied after 1s
	if got := InterpolateWeight(0, 10, 3, 1); got != 3 {
		t.Errorf("increasing truncation = %d, want 3", got)
	}
	// decreasing from 10 to 0: floor is applied to the delta, so the
	// result rounds toward the start
	if got := InterpolateWeight(10, 0, 3, 1); got != 7 {
		t.Errorf("decreasing truncation = %d, want 7", got)
	}
}

// TestInterpolateLargeValues tests overflow safety of elapsed times delta
func TestInterpolateLargeValues(t *testing.T) {
	// Near-full-range transition over a year, sampled near the end:
	// elapsed*delta overflows 64 bits and must still be exact.
	start := Weight(10_000_000_000_000_000) // 0.01
	end := Weight(990_000_000_000_000_000)  // 0.99
	total := int64(31_536_000)              // 365 days
	elapsed := total - 1

	got := InterpolateWeight(start, end, total, elapsed)
	if got < start || got > end {
		t.Fatalf("result %d outside [%d, %d]", got, start, end)
	}
	// One second before the end the weight must be within one
	// delta/total step of the target.
	step := uint64(end-start) / uint64(total)
	if uint64(end)-uint64(got) > step+1 {
		t.Errorf("result %d too far from end %d", got, end)
	}
}
