package types

import (
	"testing"

	"cosmossdk.io/math"
)

func testPool(t *testing.T, fractions []string) *Pool {
	t.Helper()
	v, err := ParseWeightVector(fractions)
	if err != nil {
		t.Fatalf("parse weights: %v", err)
	}
	assets := []string{"unova", "uusdc", "uatom", "uosmo"}[:len(fractions)]
	return NewPool("lbp-test", "owner", assets, v, math.LegacyMustNewDecFromStr("0.003"), false, 1_700_000_000)
}

func scheduleTestPool(t *testing.T, p *Pool, endFractions []string, startTime, endTime int64) {
	t.Helper()
	v, err := ParseWeightVector(endFractions)
	if err != nil {
		t.Fatalf("parse end weights: %v", err)
	}
	p.TargetWeights = PackWeights(v)
	p.StartTime = startTime
	p.EndTime = endTime
}

// TestPoolIdleWeights tests that an idle pool always reports fixed weights
func TestPoolIdleWeights(t *testing.T) {
	p := testPool(t, []string{"0.8", "0.2"})

	if p.ScheduleActive() {
		t.Fatal("fresh pool reports active schedule")
	}
	for _, now := range []int64{0, 1_700_000_000, 1_800_000_000} {
		v := p.CurrentWeights(now)
		if v.At(0) != 800_000_000_000_000_000 || v.At(1) != 200_000_000_000_000_000 {
			t.Errorf("idle weights at %d = %s", now, v.Decs())
		}
	}
}

// TestPoolScheduleLifecycle tests the pre-start, in-flight and post-end phases
func TestPoolScheduleLifecycle(t *testing.T) {
	p := testPool(t, []string{"0.8", "0.2"})
	start := int64(1_700_000_000)
	end := start + 604800
	scheduleTestPool(t, p, []string{"0.5", "0.5"}, start, end)

	// Before start: fixed
	v := p.CurrentWeights(start - 10)
	if v.At(0) != 800_000_000_000_000_000 {
		t.Errorf("pre-start weight = %s", v.At(0).Dec())
	}
	// At start: still fixed
	v = p.CurrentWeights(start)
	if v.At(0) != 800_000_000_000_000_000 {
		t.Errorf("at-start weight = %s", v.At(0).Dec())
	}
	// Halfway: interpolated
	v = p.CurrentWeights(start + 302400)
	if v.At(0) != 650_000_000_000_000_000 || v.At(1) != 350_000_000_000_000_000 {
		t.Errorf("halfway weights = %s", v.Decs())
	}
	// At end and beyond: target, folded or not
	for _, now := range []int64{end, end + 1, end + 86400} {
		v = p.CurrentWeights(now)
		if v.At(0) != 500_000_000_000_000_000 || v.At(1) != 500_000_000_000_000_000 {
			t.Errorf("post-end weights at %d = %s", now, v.Decs())
		}
	}
}

// TestPoolWeightSumAtCheckpoints tests that the vector sums to exactly one
// at the schedule boundaries and at the canonical halfway point
func TestPoolWeightSumAtCheckpoints(t *testing.T) {
	p := testPool(t, []string{"0.8", "0.2"})
	start := int64(1_700_000_000)
	end := start + 604800
	scheduleTestPool(t, p, []string{"0.5", "0.5"}, start, end)

	one := math.NewUint(uint64(OneWeight))
	for _, now := range []int64{start - 1, start, start + 302400, end, end + 1} {
		sum := p.CurrentWeights(now).Sum()
		if !sum.Equal(one) {
			t.Errorf("weights at %d sum to %s", now, sum)
		}
	}
}

// TestPoolCurrentWeightMatchesVector tests the single-slot fast path
func TestPoolCurrentWeightMatchesVector(t *testing.T) {
	p := testPool(t, []string{"0.4", "0.3", "0.2", "0.1"})
	start := int64(1_700_000_000)
	end := start + 259200
	scheduleTestPool(t, p, []string{"0.1", "0.2", "0.3", "0.4"}, start, end)

	for _, now := range []int64{start - 1, start, start + 1, start + 100_000, end - 1, end, end + 50} {
		full := p.CurrentWeights(now)
		for i := 0; i < p.AssetCount(); i++ {
			if got := p.CurrentWeight(i, now); got != full.At(i) {
				t.Errorf("slot %d at %d: CurrentWeight %d != vector %d", i, now, got, full.At(i))
			}
		}
	}
}

// TestFoldCompleted tests fold timing and idempotence
func TestFoldCompleted(t *testing.T) {
	p := testPool(t, []string{"0.8", "0.2"})
	start := int64(1_700_000_000)
	end := start + 604800
	scheduleTestPool(t, p, []string{"0.5", "0.5"}, start, end)

	// In flight: no fold
	if p.FoldCompleted(end - 1) {
		t.Error("folded before end time")
	}
	if !p.ScheduleActive() {
		t.Error("schedule cleared early")
	}

	// At end: fold once
	if !p.FoldCompleted(end) {
		t.Error("did not fold at end time")
	}
	if p.ScheduleActive() {
		t.Error("sentinel not reset after fold")
	}
	if p.FixedWeights.At(0) != 500_000_000_000_000_000 {
		t.Errorf("fixed weight after fold = %s", p.FixedWeights.At(0).Dec())
	}
	if p.TargetWeights != (PackedWeights{}) {
		t.Error("target weights not cleared after fold")
	}

	// Idempotent
	if p.FoldCompleted(end + 100) {
		t.Error("second fold reported a change")
	}
}

// TestFoldQueryContinuity tests that a fold never changes what queries see
func TestFoldQueryContinuity(t *testing.T) {
	p := testPool(t, []string{"0.96", "0.04"})
	start := int64(1_700_000_000)
	end := start + 172800
	scheduleTestPool(t, p, []string{"0.5", "0.5"}, start, end)

	now := end + 3600
	before := p.CurrentWeights(now)
	p.FoldCompleted(now)
	after := p.CurrentWeights(now)

	for i := 0; i < p.AssetCount(); i++ {
		if before.At(i) != after.At(i) {
			t.Errorf("slot %d changed across fold: %d -> %d", i, before.At(i), after.At(i))
		}
	}
}

// TestAssetIndex tests denom resolution
func TestAssetIndex(t *testing.T) {
	p := testPool(t, []string{"0.5", "0.5"})

	if i, ok := p.AssetIndex("uusdc"); !ok || i != 1 {
		t.Errorf("AssetIndex(uusdc) = %d, %t", i, ok)
	}
	if _, ok := p.AssetIndex("ubtc"); ok {
		t.Error("resolved a denom the pool does not hold")
	}
}

// TestNewPoolMaxWeightIndex tests that creation seeds the heaviest-asset cache
func TestNewPoolMaxWeightIndex(t *testing.T) {
	p := testPool(t, []string{"0.2", "0.7", "0.1"})
	if p.MaxWeightIndex != 1 {
		t.Errorf("MaxWeightIndex = %d, want 1", p.MaxWeightIndex)
	}
}
