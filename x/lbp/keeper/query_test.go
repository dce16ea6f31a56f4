package keeper

import (
	"errors"
	"testing"

	"cosmossdk.io/math"

	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// TestQueryPool tests the pool lookup query
func TestQueryPool(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	q := NewQueryServerImpl(k)
	createTestPool(t, k, ctx)

	pool, err := q.Pool(ctx, "lbp-test")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if pool.PoolID != "lbp-test" {
		t.Errorf("pool ID = %s", pool.PoolID)
	}

	if _, err := q.Pool(ctx, "lbp-nope"); !errors.Is(err, types.ErrPoolNotFound) {
		t.Errorf("missing pool: got %v", err)
	}
}

// TestQueryPoolsPagination tests offset/limit paging
func TestQueryPoolsPagination(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	q := NewQueryServerImpl(k)

	for _, id := range []string{"lbp-a", "lbp-b", "lbp-c", "lbp-d"} {
		if _, err := k.CreatePool(ctx, testOwner, id, []string{"unova", "uusdc"},
			mustWeights(t, "0.5", "0.5"), math.LegacyMustNewDecFromStr("0.003"), false); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	page, total, err := q.Pools(ctx, 0, 2)
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if total != 4 || len(page) != 2 {
		t.Errorf("page 1: total %d len %d", total, len(page))
	}

	page, _, err = q.Pools(ctx, 2, 10)
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("page 2: len %d", len(page))
	}

	page, total, err = q.Pools(ctx, 10, 2)
	if err != nil {
		t.Fatalf("beyond end: %v", err)
	}
	if total != 4 || len(page) != 0 {
		t.Errorf("beyond end: total %d len %d", total, len(page))
	}

	// a huge limit with a nonzero offset must clamp to the end,
	// not wrap offset+limit around zero
	page, _, err = q.Pools(ctx, 2, ^uint64(0))
	if err != nil {
		t.Fatalf("max limit: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("max limit: len %d", len(page))
	}
}

// TestQuerySchedule tests schedule rendering in idle and active states
func TestQuerySchedule(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	q := NewQueryServerImpl(k)
	createTestPool(t, k, ctx)

	info, err := q.Schedule(ctx, "lbp-test")
	if err != nil {
		t.Fatalf("idle schedule: %v", err)
	}
	if info.Active {
		t.Error("idle pool reports an active schedule")
	}

	if _, err := k.ScheduleGradualWeightUpdate(ctx, testOwner, "lbp-test",
		baseTime, baseTime+week, mustWeights(t, "0.5", "0.5")); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	info, err = q.Schedule(ctx, "lbp-test")
	if err != nil {
		t.Fatalf("active schedule: %v", err)
	}
	if !info.Active || info.StartTime != baseTime || info.EndTime != baseTime+week {
		t.Errorf("schedule info = %+v", info)
	}
	if len(info.EndWeights) != 2 || info.EndWeights[0] != "0.500000000000000000" {
		t.Errorf("end weights = %v", info.EndWeights)
	}
}

// TestQueryNormalizedWeightsIsPure tests that the query never mutates
func TestQueryNormalizedWeightsIsPure(t *testing.T) {
	k, _, ctx := setupKeeper(t)
	q := NewQueryServerImpl(k)
	createTestPool(t, k, ctx)

	if _, err := k.ScheduleGradualWeightUpdate(ctx, testOwner, "lbp-test",
		baseTime, baseTime+week, mustWeights(t, "0.5", "0.5")); err != nil {
		t.Fatalf("schedule: %v", err)
	}

	done := atTime(ctx, week+500)
	weights, err := q.NormalizedWeights(done, "lbp-test")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if !weights[0].Equal(math.LegacyMustNewDecFromStr("0.5")) {
		t.Errorf("weight past end = %s", weights[0])
	}
	if !k.GetPool(done, "lbp-test").ScheduleActive() {
		t.Error("query folded the schedule")
	}
}

// TestQuerySpotPrice tests the spot price quote against seeded custody
func TestQuerySpotPrice(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	q := NewQueryServerImpl(k)
	seedPool(t, k, bank, ctx)

	// 80/20 pool seeded 800k/200k: both legs carry equal value per weight
	price, err := q.SpotPrice(ctx, "lbp-test", "unova", "uusdc")
	if err != nil {
		t.Fatalf("spot price: %v", err)
	}
	if !price.Equal(math.LegacyOneDec()) {
		t.Errorf("spot price = %s, want 1", price)
	}

	if _, err := q.SpotPrice(ctx, "lbp-test", "unova", "ubtc"); !errors.Is(err, types.ErrUnknownAsset) {
		t.Errorf("unknown denom: got %v", err)
	}
}

// TestQueryShares tests the share balance query
func TestQueryShares(t *testing.T) {
	k, bank, ctx := setupKeeper(t)
	q := NewQueryServerImpl(k)
	seedPool(t, k, bank, ctx)

	shares, err := q.Shares(ctx, "lbp-test", testOwner)
	if err != nil {
		t.Fatalf("shares: %v", err)
	}
	if !shares.Equal(math.LegacyNewDec(100)) {
		t.Errorf("owner shares = %s, want 100", shares)
	}

	shares, err = q.Shares(ctx, "lbp-test", testSender)
	if err != nil {
		t.Fatalf("empty shares: %v", err)
	}
	if !shares.IsZero() {
		t.Errorf("stranger shares = %s, want 0", shares)
	}
}
