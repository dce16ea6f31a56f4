package keeper

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lbp-labs/lbp-chain/metrics"
	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// ScheduleGradualWeightUpdate commits a linear weight transition for the
// pool, ending at endTime with the given target weights. Owner only.
//
// A schedule already in flight is first folded forward to the current
// block time so the new transition starts from the weights callers are
// seeing right now, not from the stale original start vector. A start
// time in the past is clamped to now: the update begins immediately
// instead of pretending part of the window already elapsed. Returns the
// effective start time.
//
// All validation failures reject the whole call; nothing is persisted
// until every check has passed.
func (k *Keeper) ScheduleGradualWeightUpdate(
	ctx sdk.Context,
	owner, poolID string,
	startTime, endTime int64,
	endWeights types.WeightVector,
) (int64, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return 0, types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	if pool.Owner != owner {
		return 0, types.ErrNotOwner
	}

	now := ctx.BlockTime().Unix()
	if endTime <= now {
		return 0, types.ErrScheduleTimeTravel.Wrapf("end time %d, block time %d", endTime, now)
	}

	// Fold the in-flight schedule forward to now so re-scheduling
	// mid-transition causes no weight discontinuity. When the old
	// schedule already ran to completion this is the plain fold.
	if pool.ScheduleActive() {
		pool.FixedWeights = types.PackWeights(pool.CurrentWeights(now))
		pool.StartTime = 0
		pool.EndTime = 0
		pool.TargetWeights = types.PackedWeights{}
	}

	effectiveStart := startTime
	if effectiveStart < now {
		effectiveStart = now
	}

	params := k.GetParams(ctx)
	if endTime-effectiveStart < params.MinWeightChangeDuration {
		return 0, types.ErrWindowTooShort.Wrapf("window %ds below minimum %ds", endTime-effectiveStart, params.MinWeightChangeDuration)
	}

	if endWeights.Len() != pool.AssetCount() {
		return 0, types.ErrLengthMismatch.Wrapf("%d weights for %d assets", endWeights.Len(), pool.AssetCount())
	}
	if err := endWeights.Validate(params.MinWeight); err != nil {
		return 0, err
	}

	pool.StartTime = effectiveStart
	pool.EndTime = endTime
	pool.TargetWeights = types.PackWeights(endWeights)
	pool.UpdatedAt = now
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lbp_weight_update_scheduled",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("start_time", strconv.FormatInt(effectiveStart, 10)),
			sdk.NewAttribute("end_time", strconv.FormatInt(endTime, 10)),
		),
	)

	metrics.GetCollector().SchedulesTotal.WithLabelValues(poolID).Inc()

	k.logger.Info("Gradual weight update scheduled",
		"pool_id", poolID,
		"start_time", effectiveStart,
		"end_time", endTime,
		"window_s", endTime-effectiveStart,
	)

	return effectiveStart, nil
}

// PokeWeights folds a completed schedule into the fixed weights.
// Idempotent and callable by anyone from any mutating path; a no-op
// while the schedule is still in flight or the pool is idle.
func (k *Keeper) PokeWeights(ctx sdk.Context, poolID string) (bool, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return false, types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}

	now := ctx.BlockTime().Unix()
	if !pool.FoldCompleted(now) {
		return false, nil
	}
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lbp_weights_folded",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("block_time", strconv.FormatInt(now, 10)),
		),
	)

	k.logger.Debug("Completed schedule folded", "pool_id", poolID)
	return true, nil
}

// GetNormalizedWeights returns the full weight vector at the current
// block time. Pure read: never folds, never writes.
func (k *Keeper) GetNormalizedWeights(ctx sdk.Context, poolID string) (types.WeightVector, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return types.WeightVector{}, types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	return pool.CurrentWeights(ctx.BlockTime().Unix()), nil
}

// GetNormalizedWeight resolves denom to its slot and returns that single
// weight at the current block time. Pure read.
func (k *Keeper) GetNormalizedWeight(ctx sdk.Context, poolID, denom string) (types.Weight, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return 0, types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	idx, ok := pool.AssetIndex(denom)
	if !ok {
		return 0, types.ErrUnknownAsset.Wrapf("denom %s not in pool %s", denom, poolID)
	}
	return pool.CurrentWeight(idx, ctx.BlockTime().Unix()), nil
}

// RecomputeMaxWeightIndex refreshes the cached heaviest-asset index from
// the current weights and persists the pool. Called on balance-changing
// lifecycle paths, never from pure weight queries.
func (k *Keeper) RecomputeMaxWeightIndex(ctx sdk.Context, pool *types.Pool) {
	idx := pool.CurrentWeights(ctx.BlockTime().Unix()).MaxIndex()
	if idx == pool.MaxWeightIndex {
		return
	}
	pool.MaxWeightIndex = idx
	k.SetPool(ctx, pool)
}
