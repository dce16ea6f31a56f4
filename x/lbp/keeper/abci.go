package keeper

import (
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lbp-labs/lbp-chain/metrics"
)

// EndBlocker sweeps all pools at the end of each block: completed
// schedules are folded into fixed weights and max-weight caches are
// refreshed, so storage converges even when no one pokes a pool.
func (k *Keeper) EndBlocker(ctx sdk.Context) error {
	blockHeight := ctx.BlockHeight()
	now := ctx.BlockTime().Unix()
	start := time.Now()

	pools := k.GetAllPools(ctx)
	folded := 0
	activeSchedules := 0

	for _, pool := range pools {
		if pool.FoldCompleted(now) {
			pool.MaxWeightIndex = pool.FixedWeights.Vector(pool.AssetCount()).MaxIndex()
			k.SetPool(ctx, pool)
			folded++

			ctx.EventManager().EmitEvent(
				sdk.NewEvent(
					"lbp_weights_folded",
					sdk.NewAttribute("pool_id", pool.PoolID),
					sdk.NewAttribute("block_height", math.NewInt(blockHeight).String()),
				),
			)
			continue
		}
		if pool.ScheduleActive() {
			activeSchedules++
		}
	}

	duration := time.Since(start)

	collector := metrics.GetCollector()
	collector.PoolsTotal.Set(float64(len(pools)))
	collector.SchedulesActive.Set(float64(activeSchedules))
	if folded > 0 {
		collector.FoldsTotal.Add(float64(folded))
	}
	collector.EndBlockDuration.Observe(duration.Seconds())
	collector.BlockHeight.Set(float64(blockHeight))

	k.logger.Debug("LBP EndBlocker completed",
		"block", blockHeight,
		"pools", len(pools),
		"folded", folded,
		"active_schedules", activeSchedules,
		"duration_ms", duration.Milliseconds(),
	)

	return nil
}
