package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// QueryServer defines the lbp QueryServer. Every handler is a pure
// read: completed-but-unfolded schedules are rendered functionally, and
// nothing here ever writes state.
type QueryServer struct {
	keeper *Keeper
}

// NewQueryServerImpl creates a new QueryServer instance
func NewQueryServerImpl(keeper *Keeper) *QueryServer {
	return &QueryServer{keeper: keeper}
}

// Pool returns a pool by ID
func (q *QueryServer) Pool(ctx context.Context, poolID string) (*types.Pool, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	return pool, nil
}

// Pools returns all pools with offset/limit pagination
func (q *QueryServer) Pools(ctx context.Context, offset, limit uint64) ([]*types.Pool, uint64, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	allPools := q.keeper.GetAllPools(sdkCtx)

	total := uint64(len(allPools))
	if offset >= total {
		return []*types.Pool{}, total, nil
	}
	// limit is compared against the remaining span so offset+limit can
	// never wrap past total.
	end := total
	if limit != 0 && limit < total-offset {
		end = offset + limit
	}
	return allPools[offset:end], total, nil
}

// NormalizedWeights returns the full weight vector at the current block time
func (q *QueryServer) NormalizedWeights(ctx context.Context, poolID string) ([]math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	v, err := q.keeper.GetNormalizedWeights(sdkCtx, poolID)
	if err != nil {
		return nil, err
	}
	return v.Decs(), nil
}

// NormalizedWeight returns one asset's weight at the current block time
func (q *QueryServer) NormalizedWeight(ctx context.Context, poolID, denom string) (math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	w, err := q.keeper.GetNormalizedWeight(sdkCtx, poolID, denom)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	return w.Dec(), nil
}

// ScheduleInfo describes a pool's pending gradual update
type ScheduleInfo struct {
	Active       bool     `json:"active"`
	StartTime    int64    `json:"start_time,omitempty"`
	EndTime      int64    `json:"end_time,omitempty"`
	StartWeights []string `json:"start_weights,omitempty"`
	EndWeights   []string `json:"end_weights,omitempty"`
}

// Schedule returns the pending gradual update of a pool, if any
func (q *QueryServer) Schedule(ctx context.Context, poolID string) (*ScheduleInfo, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	if !pool.ScheduleActive() {
		return &ScheduleInfo{Active: false}, nil
	}

	n := pool.AssetCount()
	info := &ScheduleInfo{
		Active:    true,
		StartTime: pool.StartTime,
		EndTime:   pool.EndTime,
	}
	for _, d := range pool.FixedWeights.Vector(n).Decs() {
		info.StartWeights = append(info.StartWeights, d.String())
	}
	for _, d := range pool.TargetWeights.Vector(n).Decs() {
		info.EndWeights = append(info.EndWeights, d.String())
	}
	return info, nil
}

// SpotPrice quotes the marginal pre-fee price of denomOut in denomIn
func (q *QueryServer) SpotPrice(ctx context.Context, poolID, denomIn, denomOut string) (math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	pool := q.keeper.GetPool(sdkCtx, poolID)
	if pool == nil {
		return math.LegacyZeroDec(), types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	idxIn, ok := pool.AssetIndex(denomIn)
	if !ok {
		return math.LegacyZeroDec(), types.ErrUnknownAsset.Wrapf("denom %s", denomIn)
	}
	idxOut, ok := pool.AssetIndex(denomOut)
	if !ok {
		return math.LegacyZeroDec(), types.ErrUnknownAsset.Wrapf("denom %s", denomOut)
	}

	now := sdkCtx.BlockTime().Unix()
	return CalcSpotPrice(
		math.LegacyNewDecFromInt(q.keeper.poolBalance(sdkCtx, denomIn)),
		pool.CurrentWeight(idxIn, now).Dec(),
		math.LegacyNewDecFromInt(q.keeper.poolBalance(sdkCtx, denomOut)),
		pool.CurrentWeight(idxOut, now).Dec(),
	)
}

// Shares returns a holder's LP shares in a pool
func (q *QueryServer) Shares(ctx context.Context, poolID, holder string) (math.LegacyDec, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if !q.keeper.HasPool(sdkCtx, poolID) {
		return math.LegacyZeroDec(), types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	return q.keeper.GetShares(sdkCtx, poolID, holder), nil
}
