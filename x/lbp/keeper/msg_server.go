package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// MsgServer defines the lbp MsgServer
type MsgServer struct {
	keeper *Keeper
}

// NewMsgServerImpl creates a new MsgServer instance
func NewMsgServerImpl(keeper *Keeper) *MsgServer {
	return &MsgServer{keeper: keeper}
}

// CreatePool handles MsgCreatePool
func (m *MsgServer) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	weights, err := types.ParseWeightVector(msg.Weights)
	if err != nil {
		return nil, err
	}
	swapFee, err := math.LegacyNewDecFromStr(msg.SwapFee)
	if err != nil {
		return nil, types.ErrInvalidSwapFee.Wrap(err.Error())
	}

	pool, err := m.keeper.CreatePool(sdkCtx, msg.Owner, msg.PoolID, msg.Assets, weights, swapFee, msg.SwapEnabled)
	if err != nil {
		return nil, err
	}

	return &types.MsgCreatePoolResponse{
		PoolID:         pool.PoolID,
		MaxWeightIndex: pool.MaxWeightIndex,
	}, nil
}

// ScheduleWeightUpdate handles MsgScheduleWeightUpdate
func (m *MsgServer) ScheduleWeightUpdate(ctx context.Context, msg *types.MsgScheduleWeightUpdate) (*types.MsgScheduleWeightUpdateResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	endWeights, err := types.ParseWeightVector(msg.EndWeights)
	if err != nil {
		return nil, err
	}

	effectiveStart, err := m.keeper.ScheduleGradualWeightUpdate(sdkCtx, msg.Owner, msg.PoolID, msg.StartTime, msg.EndTime, endWeights)
	if err != nil {
		return nil, err
	}

	startWeights, err := m.keeper.GetNormalizedWeights(sdkCtx, msg.PoolID)
	if err != nil {
		return nil, err
	}
	rendered := make([]string, 0, startWeights.Len())
	for _, d := range startWeights.Decs() {
		rendered = append(rendered, d.String())
	}

	return &types.MsgScheduleWeightUpdateResponse{
		EffectiveStartTime: effectiveStart,
		EndTime:            msg.EndTime,
		StartWeights:       rendered,
	}, nil
}

// SetSwapEnabled handles MsgSetSwapEnabled
func (m *MsgServer) SetSwapEnabled(ctx context.Context, msg *types.MsgSetSwapEnabled) (*types.MsgSetSwapEnabledResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if err := m.keeper.SetSwapEnabled(sdkCtx, msg.Owner, msg.PoolID, msg.Enabled); err != nil {
		return nil, err
	}
	return &types.MsgSetSwapEnabledResponse{Enabled: msg.Enabled}, nil
}

// PokeWeights handles MsgPokeWeights
func (m *MsgServer) PokeWeights(ctx context.Context, msg *types.MsgPokeWeights) (*types.MsgPokeWeightsResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	folded, err := m.keeper.PokeWeights(sdkCtx, msg.PoolID)
	if err != nil {
		return nil, err
	}
	return &types.MsgPokeWeightsResponse{Folded: folded}, nil
}

// JoinPool handles MsgJoinPool
func (m *MsgServer) JoinPool(ctx context.Context, msg *types.MsgJoinPool) (*types.MsgJoinPoolResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	amounts := make([]math.Int, 0, len(msg.Amounts))
	for _, s := range msg.Amounts {
		amt, ok := math.NewIntFromString(s)
		if !ok {
			return nil, types.ErrZeroAmount.Wrapf("invalid amount %q", s)
		}
		amounts = append(amounts, amt)
	}

	shares, err := m.keeper.JoinPool(sdkCtx, msg.Sender, msg.PoolID, amounts)
	if err != nil {
		return nil, err
	}
	return &types.MsgJoinPoolResponse{SharesMinted: shares.String()}, nil
}

// ExitPool handles MsgExitPool
func (m *MsgServer) ExitPool(ctx context.Context, msg *types.MsgExitPool) (*types.MsgExitPoolResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	shares, err := math.LegacyNewDecFromStr(msg.Shares)
	if err != nil {
		return nil, types.ErrInsufficientShares.Wrap(err.Error())
	}

	coins, err := m.keeper.ExitPool(sdkCtx, msg.Sender, msg.PoolID, shares)
	if err != nil {
		return nil, err
	}

	out := make([]string, 0, len(coins))
	for _, c := range coins {
		out = append(out, c.String())
	}
	return &types.MsgExitPoolResponse{AmountsOut: out}, nil
}

// Swap handles MsgSwap
func (m *MsgServer) Swap(ctx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	amountIn, ok := math.NewIntFromString(msg.AmountIn)
	if !ok {
		return nil, types.ErrZeroAmount.Wrapf("invalid amount %q", msg.AmountIn)
	}
	minOut := math.ZeroInt()
	if msg.MinAmountOut != "" {
		minOut, ok = math.NewIntFromString(msg.MinAmountOut)
		if !ok {
			return nil, types.ErrZeroAmount.Wrapf("invalid min amount %q", msg.MinAmountOut)
		}
	}

	amountOut, fee, err := m.keeper.Swap(sdkCtx, msg.Trader, msg.PoolID, msg.DenomIn, msg.DenomOut, amountIn, minOut)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapResponse{
		AmountOut: amountOut.String(),
		FeePaid:   fee.String(),
	}, nil
}
