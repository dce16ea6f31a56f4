package keeper

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"
	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// CreatePool initializes a new liquidity bootstrapping pool with a
// validated fixed weight vector. An empty poolID gets a generated one.
func (k *Keeper) CreatePool(
	ctx sdk.Context,
	owner string,
	poolID string,
	assets []string,
	weights types.WeightVector,
	swapFee math.LegacyDec,
	swapEnabled bool,
) (*types.Pool, error) {
	if len(assets) < types.MinPoolAssets {
		return nil, types.ErrTooFewAssets.Wrapf("got %d assets, need at least %d", len(assets), types.MinPoolAssets)
	}
	if len(assets) > types.MaxPoolAssets {
		return nil, types.ErrTooManyAssets.Wrapf("got %d assets, max %d", len(assets), types.MaxPoolAssets)
	}
	if weights.Len() != len(assets) {
		return nil, types.ErrLengthMismatch.Wrapf("%d weights for %d assets", weights.Len(), len(assets))
	}
	seen := make(map[string]struct{}, len(assets))
	for _, denom := range assets {
		if err := sdk.ValidateDenom(denom); err != nil {
			return nil, types.ErrUnknownAsset.Wrapf("invalid denom %q", denom)
		}
		if _, dup := seen[denom]; dup {
			return nil, types.ErrUnknownAsset.Wrapf("duplicate denom %q", denom)
		}
		seen[denom] = struct{}{}
	}

	params := k.GetParams(ctx)
	if err := weights.Validate(params.MinWeight); err != nil {
		return nil, err
	}
	if swapFee.IsNil() || swapFee.LT(params.MinSwapFee) || swapFee.GT(params.MaxSwapFee) {
		return nil, types.ErrInvalidSwapFee.Wrapf("fee %s outside [%s, %s]", swapFee, params.MinSwapFee, params.MaxSwapFee)
	}

	if poolID == "" {
		poolID = fmt.Sprintf("lbp-%s", uuid.NewString()[:8])
	}
	// ":" separates pool ID from holder in share keys
	if strings.Contains(poolID, ":") {
		return nil, types.ErrInvalidPoolID.Wrapf("pool id %q must not contain ':'", poolID)
	}
	if k.HasPool(ctx, poolID) {
		return nil, types.ErrPoolExists.Wrapf("pool %s", poolID)
	}

	now := ctx.BlockTime().Unix()
	pool := types.NewPool(poolID, owner, assets, weights, swapFee, swapEnabled, now)
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lbp_pool_created",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("owner", owner),
			sdk.NewAttribute("assets", strings.Join(assets, ",")),
			sdk.NewAttribute("swap_fee", swapFee.String()),
		),
	)

	k.logger.Info("Pool created",
		"pool_id", poolID,
		"owner", owner,
		"assets", len(assets),
		"max_weight_index", pool.MaxWeightIndex,
	)

	return pool, nil
}

// SetSwapEnabled toggles the swap gate. Owner only.
func (k *Keeper) SetSwapEnabled(ctx sdk.Context, owner, poolID string, enabled bool) error {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	if pool.Owner != owner {
		return types.ErrNotOwner
	}

	pool.SwapEnabled = enabled
	pool.UpdatedAt = ctx.BlockTime().Unix()
	k.SetPool(ctx, pool)

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lbp_swap_enabled_set",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("enabled", fmt.Sprintf("%t", enabled)),
		),
	)

	k.logger.Info("Swap gate updated", "pool_id", poolID, "enabled", enabled)
	return nil
}
