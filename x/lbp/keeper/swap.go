package keeper

import (
	"encoding/json"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/lbp-labs/lbp-chain/metrics"
	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// ShareKeyPrefix indexes LP share balances by pool and holder.
var ShareKeyPrefix = []byte{0x03}

// initialPoolShares is minted to the first depositor.
var initialPoolShares = math.LegacyNewDec(100)

func shareKey(poolID, holder string) []byte {
	return append(ShareKeyPrefix, []byte(poolID+":"+holder)...)
}

// GetShares returns the LP shares a holder owns in a pool.
func (k *Keeper) GetShares(ctx sdk.Context, poolID, holder string) math.LegacyDec {
	bz := k.GetStore(ctx).Get(shareKey(poolID, holder))
	if bz == nil {
		return math.LegacyZeroDec()
	}
	var shares math.LegacyDec
	if err := json.Unmarshal(bz, &shares); err != nil {
		return math.LegacyZeroDec()
	}
	return shares
}

func (k *Keeper) setShares(ctx sdk.Context, poolID, holder string, shares math.LegacyDec) {
	store := k.GetStore(ctx)
	if shares.IsZero() {
		store.Delete(shareKey(poolID, holder))
		return
	}
	bz, _ := json.Marshal(shares)
	store.Set(shareKey(poolID, holder), bz)
}

// moduleAddress is where pool balances are held in custody.
func moduleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// poolBalance reads the module's custody balance for one pool asset.
func (k *Keeper) poolBalance(ctx sdk.Context, denom string) math.Int {
	return k.bankKeeper.GetBalance(ctx, moduleAddress(), denom).Amount
}

// JoinPool deposits every pool asset and mints LP shares. Open to anyone.
//
// Like every balance-changing lifecycle path it first folds any completed
// schedule and refreshes the max-weight cache, so accounting below never
// sees a stale weight state.
func (k *Keeper) JoinPool(ctx sdk.Context, sender, poolID string, amounts []math.Int) (math.LegacyDec, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return math.LegacyZeroDec(), types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	if len(amounts) != pool.AssetCount() {
		return math.LegacyZeroDec(), types.ErrLengthMismatch.Wrapf("%d amounts for %d assets", len(amounts), pool.AssetCount())
	}
	for _, amt := range amounts {
		if !amt.IsPositive() {
			return math.LegacyZeroDec(), types.ErrZeroAmount
		}
	}

	now := ctx.BlockTime().Unix()
	pool.FoldCompleted(now)
	pool.MaxWeightIndex = pool.CurrentWeights(now).MaxIndex()

	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return math.LegacyZeroDec(), err
	}

	// Shares follow the smallest deposit ratio so joins cannot dilute
	// existing holders; the first join sets the share scale.
	var shares math.LegacyDec
	if pool.TotalShares.IsZero() {
		shares = initialPoolShares
	} else {
		for i, denom := range pool.Assets {
			balance := k.poolBalance(ctx, denom)
			if balance.IsZero() {
				return math.LegacyZeroDec(), types.ErrEmptyPoolBalance.Wrapf("denom %s", denom)
			}
			ratio := math.LegacyNewDecFromInt(amounts[i]).QuoInt(balance)
			minted := pool.TotalShares.Mul(ratio)
			if i == 0 || minted.LT(shares) {
				shares = minted
			}
		}
		if shares.IsZero() {
			return math.LegacyZeroDec(), types.ErrZeroAmount
		}
	}

	coins := sdk.NewCoins()
	for i, denom := range pool.Assets {
		coins = coins.Add(sdk.NewCoin(denom, amounts[i]))
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, coins); err != nil {
		return math.LegacyZeroDec(), err
	}

	pool.TotalShares = pool.TotalShares.Add(shares)
	pool.UpdatedAt = now
	k.SetPool(ctx, pool)
	k.setShares(ctx, poolID, sender, k.GetShares(ctx, poolID, sender).Add(shares))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lbp_join_pool",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("sender", sender),
			sdk.NewAttribute("shares", shares.String()),
		),
	)

	metrics.GetCollector().JoinsTotal.WithLabelValues(poolID).Inc()
	k.logger.Info("Pool joined", "pool_id", poolID, "sender", sender, "shares", shares.String())
	return shares, nil
}

// ExitPool burns LP shares for a proportional cut of every pool asset.
func (k *Keeper) ExitPool(ctx sdk.Context, sender, poolID string, shares math.LegacyDec) (sdk.Coins, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return nil, types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	if shares.IsNil() || !shares.IsPositive() {
		return nil, types.ErrZeroAmount
	}
	held := k.GetShares(ctx, poolID, sender)
	if held.LT(shares) {
		return nil, types.ErrInsufficientShares.Wrapf("have %s, want %s", held, shares)
	}

	now := ctx.BlockTime().Unix()
	pool.FoldCompleted(now)
	pool.MaxWeightIndex = pool.CurrentWeights(now).MaxIndex()

	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return nil, err
	}

	ratio := shares.Quo(pool.TotalShares)
	coins := sdk.NewCoins()
	for _, denom := range pool.Assets {
		balance := k.poolBalance(ctx, denom)
		amount := math.LegacyNewDecFromInt(balance).Mul(ratio).TruncateInt()
		if amount.IsPositive() {
			coins = coins.Add(sdk.NewCoin(denom, amount))
		}
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, senderAddr, coins); err != nil {
		return nil, err
	}

	pool.TotalShares = pool.TotalShares.Sub(shares)
	pool.UpdatedAt = now
	k.SetPool(ctx, pool)
	k.setShares(ctx, poolID, sender, held.Sub(shares))

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lbp_exit_pool",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("sender", sender),
			sdk.NewAttribute("shares", shares.String()),
			sdk.NewAttribute("amounts_out", coins.String()),
		),
	)

	metrics.GetCollector().ExitsTotal.WithLabelValues(poolID).Inc()
	k.logger.Info("Pool exited", "pool_id", poolID, "sender", sender, "shares", shares.String())
	return coins, nil
}

// Swap trades denomIn for denomOut at the pool's current weights.
//
// Swap paths read interpolated weights directly and never fold, keeping
// their cost bounded; folding is left to join/exit, pokes and the
// end-blocker sweep.
func (k *Keeper) Swap(ctx sdk.Context, trader, poolID, denomIn, denomOut string, amountIn, minAmountOut math.Int) (math.Int, math.Int, error) {
	pool := k.GetPool(ctx, poolID)
	if pool == nil {
		return math.ZeroInt(), math.ZeroInt(), types.ErrPoolNotFound.Wrapf("pool %s", poolID)
	}
	if !pool.SwapEnabled {
		metrics.GetCollector().SwapsRejected.WithLabelValues(poolID, "disabled").Inc()
		return math.ZeroInt(), math.ZeroInt(), types.ErrSwapsDisabled
	}
	idxIn, ok := pool.AssetIndex(denomIn)
	if !ok {
		return math.ZeroInt(), math.ZeroInt(), types.ErrUnknownAsset.Wrapf("denom %s", denomIn)
	}
	idxOut, ok := pool.AssetIndex(denomOut)
	if !ok {
		return math.ZeroInt(), math.ZeroInt(), types.ErrUnknownAsset.Wrapf("denom %s", denomOut)
	}
	if idxIn == idxOut {
		return math.ZeroInt(), math.ZeroInt(), types.ErrSameAsset
	}
	if !amountIn.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrZeroAmount
	}

	now := ctx.BlockTime().Unix()
	weightIn := pool.CurrentWeight(idxIn, now).Dec()
	weightOut := pool.CurrentWeight(idxOut, now).Dec()

	balanceIn := k.poolBalance(ctx, denomIn)
	balanceOut := k.poolBalance(ctx, denomOut)
	if balanceIn.IsZero() || balanceOut.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrEmptyPoolBalance
	}

	fee := math.LegacyNewDecFromInt(amountIn).Mul(pool.SwapFee).Ceil().TruncateInt()
	amountInAfterFee := amountIn.Sub(fee)
	if !amountInAfterFee.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrZeroAmount.Wrap("amount consumed entirely by fee")
	}

	outDec, err := CalcOutGivenIn(
		math.LegacyNewDecFromInt(balanceIn), weightIn,
		math.LegacyNewDecFromInt(balanceOut), weightOut,
		math.LegacyNewDecFromInt(amountInAfterFee),
	)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	amountOut := outDec.TruncateInt()
	if !amountOut.IsPositive() {
		return math.ZeroInt(), math.ZeroInt(), types.ErrZeroAmount.Wrap("swap output rounds to zero")
	}
	if !minAmountOut.IsNil() && amountOut.LT(minAmountOut) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrSlippageExceeded.Wrapf("out %s below min %s", amountOut, minAmountOut)
	}

	traderAddr, err := sdk.AccAddressFromBech32(trader)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, traderAddr, types.ModuleName, sdk.NewCoins(sdk.NewCoin(denomIn, amountIn))); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, traderAddr, sdk.NewCoins(sdk.NewCoin(denomOut, amountOut))); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			"lbp_swap",
			sdk.NewAttribute("pool_id", poolID),
			sdk.NewAttribute("trader", trader),
			sdk.NewAttribute("denom_in", denomIn),
			sdk.NewAttribute("denom_out", denomOut),
			sdk.NewAttribute("amount_in", amountIn.String()),
			sdk.NewAttribute("amount_out", amountOut.String()),
			sdk.NewAttribute("fee", fee.String()),
			sdk.NewAttribute("block_time", strconv.FormatInt(now, 10)),
		),
	)

	c := metrics.GetCollector()
	c.SwapsTotal.WithLabelValues(poolID).Inc()
	if amountIn.IsInt64() {
		c.SwapVolume.WithLabelValues(poolID, denomIn).Add(float64(amountIn.Int64()))
	}

	k.logger.Info("Swap executed",
		"pool_id", poolID,
		"trader", trader,
		"in", denomIn,
		"out", denomOut,
		"amount_in", amountIn.String(),
		"amount_out", amountOut.String(),
	)

	return amountOut, fee, nil
}
