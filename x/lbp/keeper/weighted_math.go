package keeper

import (
	"cosmossdk.io/math"

	"github.com/lbp-labs/lbp-chain/x/lbp/types"
)

// Weighted constant-product pricing for two assets of the pool:
//
//	amountOut = balanceOut * (1 - (balanceIn / (balanceIn + amountIn))^(weightIn/weightOut))
//
// The fractional power is evaluated with a binomial series, which
// converges for bases in (0, 1]. That is always the case here since the
// base is a balance ratio below one.

// powPrecision bounds the series truncation error.
var powPrecision = math.LegacyNewDecWithPrec(1, 11)

// powApprox computes base^exp for base in (0, 2), 0 < exp < 1, by the
// binomial expansion of (1 + x)^exp around x = base - 1.
func powApprox(base, exp math.LegacyDec) math.LegacyDec {
	if exp.IsZero() {
		return math.LegacyOneDec()
	}

	x := base.Sub(math.LegacyOneDec())
	term := math.LegacyOneDec()
	sum := math.LegacyOneDec()

	for i := int64(1); ; i++ {
		k := math.LegacyNewDec(i)
		coeff := exp.Sub(k.Sub(math.LegacyOneDec()))
		term = term.Mul(coeff).Mul(x).Quo(k)
		if term.Abs().LT(powPrecision) {
			break
		}
		sum = sum.Add(term)
	}
	return sum
}

// decPow computes base^exp for positive base and non-negative exp,
// splitting the exponent into integer and fractional parts.
func decPow(base, exp math.LegacyDec) math.LegacyDec {
	if base.IsZero() {
		return math.LegacyZeroDec()
	}
	integer := exp.TruncateInt64()
	fractional := exp.Sub(math.LegacyNewDec(integer))

	result := base.Power(uint64(integer))
	if fractional.IsZero() {
		return result
	}
	return result.Mul(powApprox(base, fractional))
}

// CalcOutGivenIn returns the output amount of a weighted-pool swap.
// amountIn is the fee-adjusted input.
func CalcOutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn math.LegacyDec) (math.LegacyDec, error) {
	if !balanceIn.IsPositive() || !balanceOut.IsPositive() {
		return math.LegacyZeroDec(), types.ErrEmptyPoolBalance
	}
	if !weightIn.IsPositive() || !weightOut.IsPositive() {
		return math.LegacyZeroDec(), types.ErrInvalidWeightVector.Wrap("zero weight in swap")
	}
	if !amountIn.IsPositive() {
		return math.LegacyZeroDec(), types.ErrZeroAmount
	}

	weightRatio := weightIn.Quo(weightOut)
	base := balanceIn.Quo(balanceIn.Add(amountIn)) // in (0, 1)
	power := decPow(base, weightRatio)
	return balanceOut.Mul(math.LegacyOneDec().Sub(power)), nil
}

// CalcSpotPrice returns the marginal price of denomOut in denomIn,
// before fees: (balanceIn/weightIn) / (balanceOut/weightOut).
func CalcSpotPrice(balanceIn, weightIn, balanceOut, weightOut math.LegacyDec) (math.LegacyDec, error) {
	if !balanceIn.IsPositive() || !balanceOut.IsPositive() {
		return math.LegacyZeroDec(), types.ErrEmptyPoolBalance
	}
	if !weightIn.IsPositive() || !weightOut.IsPositive() {
		return math.LegacyZeroDec(), types.ErrInvalidWeightVector.Wrap("zero weight in spot price")
	}
	return balanceIn.Quo(weightIn).Quo(balanceOut.Quo(weightOut)), nil
}
