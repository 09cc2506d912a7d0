package keeper

import (
	"cosmossdk.io/math"
)

var oneHundred = math.NewInt(100)

// FeePercentage evaluates the fee curve at the current token reserve and
// returns the swap fee in whole percent.
//
// The curve is piecewise linear: FeeMin at an empty reserve, FeeMax when the
// reserve sits at the liquidity target, and it keeps climbing past FeeMax
// when the reserve exceeds the target. No clamp is applied above FeeMax.
func (k *Keeper) FeePercentage() (math.Int, error) {
	pool := k.pool
	return calculateFeePercentage(
		pool.TokenReserve,
		pool.Params.LiquidityTarget,
		pool.Params.FeeMin,
		pool.Params.FeeMax,
	)
}

// calculateFeePercentage is the pure fee curve. It truncates twice, first
// the liquidity ratio and then the scaled fee spread, in that order; the
// two floors are part of the curve's definition and must not be collapsed
// into a single higher-precision division.
func calculateFeePercentage(tokenReserve, liquidityTarget, feeMin, feeMax math.Int) (math.Int, error) {
	// liquidityTarget is non-zero by construction invariant.
	liquidityRatio, err := SafeMulDiv(tokenReserve, oneHundred, liquidityTarget)
	if err != nil {
		return math.Int{}, err
	}

	scaled, err := SafeMulDiv(liquidityRatio, feeMax.Sub(feeMin), oneHundred)
	if err != nil {
		return math.Int{}, err
	}

	return SafeAdd(feeMin, scaled)
}
