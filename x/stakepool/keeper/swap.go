package keeper

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/stakepool/x/stakepool/types"
)

// Swap converts staked tokens into base tokens at the pool's fixed price,
// charging the dynamic fee taken from the fee curve at the pre-swap reserve.
// The token reserve is debited the gross amount: the fee stays inside the
// pool's base reserve rather than being burned, so it accrues to LPs.
func (k *Keeper) Swap(stakedAmount math.Int) (math.Int, error) {
	if err := validateAmount("staked token amount", stakedAmount); err != nil {
		k.logger.Warn("swap rejected", "staked_amount", stakedAmount.String(), "error", err.Error())
		return math.ZeroInt(), err
	}

	pool := k.pool

	tokenAmount, err := SafeMul(stakedAmount, pool.Params.Price)
	if err != nil {
		return math.ZeroInt(), err
	}

	feePercentage, err := k.FeePercentage()
	if err != nil {
		return math.ZeroInt(), err
	}
	fee, err := SafeMulDiv(tokenAmount, feePercentage, oneHundred)
	if err != nil {
		return math.ZeroInt(), err
	}

	if tokenAmount.GT(pool.TokenReserve) {
		err := types.ErrInsufficientLiquidity.Wrapf(
			"gross amount %s exceeds token reserve %s", tokenAmount, pool.TokenReserve)
		k.logger.Warn("swap rejected", "staked_amount", stakedAmount.String(), "error", err.Error())
		return math.ZeroInt(), err
	}

	// The fee curve is unclamped, so a fee percentage above 100 makes the
	// fee exceed the gross amount; reject that before any state change.
	netAmount, err := SafeSub(tokenAmount, fee)
	if err != nil {
		return math.ZeroInt(), err
	}

	newReserve, err := SafeSub(pool.TokenReserve, tokenAmount)
	if err != nil {
		return math.ZeroInt(), err
	}
	newStakedReserve, err := SafeAdd(pool.StakedTokenReserve, stakedAmount)
	if err != nil {
		return math.ZeroInt(), err
	}

	pool.TokenReserve = newReserve
	pool.StakedTokenReserve = newStakedReserve

	k.logger.Info("swap executed",
		"staked_amount", stakedAmount.String(),
		"gross_amount", tokenAmount.String(),
		"fee_percentage", feePercentage.String(),
		"fee", fee.String(),
		"net_amount", netAmount.String(),
		"token_reserve", pool.TokenReserve.String(),
		"staked_token_reserve", pool.StakedTokenReserve.String(),
	)

	return netAmount, nil
}
