package keeper

import (
	"cosmossdk.io/math"

	"github.com/paw-chain/stakepool/x/stakepool/types"
)

// AddLiquidity deposits base tokens into the pool and mints LP tokens for
// them. The token reserve is credited before the mint ratio is computed, so
// the minted amount is floor(amount * supplyBefore / reserveAfter); the first
// deposit into an empty pool mints one LP token per deposited token.
func (k *Keeper) AddLiquidity(amount math.Int) (math.Int, error) {
	if err := validateAmount("deposit amount", amount); err != nil {
		k.logger.Warn("deposit rejected", "amount", amount.String(), "error", err.Error())
		return math.ZeroInt(), err
	}

	pool := k.pool

	newReserve, err := SafeAdd(pool.TokenReserve, amount)
	if err != nil {
		return math.ZeroInt(), err
	}

	var minted math.Int
	if pool.LPTokenSupply.IsZero() {
		minted = amount
	} else {
		// The ratio uses the supply before the mint but the reserve after
		// the credit. Keep this ordering: it decides the truncation result.
		minted, err = SafeMulDiv(amount, pool.LPTokenSupply, newReserve)
		if err != nil {
			return math.ZeroInt(), err
		}
	}

	newSupply, err := SafeAdd(pool.LPTokenSupply, minted)
	if err != nil {
		return math.ZeroInt(), err
	}

	pool.TokenReserve = newReserve
	pool.LPTokenSupply = newSupply

	k.logger.Info("liquidity added",
		"amount", amount.String(),
		"minted", minted.String(),
		"token_reserve", pool.TokenReserve.String(),
		"lp_supply", pool.LPTokenSupply.String(),
	)

	return minted, nil
}

// RemoveLiquidity burns LP tokens and pays out the proportional share of both
// reserves, each share floored independently against the pre-burn state.
func (k *Keeper) RemoveLiquidity(lpAmount math.Int) (math.Int, math.Int, error) {
	if err := validateAmount("lp token amount", lpAmount); err != nil {
		k.logger.Warn("withdrawal rejected", "lp_amount", lpAmount.String(), "error", err.Error())
		return math.ZeroInt(), math.ZeroInt(), err
	}

	pool := k.pool

	if lpAmount.GT(pool.LPTokenSupply) {
		err := types.ErrInsufficientLiquidity.Wrapf(
			"lp token amount %s exceeds supply %s", lpAmount, pool.LPTokenSupply)
		k.logger.Warn("withdrawal rejected", "lp_amount", lpAmount.String(), "error", err.Error())
		return math.ZeroInt(), math.ZeroInt(), err
	}

	tokenAmount, err := SafeMulDiv(lpAmount, pool.TokenReserve, pool.LPTokenSupply)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	stakedTokenAmount, err := SafeMulDiv(lpAmount, pool.StakedTokenReserve, pool.LPTokenSupply)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	// Proportional math cannot normally pay out more than a reserve holds;
	// this guards a corrupted pool state.
	if tokenAmount.GT(pool.TokenReserve) || stakedTokenAmount.GT(pool.StakedTokenReserve) {
		return math.ZeroInt(), math.ZeroInt(), types.ErrInsufficientLiquidity.Wrapf(
			"computed payout (%s, %s) exceeds reserves (%s, %s)",
			tokenAmount, stakedTokenAmount, pool.TokenReserve, pool.StakedTokenReserve)
	}

	newReserve, err := SafeSub(pool.TokenReserve, tokenAmount)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	newStakedReserve, err := SafeSub(pool.StakedTokenReserve, stakedTokenAmount)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	newSupply, err := SafeSub(pool.LPTokenSupply, lpAmount)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	pool.TokenReserve = newReserve
	pool.StakedTokenReserve = newStakedReserve
	pool.LPTokenSupply = newSupply

	k.logger.Info("liquidity removed",
		"lp_amount", lpAmount.String(),
		"token_amount", tokenAmount.String(),
		"staked_token_amount", stakedTokenAmount.String(),
		"token_reserve", pool.TokenReserve.String(),
		"staked_token_reserve", pool.StakedTokenReserve.String(),
		"lp_supply", pool.LPTokenSupply.String(),
	)

	return tokenAmount, stakedTokenAmount, nil
}

func validateAmount(name string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrPropertyMustBeGreaterThanZero.Wrap(name)
	}
	return nil
}
