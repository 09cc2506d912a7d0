package types

import (
	"cosmossdk.io/math"
)

// Params holds the fixed configuration of a pool. All four values are set at
// construction and never change for the pool's lifetime.
type Params struct {
	// Price is the fixed exchange rate of staked token to base token,
	// expressed in base units per staked unit.
	Price math.Int `yaml:"price"`

	// FeeMin and FeeMax are the inclusive bounds of the dynamic swap fee,
	// in whole percent.
	FeeMin math.Int `yaml:"fee_min"`
	FeeMax math.Int `yaml:"fee_max"`

	// LiquidityTarget is the base token reserve level at which the fee
	// curve reaches FeeMax.
	LiquidityTarget math.Int `yaml:"liquidity_target"`
}

// NewParams creates a new Params instance
func NewParams(price, feeMin, feeMax, liquidityTarget math.Int) Params {
	return Params{
		Price:           price,
		FeeMin:          feeMin,
		FeeMax:          feeMax,
		LiquidityTarget: liquidityTarget,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return Params{
		Price:           math.NewInt(5),
		FeeMin:          math.NewInt(1),    // 1%
		FeeMax:          math.NewInt(9),    // 9%
		LiquidityTarget: math.NewInt(1000),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validatePositive("price", p.Price); err != nil {
		return err
	}
	if err := validatePositive("fee min", p.FeeMin); err != nil {
		return err
	}
	if err := validatePositive("fee max", p.FeeMax); err != nil {
		return err
	}
	if err := validatePositive("liquidity target", p.LiquidityTarget); err != nil {
		return err
	}
	if p.FeeMin.GTE(p.FeeMax) {
		return ErrFeeMaxMustBeGreaterThanFeeMin.Wrapf(
			"fee min %s, fee max %s", p.FeeMin, p.FeeMax)
	}
	return nil
}

func validatePositive(name string, v math.Int) error {
	if v.IsNil() || !v.IsPositive() {
		return ErrPropertyMustBeGreaterThanZero.Wrap(name)
	}
	return nil
}
