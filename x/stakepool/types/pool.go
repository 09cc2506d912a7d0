package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Pool is the single mutable entity of the module. It pairs a base token
// reserve with a staked-derivative reserve and tracks the outstanding LP
// token supply against them. A Pool is exclusively owned by its caller;
// it carries no internal synchronization.
type Pool struct {
	Params Params

	// TokenReserve is the amount of base token held by the pool.
	TokenReserve math.Int

	// StakedTokenReserve is the amount of staked token held by the pool.
	StakedTokenReserve math.Int

	// LPTokenSupply is the total outstanding claim token amount.
	LPTokenSupply math.Int
}

// NewPool creates a pool with validated params and zeroed reserves and supply.
func NewPool(params Params) (*Pool, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Pool{
		Params:             params,
		TokenReserve:       math.ZeroInt(),
		StakedTokenReserve: math.ZeroInt(),
		LPTokenSupply:      math.ZeroInt(),
	}, nil
}

// Validate checks the running state invariant: no quantity is negative, and
// the LP supply is zero exactly when both reserves are zero.
func (p *Pool) Validate() error {
	if p.TokenReserve.IsNegative() || p.StakedTokenReserve.IsNegative() || p.LPTokenSupply.IsNegative() {
		return fmt.Errorf("pool state contains a negative quantity: reserve %s, staked reserve %s, supply %s",
			p.TokenReserve, p.StakedTokenReserve, p.LPTokenSupply)
	}

	reservesEmpty := p.TokenReserve.IsZero() && p.StakedTokenReserve.IsZero()
	if p.LPTokenSupply.IsZero() != reservesEmpty {
		return fmt.Errorf("claim supply %s does not match reserves: reserve %s, staked reserve %s",
			p.LPTokenSupply, p.TokenReserve, p.StakedTokenReserve)
	}
	return nil
}

func (p *Pool) String() string {
	return fmt.Sprintf("Pool{reserve: %s, staked_reserve: %s, lp_supply: %s}",
		p.TokenReserve, p.StakedTokenReserve, p.LPTokenSupply)
}
