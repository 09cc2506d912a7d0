package keeper

import (
	"fmt"
)

// Invariant is a check over the keeper's pool state. It returns a
// human-readable description and whether the invariant is broken.
type Invariant func(k *Keeper) (string, bool)

// AllInvariants runs every invariant of the stakepool module and stops at
// the first broken one.
func AllInvariants(k *Keeper) (string, bool) {
	for _, inv := range []Invariant{
		SupplyBackingInvariant,
		NonNegativeStateInvariant,
	} {
		if msg, broken := inv(k); broken {
			return msg, broken
		}
	}
	return "all stakepool invariants hold", false
}

// SupplyBackingInvariant checks that LP tokens exist exactly when backing
// reserves exist: the supply is zero iff both reserves are zero.
func SupplyBackingInvariant(k *Keeper) (string, bool) {
	pool := k.pool
	reservesEmpty := pool.TokenReserve.IsZero() && pool.StakedTokenReserve.IsZero()
	if pool.LPTokenSupply.IsZero() != reservesEmpty {
		return fmt.Sprintf("supply-backing: lp supply %s inconsistent with reserves (%s, %s)",
			pool.LPTokenSupply, pool.TokenReserve, pool.StakedTokenReserve), true
	}
	return "supply-backing: lp supply matches reserves", false
}

// NonNegativeStateInvariant checks that no pool quantity has gone negative.
func NonNegativeStateInvariant(k *Keeper) (string, bool) {
	pool := k.pool
	if pool.TokenReserve.IsNegative() || pool.StakedTokenReserve.IsNegative() || pool.LPTokenSupply.IsNegative() {
		return fmt.Sprintf("non-negative-state: pool holds a negative quantity: (%s, %s, %s)",
			pool.TokenReserve, pool.StakedTokenReserve, pool.LPTokenSupply), true
	}
	return "non-negative-state: all pool quantities are non-negative", false
}
