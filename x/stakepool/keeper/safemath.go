package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/paw-chain/stakepool/x/stakepool/types"
)

// Overflow-safe arithmetic for the pool engine. All products are computed in
// a widened big.Int and checked against the 256-bit bound of math.Int before
// conversion, so no operation can wrap or panic. Division always truncates
// toward zero.

var maxInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.CmpAbs(maxInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("addition %s + %s exceeds maximum value", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a with underflow checking
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrOverflow.Wrapf("underflow: cannot subtract %s from %s", b, a)
	}
	result := new(big.Int).Sub(a.BigInt(), b.BigInt())
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.CmpAbs(maxInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("multiplication %s * %s exceeds maximum value", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMulDiv performs floor((a * b) / c) with the product computed in a
// widened intermediate, so the result is exact for any operands that fit
// in math.Int. This is the ratio primitive behind minting, withdrawal and
// fee calculations.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrOverflow.Wrap("division by zero")
	}

	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.CmpAbs(maxInt) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("multiplication %s * %s exceeds maximum value", a, b)
	}

	result := new(big.Int).Quo(intermediate, c.BigInt())
	return math.NewIntFromBigInt(result), nil
}
