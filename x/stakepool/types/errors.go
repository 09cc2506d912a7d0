package types

import (
	"cosmossdk.io/errors"
)

// Stakepool module sentinel errors
var (
	ErrPropertyMustBeGreaterThanZero = errors.Register(ModuleName, 2, "property must be greater than zero")
	ErrFeeMaxMustBeGreaterThanFeeMin = errors.Register(ModuleName, 3, "fee max must be greater than fee min")
	ErrInsufficientLiquidity         = errors.Register(ModuleName, 4, "insufficient liquidity in pool")
	ErrOverflow                      = errors.Register(ModuleName, 5, "arithmetic overflow")
)
