package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/stakepool/x/stakepool/types"
)

func TestNewPool_Valid(t *testing.T) {
	pool, err := types.NewPool(types.DefaultParams())
	require.NoError(t, err)

	require.True(t, pool.TokenReserve.IsZero())
	require.True(t, pool.StakedTokenReserve.IsZero())
	require.True(t, pool.LPTokenSupply.IsZero())
	require.NoError(t, pool.Validate())
}

func TestNewPool_InvalidParams(t *testing.T) {
	params := types.NewParams(
		math.NewInt(100),
		math.NewInt(5),
		math.NewInt(4),
		math.NewInt(1000),
	)

	_, err := types.NewPool(params)
	require.Error(t, err)
	require.ErrorIs(t, err, types.ErrFeeMaxMustBeGreaterThanFeeMin)
}

func TestPool_Validate(t *testing.T) {
	pool, err := types.NewPool(types.DefaultParams())
	require.NoError(t, err)

	// Backed state holds.
	pool.TokenReserve = math.NewInt(200)
	pool.StakedTokenReserve = math.NewInt(300)
	pool.LPTokenSupply = math.NewInt(500)
	require.NoError(t, pool.Validate())

	// Claims without backing.
	pool.TokenReserve = math.ZeroInt()
	pool.StakedTokenReserve = math.ZeroInt()
	require.Error(t, pool.Validate())

	// Backing without claims.
	pool.TokenReserve = math.NewInt(200)
	pool.LPTokenSupply = math.ZeroInt()
	require.Error(t, pool.Validate())

	// Negative quantity.
	pool.TokenReserve = math.NewInt(-1)
	require.Error(t, pool.Validate())
}

func TestPool_String(t *testing.T) {
	pool, err := types.NewPool(types.DefaultParams())
	require.NoError(t, err)
	require.NotEmpty(t, pool.String())
}
