package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/paw-chain/stakepool/x/stakepool/keeper"
)

func TestAllInvariants_FreshPool(t *testing.T) {
	k := newTestKeeper(t, 100, 1, 2, 1000)

	_, broken := keeper.AllInvariants(k)
	require.False(t, broken)
}

func TestAllInvariants_AfterOperations(t *testing.T) {
	k := newTestKeeper(t, 5, 1, 9, 1000)

	_, err := k.AddLiquidity(math.NewInt(10))
	require.NoError(t, err)
	_, err = k.AddLiquidity(math.NewInt(20))
	require.NoError(t, err)
	_, err = k.Swap(math.NewInt(3))
	require.NoError(t, err)
	_, _, err = k.RemoveLiquidity(math.NewInt(10))
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)
	require.False(t, broken, msg)
}

func TestSupplyBackingInvariant_Broken(t *testing.T) {
	k := newTestKeeper(t, 100, 1, 2, 1000)
	k.Pool().LPTokenSupply = math.NewInt(100)

	_, broken := keeper.SupplyBackingInvariant(k)
	require.True(t, broken)
}

func TestNonNegativeStateInvariant_Broken(t *testing.T) {
	k := newTestKeeper(t, 100, 1, 2, 1000)
	k.Pool().TokenReserve = math.NewInt(-1)

	_, broken := keeper.NonNegativeStateInvariant(k)
	require.True(t, broken)
}
