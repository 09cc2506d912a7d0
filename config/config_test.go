package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/paw-chain/stakepool/config"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
pool:
  price: 100
  fee_min: 1
  fee_max: 5
  liquidity_target: 2000
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, uint64(100), cfg.Pool.Price)
	require.Equal(t, uint64(1), cfg.Pool.FeeMin)
	require.Equal(t, uint64(5), cfg.Pool.FeeMax)
	require.Equal(t, uint64(2000), cfg.Pool.LiquidityTarget)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
pool:
  price: 100
  fee_min: 1
  fee_max: 5
  liquidity_target: 2000
`)

	t.Setenv("STAKEPOOL_PRICE", "250")
	t.Setenv("STAKEPOOL_LIQUIDITY_TARGET", "9000")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, uint64(250), cfg.Pool.Price)
	require.Equal(t, uint64(9000), cfg.Pool.LiquidityTarget)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.Pool.FeeMin = cfg.Pool.FeeMax
	require.Error(t, cfg.Validate())

	cfg = config.DefaultConfig()
	cfg.Pool.Price = 0
	require.Error(t, cfg.Validate())
}
