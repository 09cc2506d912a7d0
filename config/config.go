package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the stakepool demo binary
type Config struct {
	Pool PoolConfig `yaml:"pool"`
}

// PoolConfig holds the pool construction parameters. All values are in
// whole token units or whole percent; fractional values are not accepted
// anywhere in the engine.
type PoolConfig struct {
	Price           uint64 `yaml:"price"`
	FeeMin          uint64 `yaml:"fee_min"`
	FeeMax          uint64 `yaml:"fee_max"`
	LiquidityTarget uint64 `yaml:"liquidity_target"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Pool: PoolConfig{
			Price:           5,
			FeeMin:          1,
			FeeMax:          9,
			LiquidityTarget: 1000,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return &cfg, nil
}

// applyEnvOverrides applies environment variable overrides
func (c *Config) applyEnvOverrides() {
	if v, ok := envUint("STAKEPOOL_PRICE"); ok {
		c.Pool.Price = v
	}
	if v, ok := envUint("STAKEPOOL_FEE_MIN"); ok {
		c.Pool.FeeMin = v
	}
	if v, ok := envUint("STAKEPOOL_FEE_MAX"); ok {
		c.Pool.FeeMax = v
	}
	if v, ok := envUint("STAKEPOOL_LIQUIDITY_TARGET"); ok {
		c.Pool.LiquidityTarget = v
	}
}

func envUint(name string) (uint64, bool) {
	raw := os.Getenv(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Pool.Price == 0 {
		return fmt.Errorf("pool price is required")
	}
	if c.Pool.FeeMin == 0 {
		return fmt.Errorf("pool fee_min is required")
	}
	if c.Pool.FeeMax == 0 {
		return fmt.Errorf("pool fee_max is required")
	}
	if c.Pool.LiquidityTarget == 0 {
		return fmt.Errorf("pool liquidity_target is required")
	}
	if c.Pool.FeeMin >= c.Pool.FeeMax {
		return fmt.Errorf("pool fee_max must be greater than fee_min")
	}
	return nil
}
