package main

import (
	"fmt"
	"os"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/paw-chain/stakepool/config"
	"github.com/paw-chain/stakepool/pkg/logger"
	"github.com/paw-chain/stakepool/x/stakepool/keeper"
	"github.com/paw-chain/stakepool/x/stakepool/types"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "stakepoold",
		Short:   "Staked-token liquidity pool accounting engine",
		Version: version,
	}
	rootCmd.AddCommand(newSimulateCmd())
	return rootCmd
}

func newSimulateCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a demonstration call sequence against a fresh pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.NewLogger("stakepoold")

			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.LoadConfig(configPath)
				if err != nil {
					log.Error("Failed to load configuration", "error", err)
					return err
				}
				cfg = loaded
			}
			if err := cfg.Validate(); err != nil {
				log.Error("Invalid configuration", "error", err)
				return err
			}

			params := types.NewParams(
				math.NewIntFromUint64(cfg.Pool.Price),
				math.NewIntFromUint64(cfg.Pool.FeeMin),
				math.NewIntFromUint64(cfg.Pool.FeeMax),
				math.NewIntFromUint64(cfg.Pool.LiquidityTarget),
			)

			k, err := keeper.NewKeeper(params, log)
			if err != nil {
				log.Error("Failed to construct pool", "error", err)
				return err
			}
			log.Info("Pool constructed",
				"price", params.Price.String(),
				"fee_min", params.FeeMin.String(),
				"fee_max", params.FeeMax.String(),
				"liquidity_target", params.LiquidityTarget.String(),
			)

			minted1, err := k.AddLiquidity(math.NewInt(10))
			if err != nil {
				return err
			}
			log.Info("Minted", "lp_tokens", minted1.String())

			minted2, err := k.AddLiquidity(math.NewInt(20))
			if err != nil {
				return err
			}
			log.Info("Minted", "lp_tokens", minted2.String())

			received, err := k.Swap(math.NewInt(3))
			if err != nil {
				return err
			}
			log.Info("Tokens received from swap", "amount", received.String())

			tokens, stakedTokens, err := k.RemoveLiquidity(math.NewInt(10))
			if err != nil {
				return err
			}
			log.Info("Tokens returned",
				"token_amount", tokens.String(),
				"staked_token_amount", stakedTokens.String(),
			)

			if msg, broken := keeper.AllInvariants(k); broken {
				log.Error("Invariant broken", "invariant", msg)
				return fmt.Errorf("invariant broken: %s", msg)
			}

			log.Info("Final pool state", "pool", k.Pool().String())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to configuration file")
	return cmd
}
