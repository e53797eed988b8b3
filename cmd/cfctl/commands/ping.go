package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"campaignfinance/internal/adapter/cache"
)

func pingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check database and cache connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()

			pool, err := openPool(ctx)
			if err != nil {
				return err
			}
			pool.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "postgres: ok")

			if cfg.RedisURL == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "redis: not configured")
				return nil
			}
			store, err := cache.NewRedisStore(ctx, cfg.RedisURL)
			if err != nil {
				return err
			}
			defer store.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "redis: ok")
			return nil
		},
	}
}
