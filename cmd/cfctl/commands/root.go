// Package commands implements cfctl, the operator CLI for the campaign
// finance database.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"campaignfinance/internal/infra"
)

var (
	cfg     *infra.Config
	logger  zerolog.Logger
	timeout time.Duration
	verbose bool
)

func Execute() error {
	root := &cobra.Command{
		Use:           "cfctl",
		Short:         "Operate the campaign finance database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := infra.LoadConfig()
			if err != nil {
				return err
			}
			cfg = loaded
			level := zerolog.WarnLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
			return nil
		},
	}

	root.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "overall command timeout")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log SQL markers and timings")

	root.AddCommand(migrateCmd(), searchCmd(), pingCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cfctl:", err)
		return err
	}
	return nil
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}

func openPool(ctx context.Context) (*pgxpool.Pool, error) {
	return infra.NewDBPool(ctx, cfg)
}
