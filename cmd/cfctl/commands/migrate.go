package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campaignfinance/internal/infra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate {up|down|status}",
		Short:     "Apply, roll back or list schema migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(infra.MigrateUp), string(infra.MigrateDown), string(infra.MigrateStatus)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()

			reports, err := infra.Migrate(ctx, cfg.DatabaseURL, direction)
			if err != nil {
				return err
			}
			return printReports(cmd.OutOrStdout(), reports)
		},
	}
	return cmd
}

func parseDirection(arg string) (infra.MigrationDirection, error) {
	switch d := infra.MigrationDirection(arg); d {
	case infra.MigrateUp, infra.MigrateDown, infra.MigrateStatus:
		return d, nil
	default:
		return "", fmt.Errorf("unknown migration direction %q (want up, down or status)", arg)
	}
}

func printReports(out io.Writer, reports []infra.MigrationReport) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(out, "nothing to do")
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tFILE")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", r.Version, r.State, r.Path)
	}
	return tw.Flush()
}
