package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"campaignfinance/internal/adapter/repo"
	"campaignfinance/internal/domain"
	"campaignfinance/internal/infra"
	"campaignfinance/internal/normalize"
)

var (
	searchLimit     int
	searchOffset    int
	searchThreshold float64
)

func searchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run the API's fuzzy name searches from the terminal",
	}
	cmd.PersistentFlags().IntVar(&searchLimit, "limit", 20, "rows to show")
	cmd.PersistentFlags().IntVar(&searchOffset, "offset", 0, "rows to skip")
	cmd.PersistentFlags().Float64Var(&searchThreshold, "threshold", 0, "similarity threshold in [0.3, 1] (default TRIGRAM_THRESHOLD)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "contributors NAME",
			Short: "Search contributors by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, page, err := searchInput(args[0])
				if err != nil {
					return err
				}
				ctx, cancel := commandContext(cmd)
				defer cancel()
				pool, err := openPool(ctx)
				if err != nil {
					return err
				}
				defer pool.Close()

				res, err := repo.NewContributorRepository(infra.NewSQLRunner(pool, logger)).Search(ctx, q, page)
				if err != nil {
					return err
				}
				return printContributorMatches(cmd.OutOrStdout(), res)
			},
		},
		&cobra.Command{
			Use:   "candidates NAME",
			Short: "Search committees and candidates by name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				q, page, err := searchInput(args[0])
				if err != nil {
					return err
				}
				ctx, cancel := commandContext(cmd)
				defer cancel()
				pool, err := openPool(ctx)
				if err != nil {
					return err
				}
				defer pool.Close()

				res, err := repo.NewCommitteeRepository(infra.NewSQLRunner(pool, logger)).Search(ctx, q, page)
				if err != nil {
					return err
				}
				return printCommitteeMatches(cmd.OutOrStdout(), res)
			},
		},
	)
	return cmd
}

func searchInput(raw string) (domain.NameQuery, domain.PageRequest, error) {
	name, err := normalize.SearchName(raw)
	if err != nil {
		return domain.NameQuery{}, domain.PageRequest{}, fmt.Errorf("name: %w", err)
	}
	if searchLimit <= 0 || searchOffset < 0 {
		return domain.NameQuery{}, domain.PageRequest{}, fmt.Errorf("limit must be positive and offset non-negative")
	}
	threshold := searchThreshold
	if threshold == 0 {
		threshold = cfg.TrigramThreshold
	}
	if threshold < domain.MinTrigramThreshold || threshold > 1 {
		return domain.NameQuery{}, domain.PageRequest{}, fmt.Errorf("threshold must be in [%v, 1], got %v", domain.MinTrigramThreshold, threshold)
	}
	return domain.NameQuery{Name: name, Threshold: threshold},
		domain.PageRequest{Limit: min(searchLimit, cfg.MaxPageSize), Offset: searchOffset}, nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func printContributorMatches(out io.Writer, res domain.Page[domain.ContributorMatch]) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tID\tNAME\tCITY\tSTATE\tTOTAL")
	for _, m := range res.Data {
		fmt.Fprintf(tw, "%.2f\t%s\t%s\t%s\t%s\t%s\n", m.Score, m.ID, m.Name, deref(m.City), deref(m.State), m.Total.StringFixed(2))
	}
	fmt.Fprintf(tw, "\n%d of %d matches\n", len(res.Data), res.Count)
	return tw.Flush()
}

func printCommitteeMatches(out io.Writer, res domain.Page[domain.CommitteeMatch]) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tSBOE ID\tCOMMITTEE\tCANDIDATE\tPARTY")
	for _, m := range res.Data {
		fmt.Fprintf(tw, "%.2f\t%s\t%s\t%s\t%s\n", m.Score, m.CommitteeSBOEID, m.CommitteeName, deref(m.CandidateFullName), deref(m.Party))
	}
	fmt.Fprintf(tw, "\n%d of %d matches\n", len(res.Data), res.Count)
	return tw.Flush()
}
