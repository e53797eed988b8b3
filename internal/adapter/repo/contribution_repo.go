package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"campaignfinance/internal/domain"
	"campaignfinance/internal/infra"
	"campaignfinance/internal/sqlinline"
)

// ContributionRepositoryPG implements domain.ContributionRepository using PostgreSQL.
type ContributionRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContributionRepository creates a new ContributionRepositoryPG.
func NewContributionRepository(sql infra.SQLExecutor) *ContributionRepositoryPG {
	return &ContributionRepositoryPG{sql: sql}
}

// ListByCommittee returns a committee's receipts, oldest first.
func (r *ContributionRepositoryPG) ListByCommittee(ctx context.Context, sboeID string, page domain.PageRequest) (domain.Page[domain.CommitteeContribution], error) {
	res, err := queryPage(ctx, r.sql, sqlinline.QContributionsByCommittee, page.Limit, scanCommitteeContribution,
		sboeID, page.Limit, page.Offset)
	if err != nil {
		return res, fmt.Errorf("contributions to %s: %w", sboeID, err)
	}
	return res, nil
}

// ListByContributor returns a contributor's gifts, oldest first.
func (r *ContributionRepositoryPG) ListByContributor(ctx context.Context, contributorID string, page domain.PageRequest) (domain.Page[domain.ContributorContribution], error) {
	res, err := queryPage(ctx, r.sql, sqlinline.QContributionsByContributor, page.Limit, scanContributorContribution,
		contributorID, page.Limit, page.Offset)
	if err != nil {
		return res, fmt.Errorf("contributions from %s: %w", contributorID, err)
	}
	return res, nil
}

func contributionFields(c *domain.Contribution) []any {
	return []any{
		&c.ID,
		&c.SourceContributionID,
		&c.ContributorID,
		&c.CommitteeSBOEID,
		&c.TransactionType,
		&c.ReportName,
		&c.DateOccurred,
		&c.AccountCode,
		&c.Amount,
		&c.FormOfPayment,
		&c.Purpose,
		&c.Declaration,
	}
}

func scanCommitteeContribution(row pgx.Rows, c *domain.CommitteeContribution, count *int64) error {
	dest := append(contributionFields(&c.Contribution),
		&c.Name,
		&c.Profession,
		&c.CommitteeName,
		&c.CandidateFullName,
		count,
	)
	return row.Scan(dest...)
}

func scanContributorContribution(row pgx.Rows, c *domain.ContributorContribution, count *int64) error {
	dest := append(contributionFields(&c.Contribution),
		&c.CommitteeName,
		&c.CandidateFullName,
		&c.TotalContributionsToCommittee,
		count,
	)
	return row.Scan(dest...)
}

var _ domain.ContributionRepository = (*ContributionRepositoryPG)(nil)
