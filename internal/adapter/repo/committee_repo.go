package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"campaignfinance/internal/domain"
	"campaignfinance/internal/infra"
	"campaignfinance/internal/sqlinline"
)

// CommitteeRepositoryPG implements domain.CommitteeRepository using PostgreSQL.
type CommitteeRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewCommitteeRepository creates a new CommitteeRepositoryPG.
func NewCommitteeRepository(sql infra.SQLExecutor) *CommitteeRepositoryPG {
	return &CommitteeRepositoryPG{sql: sql}
}

// Search runs a trigram search over committee and candidate names.
func (r *CommitteeRepositoryPG) Search(ctx context.Context, q domain.NameQuery, page domain.PageRequest) (domain.Page[domain.CommitteeMatch], error) {
	res, err := queryPage(ctx, r.sql, sqlinline.QSearchCommittees, page.Limit, scanCommitteeMatch,
		q.Name, page.Limit, page.Offset, q.Threshold)
	if err != nil {
		return res, fmt.Errorf("search committees: %w", err)
	}
	return res, nil
}

// GetBySBOEID loads a committee and its totals.
func (r *CommitteeRepositoryPG) GetBySBOEID(ctx context.Context, sboeID string) (*domain.CommitteeSummary, error) {
	var s domain.CommitteeSummary
	err := r.sql.QueryRow(ctx, sqlinline.QCommitteeBySBOEID, sboeID).Scan(
		&s.SBOEID,
		&s.CommitteeName,
		&s.CommitteeStreet1,
		&s.CommitteeStreet2,
		&s.CommitteeCity,
		&s.CommitteeState,
		&s.CommitteeFullZip,
		&s.CandidateFirstName,
		&s.CandidateMiddleName,
		&s.CandidateLastName,
		&s.CandidateFullName,
		&s.Party,
		&s.Office,
		&s.Juris,
		&s.TotalContributions,
		&s.TotalExpenditures,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// CandidatesForYear lists candidates whose committees took money in year.
func (r *CommitteeRepositoryPG) CandidatesForYear(ctx context.Context, year int, page domain.PageRequest) (domain.Page[domain.CandidateSummary], error) {
	res, err := queryPage(ctx, r.sql, sqlinline.QCandidatesForYear, page.Limit, scanCandidateSummary,
		year, page.Limit, page.Offset)
	if err != nil {
		return res, fmt.Errorf("candidates for %d: %w", year, err)
	}
	return res, nil
}

func scanCommitteeMatch(row pgx.Rows, m *domain.CommitteeMatch, count *int64) error {
	return row.Scan(
		&m.CommitteeSBOEID,
		&m.CommitteeName,
		&m.CandidateFullName,
		&m.Party,
		&m.Office,
		&m.Juris,
		&m.Score,
		count,
	)
}

func scanCandidateSummary(row pgx.Rows, c *domain.CandidateSummary, count *int64) error {
	return row.Scan(
		&c.CandidateLastName,
		&c.CandidateFirstName,
		&c.CandidateMiddleName,
		&c.CommitteeSBOEID,
		&c.CommitteeName,
		&c.Party,
		&c.Office,
		count,
	)
}

var _ domain.CommitteeRepository = (*CommitteeRepositoryPG)(nil)
