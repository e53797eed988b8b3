package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"campaignfinance/internal/domain"
	"campaignfinance/internal/infra"
	"campaignfinance/internal/sqlinline"
)

// ContributorRepositoryPG implements domain.ContributorRepository using PostgreSQL.
type ContributorRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewContributorRepository creates a new ContributorRepositoryPG.
func NewContributorRepository(sql infra.SQLExecutor) *ContributorRepositoryPG {
	return &ContributorRepositoryPG{sql: sql}
}

// Search runs a trigram search over contributor names.
func (r *ContributorRepositoryPG) Search(ctx context.Context, q domain.NameQuery, page domain.PageRequest) (domain.Page[domain.ContributorMatch], error) {
	res, err := queryPage(ctx, r.sql, sqlinline.QSearchContributors, page.Limit, scanContributorMatch,
		q.Name, page.Limit, page.Offset, q.Threshold)
	if err != nil {
		return res, fmt.Errorf("search contributors: %w", err)
	}
	return res, nil
}

// GetByID loads a contributor with lifetime totals.
func (r *ContributorRepositoryPG) GetByID(ctx context.Context, id string) (*domain.ContributorSummary, error) {
	var s domain.ContributorSummary
	err := r.sql.QueryRow(ctx, sqlinline.QContributorByID, id).Scan(
		&s.ID,
		&s.Name,
		&s.StreetLine1,
		&s.StreetLine2,
		&s.City,
		&s.State,
		&s.ZipCode,
		&s.Profession,
		&s.EmployerName,
		&s.Total,
		&s.ContributionCount,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

func scanContributorMatch(row pgx.Rows, m *domain.ContributorMatch, count *int64) error {
	return row.Scan(
		&m.ID,
		&m.Name,
		&m.City,
		&m.State,
		&m.ZipCode,
		&m.Profession,
		&m.EmployerName,
		&m.Total,
		&m.Score,
		count,
	)
}

var _ domain.ContributorRepository = (*ContributorRepositoryPG)(nil)
