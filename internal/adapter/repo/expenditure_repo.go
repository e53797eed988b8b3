package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"campaignfinance/internal/domain"
	"campaignfinance/internal/infra"
	"campaignfinance/internal/sqlinline"
)

// ExpenditureRepositoryPG implements domain.ExpenditureRepository using PostgreSQL.
type ExpenditureRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewExpenditureRepository creates a new ExpenditureRepositoryPG.
func NewExpenditureRepository(sql infra.SQLExecutor) *ExpenditureRepositoryPG {
	return &ExpenditureRepositoryPG{sql: sql}
}

// ListByCommittee returns a committee's spending, oldest first.
func (r *ExpenditureRepositoryPG) ListByCommittee(ctx context.Context, sboeID string, page domain.PageRequest) (domain.Page[domain.Expenditure], error) {
	res, err := queryPage(ctx, r.sql, sqlinline.QExpendituresByCommittee, page.Limit, scanExpenditure,
		sboeID, page.Limit, page.Offset)
	if err != nil {
		return res, fmt.Errorf("expenditures of %s: %w", sboeID, err)
	}
	return res, nil
}

func scanExpenditure(row pgx.Rows, e *domain.Expenditure, count *int64) error {
	return row.Scan(
		&e.ID,
		&e.SourceExpenditureID,
		&e.CommitteeSBOEID,
		&e.Name,
		&e.StreetLine1,
		&e.StreetLine2,
		&e.City,
		&e.State,
		&e.ZipCode,
		&e.Profession,
		&e.EmployerName,
		&e.TransactionType,
		&e.DateOccurred,
		&e.AccountCode,
		&e.Amount,
		&e.FormOfPayment,
		&e.Purpose,
		&e.Declaration,
		count,
	)
}

var _ domain.ExpenditureRepository = (*ExpenditureRepositoryPG)(nil)
