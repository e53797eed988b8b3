package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"campaignfinance/internal/domain"
	"campaignfinance/internal/infra"
)

// queryPage runs a paginated statement whose last column is count(*) over ().
// scan reads one row into item and the window-function total into count.
func queryPage[T any](ctx context.Context, db infra.SQLExecutor, query string, capacity int, scan func(row pgx.Rows, item *T, count *int64) error, args ...any) (domain.Page[T], error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return domain.Page[T]{}, err
	}
	defer rows.Close()

	page := domain.NewPage[T](capacity)
	for rows.Next() {
		var item T
		var count int64
		if err := scan(rows, &item, &count); err != nil {
			return domain.Page[T]{}, err
		}
		page.Data = append(page.Data, item)
		page.Count = count
	}
	if err := rows.Err(); err != nil {
		return domain.Page[T]{}, err
	}
	return page, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}
