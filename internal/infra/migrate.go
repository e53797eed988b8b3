package infra

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	// database/sql driver used by goose.
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"campaignfinance/migrations"
)

// MigrationDirection selects what Migrate does.
type MigrationDirection string

const (
	MigrateUp     MigrationDirection = "up"
	MigrateDown   MigrationDirection = "down"
	MigrateStatus MigrationDirection = "status"
)

// MigrationReport is one line of migration output.
type MigrationReport struct {
	Version int64
	Path    string
	State   string
}

// Migrate applies, rolls back one step of, or reports on the embedded schema
// migrations against databaseURL.
func Migrate(ctx context.Context, databaseURL string, direction MigrationDirection) ([]MigrationReport, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	return migrateDB(ctx, db, migrations.FS, direction)
}

func migrateDB(ctx context.Context, db *sql.DB, fsys fs.FS, direction MigrationDirection) ([]MigrationReport, error) {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration provider: %w", err)
	}

	switch direction {
	case MigrateUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return nil, fmt.Errorf("migrate up: %w", err)
		}
		reports := make([]MigrationReport, 0, len(results))
		for _, res := range results {
			reports = append(reports, resultReport(res))
		}
		return reports, nil
	case MigrateDown:
		res, err := provider.Down(ctx)
		if err != nil {
			return nil, fmt.Errorf("migrate down: %w", err)
		}
		return []MigrationReport{resultReport(res)}, nil
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return nil, fmt.Errorf("migration status: %w", err)
		}
		reports := make([]MigrationReport, 0, len(statuses))
		for _, st := range statuses {
			reports = append(reports, MigrationReport{
				Version: st.Source.Version,
				Path:    st.Source.Path,
				State:   string(st.State),
			})
		}
		return reports, nil
	default:
		return nil, fmt.Errorf("unknown migration direction %q", direction)
	}
}

func resultReport(res *goose.MigrationResult) MigrationReport {
	if res == nil || res.Source == nil {
		return MigrationReport{}
	}
	return MigrationReport{
		Version: res.Source.Version,
		Path:    res.Source.Path,
		State:   res.Direction,
	}
}
