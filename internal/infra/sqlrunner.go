package infra

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// SQLExecutor is the read contract repositories depend on. *pgxpool.Pool,
// *pgx.Conn and pgx.Tx all satisfy it.
type SQLExecutor interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
}

var markerRegexp = regexp.MustCompile(`^--sql [0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

var (
	errEmptyQuery    = errors.New("empty query")
	errMissingMarker = errors.New("sql marker missing or invalid")
)

// SQLRunner executes marker-tagged statements, logging and tracing each one
// under its marker id.
type SQLRunner struct {
	DB     SQLExecutor
	Logger zerolog.Logger
	tracer trace.Tracer
}

func NewSQLRunner(db SQLExecutor, logger zerolog.Logger) *SQLRunner {
	return &SQLRunner{DB: db, Logger: logger, tracer: otel.Tracer("campaignfinance/sql")}
}

// QueryRow defers execution to Scan, so the span only exists while the row
// is being read. A row that is never scanned never reaches the database.
func (r *SQLRunner) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	marker, trimmed, err := extractMarker(query)
	if err != nil {
		r.log(ctx).Error().Err(err).Msg("query_row rejected")
		return errorRow{err: err}
	}
	return &deferredRow{runner: r, ctx: ctx, marker: marker, query: trimmed, args: args}
}

func (r *SQLRunner) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	marker, trimmed, err := extractMarker(query)
	if err != nil {
		r.log(ctx).Error().Err(err).Msg("query rejected")
		return nil, err
	}
	ctx, span := r.start(ctx, marker, "query")
	log := r.log(ctx)
	log.Debug().Str("sql", marker).Msg("query")
	started := time.Now()
	rows, err := r.DB.Query(ctx, trimmed, args...)
	if err != nil {
		log.Error().Err(err).Str("sql", marker).Msg("query failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		return nil, err
	}
	return &loggingRows{Rows: rows, logger: log, marker: marker, span: span, started: started}, nil
}

func (r *SQLRunner) start(ctx context.Context, marker, op string) (context.Context, trace.Span) {
	tracer := r.tracer
	if tracer == nil {
		tracer = otel.Tracer("campaignfinance/sql")
	}
	return tracer.Start(ctx, "sql."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", "postgresql"),
			attribute.String("db.statement.marker", marker),
		),
	)
}

// log prefers the request-scoped logger attached by the access-log middleware.
func (r *SQLRunner) log(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &r.Logger
}

type deferredRow struct {
	runner *SQLRunner
	ctx    context.Context
	marker string
	query  string
	args   []any
}

func (d *deferredRow) Scan(dest ...any) error {
	ctx, span := d.runner.start(d.ctx, d.marker, "query_row")
	defer span.End()
	log := d.runner.log(ctx)
	log.Debug().Str("sql", d.marker).Msg("query_row")
	started := time.Now()

	err := d.runner.DB.QueryRow(ctx, d.query, d.args...).Scan(dest...)
	switch {
	case err == nil:
		log.Debug().Str("sql", d.marker).Dur("elapsed", time.Since(started)).Msg("query_row ok")
	case errors.Is(err, pgx.ErrNoRows):
		log.Debug().Str("sql", d.marker).Msg("query_row no rows")
	default:
		log.Error().Err(err).Str("sql", d.marker).Msg("scan failed")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

type loggingRows struct {
	pgx.Rows
	logger  *zerolog.Logger
	marker  string
	span    trace.Span
	started time.Time
	read    int
	closed  bool
}

func (l *loggingRows) Next() bool {
	if l.Rows.Next() {
		l.read++
		return true
	}
	return false
}

func (l *loggingRows) Close() {
	l.Rows.Close()
	if l.closed {
		return
	}
	l.closed = true
	if err := l.Rows.Err(); err != nil {
		l.logger.Error().Err(err).Str("sql", l.marker).Msg("rows failed")
		l.span.RecordError(err)
		l.span.SetStatus(codes.Error, err.Error())
	} else {
		l.logger.Debug().Str("sql", l.marker).Int("rows", l.read).Dur("elapsed", time.Since(l.started)).Msg("rows close")
	}
	l.span.SetAttributes(attribute.Int("db.rows", l.read))
	l.span.End()
}

type errorRow struct {
	err error
}

func (e errorRow) Scan(dest ...any) error {
	return e.err
}

func extractMarker(query string) (string, string, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", "", errEmptyQuery
	}
	lines := strings.Split(trimmed, "\n")
	markerLine := strings.TrimSpace(lines[0])
	if !markerRegexp.MatchString(markerLine) {
		return "", "", errMissingMarker
	}
	return strings.TrimPrefix(markerLine, "--sql "), strings.Join(lines[1:], "\n"), nil
}

var _ SQLExecutor = (*SQLRunner)(nil)
