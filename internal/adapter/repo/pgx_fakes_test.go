package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeCall struct {
	query string
	args  []any
}

// fakeSQL serves canned rows keyed by query text.
type fakeSQL struct {
	rows  map[string][][]any
	row   map[string][]any
	err   error
	calls []fakeCall
}

func (f *fakeSQL) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.calls = append(f.calls, fakeCall{query: query, args: args})
	if f.err != nil {
		return nil, f.err
	}
	return &fakeRows{rows: f.rows[query]}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, fakeCall{query: query, args: args})
	if f.err != nil {
		return simpleRow{scan: func(...any) error { return f.err }}
	}
	values, ok := f.row[query]
	if !ok {
		return simpleRow{}
	}
	return simpleRow{scan: func(dest ...any) error { return assign(dest, values) }}
}

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type testRowsBase struct{}

func (testRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (testRowsBase) Conn() *pgx.Conn { return nil }

func (testRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (testRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (testRowsBase) RawValues() [][]byte { return nil }

type fakeRows struct {
	testRowsBase
	rows [][]any
	idx  int
}

func (f *fakeRows) Next() bool {
	if f.idx >= len(f.rows) {
		return false
	}
	f.idx++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.idx == 0 || f.idx > len(f.rows) {
		return pgx.ErrNoRows
	}
	return assign(dest, f.rows[f.idx-1])
}

func (f *fakeRows) Err() error { return nil }

func (f *fakeRows) Close() {}

// assign copies values into scan destinations; nil clears the destination.
func assign(dest []any, values []any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d destinations for %d columns", len(dest), len(values))
	}
	for i, v := range values {
		target := reflect.ValueOf(dest[i])
		if target.Kind() != reflect.Pointer || target.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		elem := target.Elem()
		if v == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}
		val := reflect.ValueOf(v)
		if !val.Type().AssignableTo(elem.Type()) {
			return fmt.Errorf("scan: column %d: cannot assign %T to %s", i, v, elem.Type())
		}
		elem.Set(val)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
