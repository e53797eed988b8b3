package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func lint(t *testing.T, src string) []violation {
	t.Helper()
	l := newLinter()
	if err := l.lintSource("queries.go", []byte(src)); err != nil {
		t.Fatalf("lintSource() error: %v", err)
	}
	return l.found
}

func TestLintAcceptsMarkedPaginatedQuery(t *testing.T) {
	src := "package q\n\nconst QList = `--sql 31b67c48-a8a6-440d-bef3-55a4f6e8835a\nselect id, count(*) over () as full_count from t limit $1 offset $2;`\n"
	if found := lint(t, src); len(found) != 0 {
		t.Fatalf("unexpected violations: %+v", found)
	}
}

func TestLintViolations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "missing marker",
			src:  "package q\n\nconst QBad = `select 1`\n",
			want: "missing or invalid",
		},
		{
			name: "limit without window count",
			src:  "package q\n\nconst QPage = `--sql 4e77e695-84ef-44d7-a668-950f8cffeb47\nselect id from t limit $1`\n",
			want: "count(*) over ()",
		},
		{
			name: "duplicate marker",
			src: "package q\n\nconst (\n\tQA = `--sql aff62d32-3a10-45ac-829e-65ab3e7551b9\nselect 1`\n" +
				"\tQB = `--sql aff62d32-3a10-45ac-829e-65ab3e7551b9\nselect 2`\n)\n",
			want: "already used by QA",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := lint(t, tt.src)
			if len(found) != 1 {
				t.Fatalf("expected 1 violation, got %+v", found)
			}
			if !strings.Contains(found[0].message, tt.want) {
				t.Fatalf("message = %q, want it to contain %q", found[0].message, tt.want)
			}
		})
	}
}

func TestLintIgnoresPlainStrings(t *testing.T) {
	src := "package q\n\nconst greeting = \"hello there\"\nconst limit = 10\n"
	if found := lint(t, src); len(found) != 0 {
		t.Fatalf("unexpected violations: %+v", found)
	}
}

func TestSingleRowLimitNeedsNoWindowCount(t *testing.T) {
	src := "package q\n\nconst QOne = `--sql 5c35e375-e622-4597-b7df-90269137e77f\nselect id from t where id = $1 limit 1`\n"
	if found := lint(t, src); len(found) != 0 {
		t.Fatalf("unexpected violations: %+v", found)
	}
}

func TestRepositoryQueriesPassLint(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "sqlinline", "*.go"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	l := newLinter()
	linted := 0
	for _, path := range files {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		if err := l.lintFile(path); err != nil {
			t.Fatalf("lintFile(%s) error: %v", path, err)
		}
		linted++
	}
	if linted == 0 || len(l.markers) == 0 {
		t.Fatalf("no marked statements found under sqlinline")
	}
	for _, v := range l.found {
		t.Errorf("%s:%d %s: %s", v.file, v.line, v.name, v.message)
	}
}
