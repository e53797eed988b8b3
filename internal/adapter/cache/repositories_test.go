package cache

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"campaignfinance/internal/domain"
)

type memoryStore struct {
	mu      sync.Mutex
	items   map[string][]byte
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet != nil {
		return nil, m.failGet
	}
	raw, ok := m.items[key]
	if !ok {
		return nil, ErrMiss
	}
	return raw, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.items[key] = value
	m.ttls[key] = ttl
	return nil
}

type countingCommittees struct {
	searches int
	lookups  int
	years    int
	err      error
}

func (c *countingCommittees) Search(_ context.Context, q domain.NameQuery, _ domain.PageRequest) (domain.Page[domain.CommitteeMatch], error) {
	c.searches++
	if c.err != nil {
		return domain.Page[domain.CommitteeMatch]{}, c.err
	}
	page := domain.NewPage[domain.CommitteeMatch](1)
	page.Data = append(page.Data, domain.CommitteeMatch{CommitteeSBOEID: "STA-C0001", CommitteeName: q.Name, Score: 0.9})
	page.Count = 1
	return page, nil
}

func (c *countingCommittees) GetBySBOEID(_ context.Context, sboeID string) (*domain.CommitteeSummary, error) {
	c.lookups++
	if sboeID == "STA-MISSING" {
		return nil, domain.ErrNotFound
	}
	return &domain.CommitteeSummary{
		Committee:          domain.Committee{SBOEID: sboeID, CommitteeName: "Friends of Jane Doe"},
		TotalContributions: decimal.RequireFromString("1250.50"),
	}, nil
}

func (c *countingCommittees) CandidatesForYear(_ context.Context, _ int, _ domain.PageRequest) (domain.Page[domain.CandidateSummary], error) {
	c.years++
	return domain.NewPage[domain.CandidateSummary](0), nil
}

func TestCommitteeSearchIsServedFromCache(t *testing.T) {
	store := newMemoryStore()
	next := &countingCommittees{}
	repo := NewCommitteeRepository(next, store, time.Minute, zerolog.Nop())
	q := domain.NameQuery{Name: "Jane Doe", Threshold: 0.6}
	window := domain.PageRequest{Limit: 50}

	first, err := repo.Search(context.Background(), q, window)
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	second, err := repo.Search(context.Background(), q, window)
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if next.searches != 1 {
		t.Fatalf("expected 1 upstream search, got %d", next.searches)
	}
	if second.Count != first.Count || second.Data[0].CommitteeName != "Jane Doe" {
		t.Fatalf("cached page mismatch: %+v", second)
	}

	if _, err := repo.Search(context.Background(), q, domain.PageRequest{Limit: 50, Offset: 50}); err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if next.searches != 2 {
		t.Fatalf("different window must miss the cache, got %d upstream searches", next.searches)
	}
	for key, ttl := range store.ttls {
		if ttl != time.Minute {
			t.Fatalf("ttl for %s = %s, want 1m", key, ttl)
		}
	}
}

func TestEmptyPageSurvivesCache(t *testing.T) {
	store := newMemoryStore()
	next := &countingCommittees{}
	repo := NewCommitteeRepository(next, store, time.Minute, zerolog.Nop())

	for i := 0; i < 2; i++ {
		page, err := repo.CandidatesForYear(context.Background(), 1999, domain.PageRequest{Limit: 50})
		if err != nil {
			t.Fatalf("CandidatesForYear() unexpected error: %v", err)
		}
		if page.Data == nil || page.Count != 0 {
			t.Fatalf("page = %+v, want empty non-nil data", page)
		}
	}
	if next.years != 1 {
		t.Fatalf("expected 1 upstream call, got %d", next.years)
	}
}

func TestDecimalTotalsRoundTrip(t *testing.T) {
	repo := NewCommitteeRepository(&countingCommittees{}, newMemoryStore(), time.Minute, zerolog.Nop())

	if _, err := repo.GetBySBOEID(context.Background(), "STA-C0001"); err != nil {
		t.Fatalf("GetBySBOEID() unexpected error: %v", err)
	}
	got, err := repo.GetBySBOEID(context.Background(), "STA-C0001")
	if err != nil {
		t.Fatalf("GetBySBOEID() unexpected error: %v", err)
	}
	if !got.TotalContributions.Equal(decimal.RequireFromString("1250.5")) {
		t.Fatalf("TotalContributions = %s", got.TotalContributions)
	}
}

func TestNotFoundIsNotCached(t *testing.T) {
	store := newMemoryStore()
	next := &countingCommittees{}
	repo := NewCommitteeRepository(next, store, time.Minute, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := repo.GetBySBOEID(context.Background(), "STA-MISSING"); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetBySBOEID() error = %v, want ErrNotFound", err)
		}
	}
	if next.lookups != 2 {
		t.Fatalf("expected 2 upstream lookups, got %d", next.lookups)
	}
	if len(store.items) != 0 {
		t.Fatalf("expected empty cache, got %d entries", len(store.items))
	}
}

func TestCacheFailuresFallBackToRepository(t *testing.T) {
	store := newMemoryStore()
	store.failGet = errors.New("connection refused")
	store.failSet = errors.New("connection refused")
	var buf bytes.Buffer
	repo := NewCommitteeRepository(&countingCommittees{}, store, time.Minute, zerolog.New(&buf))

	page, err := repo.Search(context.Background(), domain.NameQuery{Name: "Doe", Threshold: 0.6}, domain.PageRequest{Limit: 10})
	if err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if page.Count != 1 {
		t.Fatalf("Count = %d, want 1", page.Count)
	}
	if !bytes.Contains(buf.Bytes(), []byte("cache get failed")) || !bytes.Contains(buf.Bytes(), []byte("cache set failed")) {
		t.Fatalf("expected cache failures to be logged, got %q", buf.String())
	}
}

func TestUndecodableEntryIsReloaded(t *testing.T) {
	store := newMemoryStore()
	next := &countingCommittees{}
	repo := NewCommitteeRepository(next, store, time.Minute, zerolog.Nop())
	q := domain.NameQuery{Name: "Doe", Threshold: 0.6}
	window := domain.PageRequest{Limit: 10}
	store.items[keyPrefix+searchKey("committees", q, window)] = []byte("{not json")

	if _, err := repo.Search(context.Background(), q, window); err != nil {
		t.Fatalf("Search() unexpected error: %v", err)
	}
	if next.searches != 1 {
		t.Fatalf("expected reload from repository, got %d searches", next.searches)
	}
}

func TestLoaderErrorPropagates(t *testing.T) {
	boom := errors.New("db down")
	repo := NewCommitteeRepository(&countingCommittees{err: boom}, newMemoryStore(), time.Minute, zerolog.Nop())

	if _, err := repo.Search(context.Background(), domain.NameQuery{Name: "Doe", Threshold: 0.6}, domain.PageRequest{Limit: 10}); !errors.Is(err, boom) {
		t.Fatalf("Search() error = %v, want %v", err, boom)
	}
}
