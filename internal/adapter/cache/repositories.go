package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"campaignfinance/internal/domain"
)

// CommitteeRepository caches committee reads in front of another
// domain.CommitteeRepository.
type CommitteeRepository struct {
	next domain.CommitteeRepository
	core core
}

func NewCommitteeRepository(next domain.CommitteeRepository, store Store, ttl time.Duration, logger zerolog.Logger) *CommitteeRepository {
	return &CommitteeRepository{next: next, core: core{store: store, ttl: ttl, logger: logger}}
}

func (r *CommitteeRepository) Search(ctx context.Context, q domain.NameQuery, page domain.PageRequest) (domain.Page[domain.CommitteeMatch], error) {
	return readThrough(ctx, r.core, searchKey("committees", q, page), func(ctx context.Context) (domain.Page[domain.CommitteeMatch], error) {
		return r.next.Search(ctx, q, page)
	})
}

func (r *CommitteeRepository) GetBySBOEID(ctx context.Context, sboeID string) (*domain.CommitteeSummary, error) {
	return readThrough(ctx, r.core, "committee:"+strconv.Quote(sboeID), func(ctx context.Context) (*domain.CommitteeSummary, error) {
		return r.next.GetBySBOEID(ctx, sboeID)
	})
}

func (r *CommitteeRepository) CandidatesForYear(ctx context.Context, year int, page domain.PageRequest) (domain.Page[domain.CandidateSummary], error) {
	return readThrough(ctx, r.core, pageKey("candidates", strconv.Itoa(year), page), func(ctx context.Context) (domain.Page[domain.CandidateSummary], error) {
		return r.next.CandidatesForYear(ctx, year, page)
	})
}

// ContributorRepository caches contributor reads.
type ContributorRepository struct {
	next domain.ContributorRepository
	core core
}

func NewContributorRepository(next domain.ContributorRepository, store Store, ttl time.Duration, logger zerolog.Logger) *ContributorRepository {
	return &ContributorRepository{next: next, core: core{store: store, ttl: ttl, logger: logger}}
}

func (r *ContributorRepository) Search(ctx context.Context, q domain.NameQuery, page domain.PageRequest) (domain.Page[domain.ContributorMatch], error) {
	return readThrough(ctx, r.core, searchKey("contributors", q, page), func(ctx context.Context) (domain.Page[domain.ContributorMatch], error) {
		return r.next.Search(ctx, q, page)
	})
}

func (r *ContributorRepository) GetByID(ctx context.Context, id string) (*domain.ContributorSummary, error) {
	return readThrough(ctx, r.core, "contributor:"+strconv.Quote(id), func(ctx context.Context) (*domain.ContributorSummary, error) {
		return r.next.GetByID(ctx, id)
	})
}

var (
	_ domain.CommitteeRepository   = (*CommitteeRepository)(nil)
	_ domain.ContributorRepository = (*ContributorRepository)(nil)
)
