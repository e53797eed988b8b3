package domain

import "context"

// CommitteeRepository reads committees and the candidates behind them.
type CommitteeRepository interface {
	Search(ctx context.Context, q NameQuery, page PageRequest) (Page[CommitteeMatch], error)
	GetBySBOEID(ctx context.Context, sboeID string) (*CommitteeSummary, error)
	CandidatesForYear(ctx context.Context, year int, page PageRequest) (Page[CandidateSummary], error)
}

// ContributorRepository reads contributors.
type ContributorRepository interface {
	Search(ctx context.Context, q NameQuery, page PageRequest) (Page[ContributorMatch], error)
	GetByID(ctx context.Context, id string) (*ContributorSummary, error)
}

// ContributionRepository lists contributions by recipient or donor.
type ContributionRepository interface {
	ListByCommittee(ctx context.Context, sboeID string, page PageRequest) (Page[CommitteeContribution], error)
	ListByContributor(ctx context.Context, contributorID string, page PageRequest) (Page[ContributorContribution], error)
}

// ExpenditureRepository lists committee spending.
type ExpenditureRepository interface {
	ListByCommittee(ctx context.Context, sboeID string, page PageRequest) (Page[Expenditure], error)
}
