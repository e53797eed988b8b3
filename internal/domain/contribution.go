package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contribution is money received by a committee.
type Contribution struct {
	ID                   string          `json:"id"`
	SourceContributionID *string         `json:"source_contribution_id"`
	ContributorID        *string         `json:"contributor_id"`
	CommitteeSBOEID      string          `json:"committee_sboe_id"`
	TransactionType      *string         `json:"transaction_type"`
	ReportName           *string         `json:"report_name"`
	DateOccurred         time.Time       `json:"date_occurred"`
	AccountCode          *string         `json:"account_code"`
	Amount               decimal.Decimal `json:"amount"`
	FormOfPayment        *string         `json:"form_of_payment"`
	Purpose              *string         `json:"purpose"`
	Declaration          *string         `json:"declaration"`
}

// CommitteeContribution is a contribution listed on a committee's page,
// carrying the donor's name and profession.
type CommitteeContribution struct {
	Contribution
	Name              *string `json:"name"`
	Profession        *string `json:"profession"`
	CommitteeName     string  `json:"committee_name"`
	CandidateFullName *string `json:"candidate_full_name"`
}

// ContributorContribution is a contribution listed on a contributor's page,
// carrying the recipient and the contributor's running total to it.
type ContributorContribution struct {
	Contribution
	CommitteeName                 *string         `json:"committee_name"`
	CandidateFullName             *string         `json:"candidate_full_name"`
	TotalContributionsToCommittee decimal.Decimal `json:"total_contributions_to_committee"`
}
