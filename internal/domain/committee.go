package domain

import "github.com/shopspring/decimal"

// Committee is a registered campaign finance committee keyed by its SBOE id.
// Candidate fields are nil for committees that do not back a candidate.
type Committee struct {
	SBOEID              string  `json:"sboe_id"`
	CommitteeName       string  `json:"committee_name"`
	CommitteeStreet1    *string `json:"committee_street_1"`
	CommitteeStreet2    *string `json:"committee_street_2"`
	CommitteeCity       *string `json:"committee_city"`
	CommitteeState      *string `json:"committee_state"`
	CommitteeFullZip    *string `json:"committee_full_zip"`
	CandidateFirstName  *string `json:"candidate_first_name"`
	CandidateMiddleName *string `json:"candidate_middle_name"`
	CandidateLastName   *string `json:"candidate_last_name"`
	CandidateFullName   *string `json:"candidate_full_name"`
	Party               *string `json:"party"`
	Office              *string `json:"office"`
	Juris               *string `json:"juris"`
}

// CommitteeSummary is a committee with its money in and out.
type CommitteeSummary struct {
	Committee
	TotalContributions decimal.Decimal `json:"total_contributions"`
	TotalExpenditures  decimal.Decimal `json:"total_expenditures"`
}

// CommitteeMatch is one hit of a candidate/committee name search.
type CommitteeMatch struct {
	CommitteeSBOEID   string  `json:"committee_sboe_id"`
	CommitteeName     string  `json:"committee_name"`
	CandidateFullName *string `json:"candidate_full_name"`
	Party             *string `json:"party"`
	Office            *string `json:"office"`
	Juris             *string `json:"juris"`
	Score             float64 `json:"score"`
}

// CandidateSummary is one candidate whose committee received money in a given year.
type CandidateSummary struct {
	CandidateLastName   *string `json:"candidate_last_name"`
	CandidateFirstName  *string `json:"candidate_first_name"`
	CandidateMiddleName *string `json:"candidate_middle_name"`
	CommitteeSBOEID     string  `json:"committee_sboe_id"`
	CommitteeName       string  `json:"committee_name"`
	Party               *string `json:"party"`
	Office              *string `json:"office"`
}
