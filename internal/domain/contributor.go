package domain

import "github.com/shopspring/decimal"

// Contributor is an individual or entity donating to committees.
type Contributor struct {
	ID           string  `json:"contributor_id"`
	Name         string  `json:"name"`
	StreetLine1  *string `json:"street_line_1"`
	StreetLine2  *string `json:"street_line_2"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
	Profession   *string `json:"profession"`
	EmployerName *string `json:"employer_name"`
}

// ContributorSummary is a contributor with lifetime giving totals.
type ContributorSummary struct {
	Contributor
	Total             decimal.Decimal `json:"total"`
	ContributionCount int64           `json:"contribution_count"`
}

// ContributorMatch is one hit of a contributor name search.
type ContributorMatch struct {
	ID           string          `json:"contributor_id"`
	Name         string          `json:"name"`
	City         *string         `json:"city"`
	State        *string         `json:"state"`
	ZipCode      *string         `json:"zip_code"`
	Profession   *string         `json:"profession"`
	EmployerName *string         `json:"employer_name"`
	Total        decimal.Decimal `json:"total"`
	Score        float64         `json:"score"`
}
