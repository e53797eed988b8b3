package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expenditure is a payment made by a committee.
type Expenditure struct {
	ID                  string          `json:"id"`
	SourceExpenditureID *string         `json:"source_expenditure_id"`
	CommitteeSBOEID     string          `json:"committee_sboe_id"`
	Name                string          `json:"name"`
	StreetLine1         *string         `json:"street_line_1"`
	StreetLine2         *string         `json:"street_line_2"`
	City                *string         `json:"city"`
	State               *string         `json:"state"`
	ZipCode             *string         `json:"zip_code"`
	Profession          *string         `json:"profession"`
	EmployerName        *string         `json:"employer_name"`
	TransactionType     *string         `json:"transaction_type"`
	DateOccurred        time.Time       `json:"date_occurred"`
	AccountCode         *string         `json:"account_code"`
	Amount              decimal.Decimal `json:"amount"`
	FormOfPayment       *string         `json:"form_of_payment"`
	Purpose             *string         `json:"purpose"`
	Declaration         *string         `json:"declaration"`
}
