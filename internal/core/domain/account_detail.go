package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountDetail holds the type-specific ancillary terms of an account.
// It shares its primary key with the owning Account (1:1) and lives and dies
// with it. The fields form a union over all account types; which subset is
// populated is decided by DetailFieldsFor at creation time.
type AccountDetail struct {
	AccountNumber  string           `json:"accountNumber"`
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	CreditLimit    *decimal.Decimal `json:"creditLimit,omitempty"`
	LoanAmount     *decimal.Decimal `json:"loanAmount,omitempty"`
	MaturityDate   *time.Time       `json:"maturityDate,omitempty"`
	InvestmentType *string          `json:"investmentType,omitempty"`
	Timestamps
}
