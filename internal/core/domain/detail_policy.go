package domain

// DetailField names one of the optional columns of AccountDetail.
type DetailField string

const (
	FieldInterestRate   DetailField = "interestRate"
	FieldCreditLimit    DetailField = "creditLimit"
	FieldLoanAmount     DetailField = "loanAmount"
	FieldMaturityDate   DetailField = "maturityDate"
	FieldInvestmentType DetailField = "investmentType"
)

// Well-known account type names. The catalog is free-form reference data, but
// these five names carry detail-shaping semantics.
const (
	TypeSavings       = "SAVINGS"
	TypeCurrent       = "CURRENT"
	TypeCreditCard    = "CREDIT_CARD"
	TypeLoan          = "LOAN"
	TypeInvestment    = "INVESTMENT"
	TypeDigitalWallet = "DIGITAL_WALLET"
)

// DetailFieldsFor returns the set of detail fields applicable to an account
// type name. It is total over all strings: unknown names (and DIGITAL_WALLET,
// which carries no ancillary terms) yield the empty set.
func DetailFieldsFor(typeName string) map[DetailField]bool {
	switch typeName {
	case TypeSavings, TypeCurrent:
		return map[DetailField]bool{FieldInterestRate: true}
	case TypeCreditCard:
		return map[DetailField]bool{FieldCreditLimit: true}
	case TypeLoan:
		return map[DetailField]bool{FieldLoanAmount: true, FieldInterestRate: true, FieldMaturityDate: true}
	case TypeInvestment:
		return map[DetailField]bool{FieldInvestmentType: true, FieldInterestRate: true, FieldMaturityDate: true}
	default:
		return map[DetailField]bool{}
	}
}

// NeedsDetail reports whether accounts of the given type receive a detail
// record at creation time.
func NeedsDetail(typeName string) bool {
	return len(DetailFieldsFor(typeName)) > 0
}
