package domain

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	StatusOpening AccountStatus = "OPENING"
	StatusOpen    AccountStatus = "OPEN"
	StatusClosing AccountStatus = "CLOSING"
	StatusClosed  AccountStatus = "CLOSED"
	// StatusLocked is only ever set through an administrative path; no
	// transition into or out of it is driven by this service.
	StatusLocked AccountStatus = "LOCKED"
)

// Account represents a financial account metadata record within the core domain.
// This is the primary representation used by services; it says nothing about
// balances or ledger contents.
type Account struct {
	AccountNumber   string        `json:"accountNumber"` // Primary key (UUID), generated at creation
	Name            string        `json:"name"`
	InstitutionName string        `json:"institutionName"`
	AccountTypeID   int           `json:"accountTypeID"`   // FK -> account_type.account_type_id
	AccountTypeName string        `json:"accountTypeName"` // Denormalized display name, filled by repository joins
	Status          AccountStatus `json:"status"`
	Currency        string        `json:"currency"`
	Description     string        `json:"description"` // Nullable user description
	OwnerUserID     string        `json:"ownerUserID"` // User in the external identity service
	Timestamps
}
