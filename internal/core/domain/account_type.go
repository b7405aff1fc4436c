package domain

// AccountType is a reference-data classification of accounts (e.g. SAVINGS).
// Its name drives which detail fields apply to accounts of that type.
type AccountType struct {
	ID          int    `json:"accountTypeID"` // Serial primary key, assigned on creation
	Name        string `json:"name"`
	Description string `json:"description"`
	Timestamps
}
