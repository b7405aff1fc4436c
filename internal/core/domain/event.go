package domain

import "time"

// EventType identifies the lifecycle transition an AccountEvent describes.
type EventType string

const (
	EventAccountCreated EventType = "ACCOUNT_CREATED"
	EventAccountUpdated EventType = "ACCOUNT_UPDATED"
	EventAccountClosed  EventType = "ACCOUNT_CLOSED"
)

// AccountEvent is the at-least-once notification emitted on every lifecycle
// transition. It carries a full snapshot of the account at emission time, not
// a delta, and is never persisted by this service.
type AccountEvent struct {
	AccountNumber   string        `json:"accountNumber"`
	AccountName     string        `json:"accountName"`
	InstitutionName string        `json:"institutionName"`
	AccountType     string        `json:"accountType"` // Type display name
	Status          AccountStatus `json:"accountStatus"`
	Currency        string        `json:"currency"`
	UserID          string        `json:"userId,omitempty"` // Owner; only present on creation events
	EventType       EventType     `json:"eventType"`
	Timestamp       time.Time     `json:"timestamp"`
}

// NewAccountEvent builds the event snapshot for an account transition.
// userID is empty for update and close transitions.
func NewAccountEvent(acc *Account, userID string, eventType EventType) AccountEvent {
	return AccountEvent{
		AccountNumber:   acc.AccountNumber,
		AccountName:     acc.Name,
		InstitutionName: acc.InstitutionName,
		AccountType:     acc.AccountTypeName,
		Status:          acc.Status,
		Currency:        acc.Currency,
		UserID:          userID,
		EventType:       eventType,
		Timestamp:       time.Now().UTC(),
	}
}
