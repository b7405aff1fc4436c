package services

import (
	"context"

	"github.com/finhub/accounts_service/internal/dto"
)

// AccountReaderSvc defines read operations over accounts.
type AccountReaderSvc interface {
	// GetAccount retrieves the full view of an account by its number.
	GetAccount(ctx context.Context, accountNumber string) (*dto.AccountResponse, error)

	// ListAccountsByUser retrieves a zero-based page of accounts owned by a
	// user, after verifying the user exists in the identity service.
	ListAccountsByUser(ctx context.Context, userID string, page int, size int) (*dto.AccountsPageResponse, error)

	// ListAccountsByInstitution retrieves all accounts held at an institution.
	ListAccountsByInstitution(ctx context.Context, institutionName string) ([]dto.AccountResponse, error)
}

// AccountWriterSvc defines the lifecycle operations over accounts.
type AccountWriterSvc interface {
	// CreateAccount drives a new account through OPENING to OPEN, creating the
	// type-specific detail record and emitting an ACCOUNT_CREATED event.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error)

	// UpdateAccount applies a partial update to an account and its detail
	// record and emits an ACCOUNT_UPDATED event. Status is never touched.
	UpdateAccount(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*dto.AccountResponse, error)

	// CloseAccount drives an account through CLOSING to CLOSED and emits an
	// ACCOUNT_CLOSED event. Closure is terminal and not idempotent: closing an
	// already closed account re-runs the transitions and re-emits the event.
	CloseAccount(ctx context.Context, accountNumber string) (*dto.AccountResponse, error)
}

// AccountSvcFacade combines all account lifecycle operations.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
