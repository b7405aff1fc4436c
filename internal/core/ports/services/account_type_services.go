package services

import (
	"context"

	"github.com/finhub/accounts_service/internal/dto"
)

// AccountTypeSvcFacade is the account type catalog: CRUD over reference data
// with cached reads.
type AccountTypeSvcFacade interface {
	// GetAllAccountTypes returns the whole catalog (cached read).
	GetAllAccountTypes(ctx context.Context) ([]dto.AccountTypeResponse, error)

	// GetAccountType returns one type by ID (cached read).
	GetAccountType(ctx context.Context, accountTypeID int) (*dto.AccountTypeResponse, error)

	// CreateAccountType adds a type and refreshes its cache entry.
	CreateAccountType(ctx context.Context, req dto.AccountTypeRequest) (*dto.AccountTypeResponse, error)

	// UpdateAccountType modifies a type and refreshes its cache entry.
	UpdateAccountType(ctx context.Context, accountTypeID int, req dto.AccountTypeRequest) (*dto.AccountTypeResponse, error)

	// DeleteAccountType removes a type and evicts its cache entry.
	DeleteAccountType(ctx context.Context, accountTypeID int) error
}
