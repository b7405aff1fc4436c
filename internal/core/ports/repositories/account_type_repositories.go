package repositories

import (
	"context"

	"github.com/finhub/accounts_service/internal/core/domain"
)

// AccountTypeRepository is the persisted store behind the account type catalog.
type AccountTypeRepository interface {
	// SaveAccountType inserts a new type and returns it with its assigned ID.
	SaveAccountType(ctx context.Context, accountType domain.AccountType) (*domain.AccountType, error)

	// UpdateAccountType overwrites the name and description of an existing type.
	UpdateAccountType(ctx context.Context, accountType domain.AccountType) error

	// FindAccountTypeByID retrieves a type by ID, or apperrors.ErrNotFound.
	FindAccountTypeByID(ctx context.Context, accountTypeID int) (*domain.AccountType, error)

	// ListAccountTypes retrieves every type in the catalog.
	ListAccountTypes(ctx context.Context) ([]domain.AccountType, error)

	// DeleteAccountType removes a type. No referential-integrity check against
	// accounts is performed; existing accounts keep their dangling type id.
	DeleteAccountType(ctx context.Context, accountTypeID int) error

	// ExistsAccountTypeByID reports whether a type with the given ID exists.
	ExistsAccountTypeByID(ctx context.Context, accountTypeID int) (bool, error)
}

// AccountTypeCache is the injected read-through cache owned by the catalog
// service. Implementations provide their own synchronization and TTL policy;
// misses and backend failures surface as a plain "not ok".
type AccountTypeCache interface {
	Get(ctx context.Context, accountTypeID int) (*domain.AccountType, bool)
	GetList(ctx context.Context) ([]domain.AccountType, bool)
	Put(ctx context.Context, accountType *domain.AccountType)
	PutList(ctx context.Context, accountTypes []domain.AccountType)
	Evict(ctx context.Context, accountTypeID int)
}
