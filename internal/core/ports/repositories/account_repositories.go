package repositories

import (
	"context"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByNumber retrieves an account by its primary identifier.
	FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error)

	// ListAccountsByUser retrieves one zero-based page of accounts owned by a
	// user, plus the total number of accounts that user owns.
	ListAccountsByUser(ctx context.Context, userID string, page int, size int) ([]domain.Account, int64, error)

	// FindAccountsByStatus retrieves all accounts currently in the given status.
	FindAccountsByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error)

	// FindAccountsByInstitution retrieves all accounts held at an institution.
	FindAccountsByInstitution(ctx context.Context, institutionName string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount overwrites the mutable fields of an existing account.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountStatus moves an account to the given status.
	UpdateAccountStatus(ctx context.Context, accountNumber string, status domain.AccountStatus, now time.Time) error
}

// AccountRepository combines all account store operations.
type AccountRepository interface {
	AccountReader
	AccountWriter
}

// AccountDetailRepository is the store for the 1:1 type-specific detail records.
type AccountDetailRepository interface {
	// SaveDetail persists a new detail record for an account.
	SaveDetail(ctx context.Context, detail domain.AccountDetail) error

	// UpdateDetail overwrites the fields of an existing detail record.
	UpdateDetail(ctx context.Context, detail domain.AccountDetail) error

	// FindDetailByAccountNumber retrieves the detail record of an account, or
	// apperrors.ErrNotFound when the account has none.
	FindDetailByAccountNumber(ctx context.Context, accountNumber string) (*domain.AccountDetail, error)

	// FindDetailsByAccountNumbers retrieves detail records for a batch of
	// accounts, keyed by account number. Accounts without details are absent
	// from the map.
	FindDetailsByAccountNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.AccountDetail, error)
}
