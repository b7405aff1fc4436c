package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/finhub/accounts_service/internal/apperrors"
	"github.com/finhub/accounts_service/internal/core/domain"
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

// accountColumns is the SELECT list shared by all account reads. The type
// display name is denormalized into the row via the join; a dangling type id
// yields an empty name rather than an error.
const accountColumns = `
	a.account_number, a.name, a.institution_name, a.account_type_id, COALESCE(t.name, ''),
	a.status, a.currency, a.description, a.owner_user_id, a.created_at, a.updated_at
`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	var description sql.NullString

	err := row.Scan(
		&acc.AccountNumber,
		&acc.Name,
		&acc.InstitutionName,
		&acc.AccountTypeID,
		&acc.AccountTypeName,
		&acc.Status,
		&acc.Currency,
		&description,
		&acc.OwnerUserID,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	acc.Description = description.String
	return &acc, nil
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_number, name, institution_name, account_type_id, status, currency, description, owner_user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	// Empty description is stored as NULL.
	var description sql.NullString
	if account.Description != "" {
		description = sql.NullString{String: account.Description, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		account.AccountNumber,
		account.Name,
		account.InstitutionName,
		account.AccountTypeID,
		account.Status,
		account.Currency,
		description,
		account.OwnerUserID,
		account.CreatedAt,
		account.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account with number %s already exists", apperrors.ErrDuplicate, account.AccountNumber)
			}
		}
		return fmt.Errorf("failed to save account %s: %w", account.AccountNumber, err)
	}
	return nil
}

// FindAccountByNumber retrieves an account by its number.
func (r *PgxAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		LEFT JOIN account_type t ON t.account_type_id = a.account_type_id
		WHERE a.account_number = $1;
	`
	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by number %s: %w", accountNumber, err)
	}
	return acc, nil
}

// ListAccountsByUser retrieves one zero-based page of a user's accounts plus
// the total count, newest first.
func (r *PgxAccountRepository) ListAccountsByUser(ctx context.Context, userID string, page int, size int) ([]domain.Account, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM accounts WHERE owner_user_id = $1;`
	if err := r.Pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count accounts for user %s: %w", userID, err)
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		LEFT JOIN account_type t ON t.account_type_id = a.account_type_id
		WHERE a.owner_user_id = $1
		ORDER BY a.created_at DESC, a.account_number
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, size, page*size)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts, err := collectAccounts(rows)
	if err != nil {
		return nil, 0, err
	}
	return accounts, total, nil
}

// FindAccountsByStatus retrieves all accounts currently in the given status.
func (r *PgxAccountRepository) FindAccountsByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		LEFT JOIN account_type t ON t.account_type_id = a.account_type_id
		WHERE a.status = $1
		ORDER BY a.updated_at;
	`
	rows, err := r.Pool.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by status %s: %w", status, err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// FindAccountsByInstitution retrieves all accounts held at an institution.
func (r *PgxAccountRepository) FindAccountsByInstitution(ctx context.Context, institutionName string) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts a
		LEFT JOIN account_type t ON t.account_type_id = a.account_type_id
		WHERE a.institution_name = $1
		ORDER BY a.created_at DESC, a.account_number;
	`
	rows, err := r.Pool.Query(ctx, query, institutionName)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by institution %s: %w", institutionName, err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// UpdateAccount overwrites the mutable fields of an existing account.
// Status is deliberately excluded; it only moves through UpdateAccountStatus.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $2, institution_name = $3, account_type_id = $4, currency = $5, description = $6, updated_at = $7
		WHERE account_number = $1;
	`
	var description sql.NullString
	if account.Description != "" {
		description = sql.NullString{String: account.Description, Valid: true}
	}

	tag, err := r.Pool.Exec(ctx, query,
		account.AccountNumber,
		account.Name,
		account.InstitutionName,
		account.AccountTypeID,
		account.Currency,
		description,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account %s: %w", account.AccountNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateAccountStatus moves an account to the given status.
func (r *PgxAccountRepository) UpdateAccountStatus(ctx context.Context, accountNumber string, status domain.AccountStatus, now time.Time) error {
	query := `
		UPDATE accounts
		SET status = $2, updated_at = $3
		WHERE account_number = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, accountNumber, status, now)
	if err != nil {
		return fmt.Errorf("failed to update status of account %s: %w", accountNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	accounts := make([]domain.Account, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}
