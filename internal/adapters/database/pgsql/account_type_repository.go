package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/finhub/accounts_service/internal/apperrors"
	"github.com/finhub/accounts_service/internal/core/domain"
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountTypeRepository struct {
	BaseRepository
}

// newPgxAccountTypeRepository creates a new repository for the account type catalog.
func newPgxAccountTypeRepository(pool *pgxpool.Pool) portsrepo.AccountTypeRepository {
	return &PgxAccountTypeRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountTypeRepository = (*PgxAccountTypeRepository)(nil)

func scanAccountType(row pgx.Row) (*domain.AccountType, error) {
	var t domain.AccountType
	var description sql.NullString

	err := row.Scan(&t.ID, &t.Name, &description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Description = description.String
	return &t, nil
}

// SaveAccountType inserts a new type and returns it with its assigned ID.
func (r *PgxAccountTypeRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) (*domain.AccountType, error) {
	query := `
		INSERT INTO account_type (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING account_type_id;
	`
	var description sql.NullString
	if accountType.Description != "" {
		description = sql.NullString{String: accountType.Description, Valid: true}
	}

	err := r.Pool.QueryRow(ctx, query,
		accountType.Name,
		description,
		accountType.CreatedAt,
		accountType.UpdatedAt,
	).Scan(&accountType.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return nil, fmt.Errorf("%w: account type %s already exists", apperrors.ErrDuplicate, accountType.Name)
			}
		}
		return nil, fmt.Errorf("failed to save account type %s: %w", accountType.Name, err)
	}
	return &accountType, nil
}

// UpdateAccountType overwrites the name and description of an existing type.
func (r *PgxAccountTypeRepository) UpdateAccountType(ctx context.Context, accountType domain.AccountType) error {
	query := `
		UPDATE account_type
		SET name = $2, description = $3, updated_at = $4
		WHERE account_type_id = $1;
	`
	var description sql.NullString
	if accountType.Description != "" {
		description = sql.NullString{String: accountType.Description, Valid: true}
	}

	tag, err := r.Pool.Exec(ctx, query, accountType.ID, accountType.Name, description, accountType.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: account type %s already exists", apperrors.ErrDuplicate, accountType.Name)
			}
		}
		return fmt.Errorf("failed to update account type %d: %w", accountType.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindAccountTypeByID retrieves a type by ID.
func (r *PgxAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID int) (*domain.AccountType, error) {
	query := `
		SELECT account_type_id, name, description, created_at, updated_at
		FROM account_type
		WHERE account_type_id = $1;
	`
	t, err := scanAccountType(r.Pool.QueryRow(ctx, query, accountTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account type by ID %d: %w", accountTypeID, err)
	}
	return t, nil
}

// ListAccountTypes retrieves every type in the catalog.
func (r *PgxAccountTypeRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	query := `
		SELECT account_type_id, name, description, created_at, updated_at
		FROM account_type
		ORDER BY account_type_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list account types: %w", err)
	}
	defer rows.Close()

	types := make([]domain.AccountType, 0)
	for rows.Next() {
		t, err := scanAccountType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account type row: %w", err)
		}
		types = append(types, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account type rows: %w", err)
	}
	return types, nil
}

// DeleteAccountType removes a type from the catalog.
func (r *PgxAccountTypeRepository) DeleteAccountType(ctx context.Context, accountTypeID int) error {
	query := `DELETE FROM account_type WHERE account_type_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, accountTypeID)
	if err != nil {
		return fmt.Errorf("failed to delete account type %d: %w", accountTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ExistsAccountTypeByID reports whether a type with the given ID exists.
func (r *PgxAccountTypeRepository) ExistsAccountTypeByID(ctx context.Context, accountTypeID int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM account_type WHERE account_type_id = $1);`
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, accountTypeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existence of account type %d: %w", accountTypeID, err)
	}
	return exists, nil
}
