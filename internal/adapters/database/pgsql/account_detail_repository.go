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
	"github.com/shopspring/decimal"
)

type PgxAccountDetailRepository struct {
	BaseRepository
}

// newPgxAccountDetailRepository creates a new repository for the 1:1 detail records.
func newPgxAccountDetailRepository(pool *pgxpool.Pool) portsrepo.AccountDetailRepository {
	return &PgxAccountDetailRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountDetailRepository = (*PgxAccountDetailRepository)(nil)

func scanDetail(row pgx.Row) (*domain.AccountDetail, error) {
	var d domain.AccountDetail
	var interestRate, creditLimit, loanAmount decimal.NullDecimal
	var maturityDate sql.NullTime
	var investmentType sql.NullString

	err := row.Scan(
		&d.AccountNumber,
		&interestRate,
		&creditLimit,
		&loanAmount,
		&maturityDate,
		&investmentType,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if interestRate.Valid {
		d.InterestRate = &interestRate.Decimal
	}
	if creditLimit.Valid {
		d.CreditLimit = &creditLimit.Decimal
	}
	if loanAmount.Valid {
		d.LoanAmount = &loanAmount.Decimal
	}
	if maturityDate.Valid {
		d.MaturityDate = &maturityDate.Time
	}
	if investmentType.Valid {
		d.InvestmentType = &investmentType.String
	}
	return &d, nil
}

func nullDecimal(p *decimal.Decimal) decimal.NullDecimal {
	if p == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *p, Valid: true}
}

// SaveDetail persists a new detail record for an account.
func (r *PgxAccountDetailRepository) SaveDetail(ctx context.Context, detail domain.AccountDetail) error {
	query := `
		INSERT INTO account_details (account_number, interest_rate, credit_limit, loan_amount, maturity_date, investment_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		detail.AccountNumber,
		nullDecimal(detail.InterestRate),
		nullDecimal(detail.CreditLimit),
		nullDecimal(detail.LoanAmount),
		detail.MaturityDate,
		detail.InvestmentType,
		detail.CreatedAt,
		detail.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" { // Unique violation
				return fmt.Errorf("%w: details for account %s already exist", apperrors.ErrDuplicate, detail.AccountNumber)
			}
		}
		return fmt.Errorf("failed to save details for account %s: %w", detail.AccountNumber, err)
	}
	return nil
}

// UpdateDetail overwrites the fields of an existing detail record.
func (r *PgxAccountDetailRepository) UpdateDetail(ctx context.Context, detail domain.AccountDetail) error {
	query := `
		UPDATE account_details
		SET interest_rate = $2, credit_limit = $3, loan_amount = $4, maturity_date = $5, investment_type = $6, updated_at = $7
		WHERE account_number = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		detail.AccountNumber,
		nullDecimal(detail.InterestRate),
		nullDecimal(detail.CreditLimit),
		nullDecimal(detail.LoanAmount),
		detail.MaturityDate,
		detail.InvestmentType,
		detail.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update details for account %s: %w", detail.AccountNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindDetailByAccountNumber retrieves the detail record of an account.
func (r *PgxAccountDetailRepository) FindDetailByAccountNumber(ctx context.Context, accountNumber string) (*domain.AccountDetail, error) {
	query := `
		SELECT account_number, interest_rate, credit_limit, loan_amount, maturity_date, investment_type, created_at, updated_at
		FROM account_details
		WHERE account_number = $1;
	`
	d, err := scanDetail(r.Pool.QueryRow(ctx, query, accountNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find details for account %s: %w", accountNumber, err)
	}
	return d, nil
}

// FindDetailsByAccountNumbers retrieves detail records for a batch of accounts.
func (r *PgxAccountDetailRepository) FindDetailsByAccountNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.AccountDetail, error) {
	if len(accountNumbers) == 0 {
		return map[string]domain.AccountDetail{}, nil
	}

	query := `
		SELECT account_number, interest_rate, credit_limit, loan_amount, maturity_date, investment_type, created_at, updated_at
		FROM account_details
		WHERE account_number = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, accountNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to query details by account numbers: %w", err)
	}
	defer rows.Close()

	detailsMap := make(map[string]domain.AccountDetail)
	for rows.Next() {
		d, err := scanDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detail row during batch fetch: %w", err)
		}
		detailsMap[d.AccountNumber] = *d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detail rows during batch fetch: %w", err)
	}
	return detailsMap, nil
}
