package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finhub/accounts_service/internal/apperrors"
	"github.com/finhub/accounts_service/internal/core/domain"
	portsrepo "github.com/finhub/accounts_service/internal/core/ports/repositories"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
	"github.com/finhub/accounts_service/internal/dto"
	"github.com/google/uuid"
)

// accountService is the account lifecycle orchestrator. It validates
// cross-service preconditions, drives the OPENING->OPEN and
// OPEN->CLOSING->CLOSED transitions, shapes the type-specific detail record,
// and emits one lifecycle event per transition.
type accountService struct {
	BaseService
	accountRepo  portsrepo.AccountRepository
	detailRepo   portsrepo.AccountDetailRepository
	typeRepo     portsrepo.AccountTypeRepository
	userVerifier portssvc.UserVerifierSvc
	publisher    portssvc.EventPublisherSvc
}

// NewAccountService creates the account lifecycle orchestrator.
func NewAccountService(
	accountRepo portsrepo.AccountRepository,
	detailRepo portsrepo.AccountDetailRepository,
	typeRepo portsrepo.AccountTypeRepository,
	userVerifier portssvc.UserVerifierSvc,
	publisher portssvc.EventPublisherSvc,
) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo:  accountRepo,
		detailRepo:   detailRepo,
		typeRepo:     typeRepo,
		userVerifier: userVerifier,
		publisher:    publisher,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount opens a new account. The record is persisted at OPENING,
// the detail record (when the type calls for one) and the ACCOUNT_CREATED
// event follow, and only then does the account advance to OPEN. A failure
// after the first write durably leaves the record at OPENING; the
// reconciliation sweep re-drives such records.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	exists, err := s.userVerifier.UserExists(ctx, req.UserID)
	if err != nil {
		s.LogError(ctx, err, "User existence check degraded", slog.String("user_id", req.UserID))
		return nil, fmt.Errorf("could not verify user %s: %w", req.UserID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: user does not exist: %s", apperrors.ErrValidation, req.UserID)
	}

	accountType, err := s.typeRepo.FindAccountTypeByID(ctx, req.AccountTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to resolve account type", slog.Int("account_type_id", req.AccountTypeID))
			return nil, err
		}
		return nil, fmt.Errorf("%w: account type not found with ID: %d", apperrors.ErrNotFound, req.AccountTypeID)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountNumber:   uuid.NewString(),
		Name:            req.Name,
		InstitutionName: req.InstitutionName,
		AccountTypeID:   accountType.ID,
		AccountTypeName: accountType.Name,
		Status:          domain.StatusOpening,
		Currency:        req.Currency,
		Description:     req.Description,
		OwnerUserID:     req.UserID,
		Timestamps: domain.Timestamps{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_number", account.AccountNumber))
		return nil, err
	}

	var detail *domain.AccountDetail
	if domain.NeedsDetail(accountType.Name) {
		d := buildAccountDetail(&account, accountType.Name, req)
		if err := s.detailRepo.SaveDetail(ctx, d); err != nil {
			s.LogError(ctx, err, "Failed to save account details", slog.String("account_number", account.AccountNumber))
			return nil, err
		}
		detail = &d
	}

	// Event carries the snapshot at emission time, i.e. status OPENING.
	s.publisher.PublishAccountEvent(ctx, domain.NewAccountEvent(&account, req.UserID, domain.EventAccountCreated))

	account.Status = domain.StatusOpen
	account.UpdatedAt = time.Now().UTC()
	if err := s.accountRepo.UpdateAccountStatus(ctx, account.AccountNumber, domain.StatusOpen, account.UpdatedAt); err != nil {
		s.LogError(ctx, err, "Failed to advance account to OPEN; record left at OPENING",
			slog.String("account_number", account.AccountNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_number", account.AccountNumber),
		slog.String("account_type", accountType.Name))
	resp := dto.ToAccountResponse(&account, detail)
	return &resp, nil
}

// GetAccount is a pure lookup with no side effects.
func (s *accountService) GetAccount(ctx context.Context, accountNumber string) (*dto.AccountResponse, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	detail, err := s.findDetail(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	resp := dto.ToAccountResponse(account, detail)
	return &resp, nil
}

// ListAccountsByUser returns one zero-based page of the user's accounts.
// The owner must exist in the identity service, same check as creation.
func (s *accountService) ListAccountsByUser(ctx context.Context, userID string, page int, size int) (*dto.AccountsPageResponse, error) {
	exists, err := s.userVerifier.UserExists(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "User existence check degraded", slog.String("user_id", userID))
		return nil, fmt.Errorf("could not verify user %s: %w", userID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: user does not exist: %s", apperrors.ErrValidation, userID)
	}

	accounts, total, err := s.accountRepo.ListAccountsByUser(ctx, userID, page, size)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("user_id", userID))
		return nil, err
	}

	views, err := s.toAccountViews(ctx, accounts)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &dto.AccountsPageResponse{
		Accounts:      views,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// ListAccountsByInstitution returns every account held at the institution.
func (s *accountService) ListAccountsByInstitution(ctx context.Context, institutionName string) ([]dto.AccountResponse, error) {
	accounts, err := s.accountRepo.FindAccountsByInstitution(ctx, institutionName)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts by institution", slog.String("institution", institutionName))
		return nil, err
	}
	return s.toAccountViews(ctx, accounts)
}

// UpdateAccount applies a partial update: only fields present in the request
// are overwritten, on both the account and (when one exists) its detail
// record. Status is never touched and no reconciliation of detail fields
// against a changed type is attempted.
func (s *accountService) UpdateAccount(ctx context.Context, accountNumber string, req dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for update", slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.InstitutionName != nil {
		account.InstitutionName = *req.InstitutionName
	}
	if req.AccountTypeID != nil {
		newType, err := s.typeRepo.FindAccountTypeByID(ctx, *req.AccountTypeID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: account type not found with ID: %d", apperrors.ErrNotFound, *req.AccountTypeID)
			}
			return nil, err
		}
		account.AccountTypeID = newType.ID
		account.AccountTypeName = newType.Name
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	account.UpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_number", accountNumber))
		return nil, err
	}

	detail, err := s.findDetail(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if detail != nil {
		applyDetailUpdate(detail, req)
		detail.UpdatedAt = account.UpdatedAt
		if err := s.detailRepo.UpdateDetail(ctx, *detail); err != nil {
			s.LogError(ctx, err, "Failed to update account details", slog.String("account_number", accountNumber))
			return nil, err
		}
	}

	// Owner user id is not required for update transitions.
	s.publisher.PublishAccountEvent(ctx, domain.NewAccountEvent(account, "", domain.EventAccountUpdated))

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_number", accountNumber))
	resp := dto.ToAccountResponse(account, detail)
	return &resp, nil
}

// CloseAccount drives OPEN -> CLOSING -> CLOSED with the ACCOUNT_CLOSED event
// emitted between the two writes. Closure is terminal; re-closing an already
// CLOSED account re-runs the transitions and re-emits the event.
func (s *accountService) CloseAccount(ctx context.Context, accountNumber string) (*dto.AccountResponse, error) {
	account, err := s.accountRepo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account for closure", slog.String("account_number", accountNumber))
		}
		return nil, err
	}

	now := time.Now().UTC()
	account.Status = domain.StatusClosing
	account.UpdatedAt = now
	if err := s.accountRepo.UpdateAccountStatus(ctx, accountNumber, domain.StatusClosing, now); err != nil {
		s.LogError(ctx, err, "Failed to move account to CLOSING", slog.String("account_number", accountNumber))
		return nil, err
	}

	// Event carries the snapshot at emission time, i.e. status CLOSING.
	s.publisher.PublishAccountEvent(ctx, domain.NewAccountEvent(account, "", domain.EventAccountClosed))

	now = time.Now().UTC()
	account.Status = domain.StatusClosed
	account.UpdatedAt = now
	if err := s.accountRepo.UpdateAccountStatus(ctx, accountNumber, domain.StatusClosed, now); err != nil {
		s.LogError(ctx, err, "Failed to advance account to CLOSED; record left at CLOSING",
			slog.String("account_number", accountNumber))
		return nil, err
	}

	detail, err := s.findDetail(ctx, accountNumber)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Account closed successfully", slog.String("account_number", accountNumber))
	resp := dto.ToAccountResponse(account, detail)
	return &resp, nil
}

// findDetail fetches the detail record, mapping its absence to nil.
func (s *accountService) findDetail(ctx context.Context, accountNumber string) (*domain.AccountDetail, error) {
	detail, err := s.detailRepo.FindDetailByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to find account details", slog.String("account_number", accountNumber))
		return nil, err
	}
	return detail, nil
}

// toAccountViews maps accounts to views, batch-fetching the detail records.
func (s *accountService) toAccountViews(ctx context.Context, accounts []domain.Account) ([]dto.AccountResponse, error) {
	numbers := make([]string, len(accounts))
	for i := range accounts {
		numbers[i] = accounts[i].AccountNumber
	}
	details, err := s.detailRepo.FindDetailsByAccountNumbers(ctx, numbers)
	if err != nil {
		s.LogError(ctx, err, "Failed to batch-fetch account details")
		return nil, err
	}

	views := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		var detail *domain.AccountDetail
		if d, ok := details[accounts[i].AccountNumber]; ok {
			detail = &d
		}
		views[i] = dto.ToAccountResponse(&accounts[i], detail)
	}
	return views, nil
}

// buildAccountDetail populates the detail fields the account type calls for;
// request fields outside that set are ignored.
func buildAccountDetail(account *domain.Account, typeName string, req dto.CreateAccountRequest) domain.AccountDetail {
	fields := domain.DetailFieldsFor(typeName)
	detail := domain.AccountDetail{
		AccountNumber: account.AccountNumber,
		Timestamps: domain.Timestamps{
			CreatedAt: account.CreatedAt,
			UpdatedAt: account.UpdatedAt,
		},
	}
	if fields[domain.FieldInterestRate] {
		detail.InterestRate = req.InterestRate
	}
	if fields[domain.FieldCreditLimit] {
		detail.CreditLimit = req.CreditLimit
	}
	if fields[domain.FieldLoanAmount] {
		detail.LoanAmount = req.LoanAmount
	}
	if fields[domain.FieldMaturityDate] {
		detail.MaturityDate = req.MaturityDate
	}
	if fields[domain.FieldInvestmentType] {
		detail.InvestmentType = req.InvestmentType
	}
	return detail
}

// applyDetailUpdate overwrites detail fields present in the request.
func applyDetailUpdate(detail *domain.AccountDetail, req dto.UpdateAccountRequest) {
	if req.InterestRate != nil {
		detail.InterestRate = req.InterestRate
	}
	if req.CreditLimit != nil {
		detail.CreditLimit = req.CreditLimit
	}
	if req.LoanAmount != nil {
		detail.LoanAmount = req.LoanAmount
	}
	if req.MaturityDate != nil {
		detail.MaturityDate = req.MaturityDate
	}
	if req.InvestmentType != nil {
		detail.InvestmentType = req.InvestmentType
	}
}
