package dto

import (
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to open a new account.
// The detail fields form a union over all account types; only the ones
// relevant to the resolved type are used, the rest are ignored.
type CreateAccountRequest struct {
	Name            string `json:"name" binding:"required,max=20"`
	InstitutionName string `json:"institutionName" binding:"required,max=50"`
	AccountTypeID   int    `json:"accountTypeID" binding:"required"`
	Currency        string `json:"currency" binding:"required,currencycode"`
	Description     string `json:"description"` // Optional
	UserID          string `json:"userID" binding:"required"`

	// Details based on account type
	InterestRate   *decimal.Decimal `json:"interestRate"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	LoanAmount     *decimal.Decimal `json:"loanAmount"`
	MaturityDate   *time.Time       `json:"maturityDate"`
	InvestmentType *string          `json:"investmentType"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish "not provided" from zero values; absent fields are
// left untouched, never cleared.
type UpdateAccountRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=20"`
	InstitutionName *string `json:"institutionName" binding:"omitempty,max=50"`
	AccountTypeID   *int    `json:"accountTypeID"`
	Currency        *string `json:"currency" binding:"omitempty,currencycode"`
	Description     *string `json:"description"`

	// Details based on account type
	InterestRate   *decimal.Decimal `json:"interestRate"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	LoanAmount     *decimal.Decimal `json:"loanAmount"`
	MaturityDate   *time.Time       `json:"maturityDate"`
	InvestmentType *string          `json:"investmentType"`
}

// AccountDetailResponse is the detail sub-view embedded in AccountResponse.
type AccountDetailResponse struct {
	InterestRate   *decimal.Decimal `json:"interestRate,omitempty"`
	CreditLimit    *decimal.Decimal `json:"creditLimit,omitempty"`
	LoanAmount     *decimal.Decimal `json:"loanAmount,omitempty"`
	MaturityDate   *time.Time       `json:"maturityDate,omitempty"`
	InvestmentType *string          `json:"investmentType,omitempty"`
}

// AccountResponse is the external view of an account. The type display name
// is always resolved; the detail sub-view is present only when a detail
// record exists.
type AccountResponse struct {
	AccountNumber   string                 `json:"accountNumber"`
	Name            string                 `json:"name"`
	InstitutionName string                 `json:"institutionName"`
	AccountTypeID   int                    `json:"accountTypeID"`
	AccountTypeName string                 `json:"accountTypeName"`
	Status          domain.AccountStatus   `json:"status"`
	Currency        string                 `json:"currency"`
	Description     string                 `json:"description,omitempty"`
	OwnerUserID     string                 `json:"ownerUserID"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	AccountDetail   *AccountDetailResponse `json:"accountDetail,omitempty"`
}

// AccountsPageResponse is one zero-based page of a user's accounts plus
// pagination metadata.
type AccountsPageResponse struct {
	Accounts      []AccountResponse `json:"accounts"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}

// ListAccountsByUserParams defines the pagination query parameters.
type ListAccountsByUserParams struct {
	Page int `form:"page,default=0" binding:"gte=0"`
	Size int `form:"size,default=10" binding:"gte=1,lte=100"`
}

// ToAccountResponse converts a domain account and its optional detail record
// to the external view.
func ToAccountResponse(acc *domain.Account, detail *domain.AccountDetail) AccountResponse {
	resp := AccountResponse{
		AccountNumber:   acc.AccountNumber,
		Name:            acc.Name,
		InstitutionName: acc.InstitutionName,
		AccountTypeID:   acc.AccountTypeID,
		AccountTypeName: acc.AccountTypeName,
		Status:          acc.Status,
		Currency:        acc.Currency,
		Description:     acc.Description,
		OwnerUserID:     acc.OwnerUserID,
		CreatedAt:       acc.CreatedAt,
		UpdatedAt:       acc.UpdatedAt,
	}
	if detail != nil {
		resp.AccountDetail = &AccountDetailResponse{
			InterestRate:   detail.InterestRate,
			CreditLimit:    detail.CreditLimit,
			LoanAmount:     detail.LoanAmount,
			MaturityDate:   detail.MaturityDate,
			InvestmentType: detail.InvestmentType,
		}
	}
	return resp
}

// ToDomainAccount converts an external view back to the domain account and
// its optional detail record. Inverse of ToAccountResponse for all scalar
// fields.
func ToDomainAccount(resp AccountResponse) (domain.Account, *domain.AccountDetail) {
	acc := domain.Account{
		AccountNumber:   resp.AccountNumber,
		Name:            resp.Name,
		InstitutionName: resp.InstitutionName,
		AccountTypeID:   resp.AccountTypeID,
		AccountTypeName: resp.AccountTypeName,
		Status:          resp.Status,
		Currency:        resp.Currency,
		Description:     resp.Description,
		OwnerUserID:     resp.OwnerUserID,
		Timestamps: domain.Timestamps{
			CreatedAt: resp.CreatedAt,
			UpdatedAt: resp.UpdatedAt,
		},
	}
	if resp.AccountDetail == nil {
		return acc, nil
	}
	return acc, &domain.AccountDetail{
		AccountNumber:  resp.AccountNumber,
		InterestRate:   resp.AccountDetail.InterestRate,
		CreditLimit:    resp.AccountDetail.CreditLimit,
		LoanAmount:     resp.AccountDetail.LoanAmount,
		MaturityDate:   resp.AccountDetail.MaturityDate,
		InvestmentType: resp.AccountDetail.InvestmentType,
	}
}
