package dto

import (
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
)

// AccountTypeRequest defines the data for creating or updating a catalog entry.
type AccountTypeRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Description string `json:"description" binding:"max=100"`
}

// AccountTypeResponse is the external view of a catalog entry.
type AccountTypeResponse struct {
	AccountTypeID int       `json:"accountTypeID"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToAccountTypeResponse converts a domain account type to the external view.
func ToAccountTypeResponse(t *domain.AccountType) AccountTypeResponse {
	return AccountTypeResponse{
		AccountTypeID: t.ID,
		Name:          t.Name,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToAccountTypeResponseList converts a slice of domain account types.
func ToAccountTypeResponseList(ts []domain.AccountType) []AccountTypeResponse {
	res := make([]AccountTypeResponse, len(ts))
	for i := range ts {
		res[i] = ToAccountTypeResponse(&ts[i])
	}
	return res
}
