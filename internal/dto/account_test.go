package dto_test

import (
	"testing"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	"github.com/finhub/accounts_service/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAccountResponse_WithDetail(t *testing.T) {
	now := time.Now().UTC()
	rate := decimal.NewFromFloat(4.2)
	maturity := now.AddDate(5, 0, 0)
	acc := &domain.Account{
		AccountNumber:   "0b819a46-4ebc-47a3-9d0a-8464c4f71b35",
		Name:            "House Loan",
		InstitutionName: "First National",
		AccountTypeID:   4,
		AccountTypeName: domain.TypeLoan,
		Status:          domain.StatusOpen,
		Currency:        "USD",
		Description:     "mortgage",
		OwnerUserID:     "user-1",
		Timestamps:      domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	loan := decimal.NewFromInt(250000)
	detail := &domain.AccountDetail{
		AccountNumber: acc.AccountNumber,
		InterestRate:  &rate,
		LoanAmount:    &loan,
		MaturityDate:  &maturity,
	}

	resp := dto.ToAccountResponse(acc, detail)

	assert.Equal(t, acc.AccountNumber, resp.AccountNumber)
	assert.Equal(t, domain.TypeLoan, resp.AccountTypeName)
	require.NotNil(t, resp.AccountDetail)
	assert.True(t, rate.Equal(*resp.AccountDetail.InterestRate))
	assert.True(t, loan.Equal(*resp.AccountDetail.LoanAmount))
	assert.Equal(t, maturity, *resp.AccountDetail.MaturityDate)
	assert.Nil(t, resp.AccountDetail.CreditLimit)

	// Round-trip back to domain.
	gotAcc, gotDetail := dto.ToDomainAccount(resp)
	assert.Equal(t, *acc, gotAcc)
	require.NotNil(t, gotDetail)
	assert.True(t, loan.Equal(*gotDetail.LoanAmount))
}

func TestToAccountResponse_WithoutDetail(t *testing.T) {
	acc := &domain.Account{
		AccountNumber:   "7f2b0a44-9c1d-4a0e-8f3b-2b1f0c9d8e7a",
		Name:            "Wallet",
		AccountTypeID:   6,
		AccountTypeName: domain.TypeDigitalWallet,
		Status:          domain.StatusOpen,
		Currency:        "EUR",
		OwnerUserID:     "user-2",
	}

	resp := dto.ToAccountResponse(acc, nil)

	assert.Nil(t, resp.AccountDetail)

	gotAcc, gotDetail := dto.ToDomainAccount(resp)
	assert.Equal(t, *acc, gotAcc)
	assert.Nil(t, gotDetail)
}
