package domain_test

import (
	"testing"

	"github.com/finhub/accounts_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDetailFieldsFor(t *testing.T) {
	tests := []struct {
		typeName string
		want     []domain.DetailField
	}{
		{domain.TypeSavings, []domain.DetailField{domain.FieldInterestRate}},
		{domain.TypeCurrent, []domain.DetailField{domain.FieldInterestRate}},
		{domain.TypeCreditCard, []domain.DetailField{domain.FieldCreditLimit}},
		{domain.TypeLoan, []domain.DetailField{domain.FieldLoanAmount, domain.FieldInterestRate, domain.FieldMaturityDate}},
		{domain.TypeInvestment, []domain.DetailField{domain.FieldInvestmentType, domain.FieldInterestRate, domain.FieldMaturityDate}},
		{domain.TypeDigitalWallet, nil},
		{"SOMETHING_ELSE", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			fields := domain.DetailFieldsFor(tt.typeName)
			assert.Len(t, fields, len(tt.want))
			for _, f := range tt.want {
				assert.True(t, fields[f], "expected field %s for type %s", f, tt.typeName)
			}
		})
	}
}

func TestNeedsDetail(t *testing.T) {
	assert.True(t, domain.NeedsDetail(domain.TypeSavings))
	assert.True(t, domain.NeedsDetail(domain.TypeLoan))
	assert.False(t, domain.NeedsDetail(domain.TypeDigitalWallet))
	assert.False(t, domain.NeedsDetail("UNKNOWN_TYPE"))
}
