package services_test

import (
	"context"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// Shared mocks for the service suites in this package.

// MockAccountRepository is a mock type for the AccountRepository interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string, page int, size int) ([]domain.Account, int64, error) {
	args := m.Called(ctx, userID, page, size)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountRepository) FindAccountsByStatus(ctx context.Context, status domain.AccountStatus) ([]domain.Account, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByInstitution(ctx context.Context, institutionName string) ([]domain.Account, error) {
	args := m.Called(ctx, institutionName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountStatus(ctx context.Context, accountNumber string, status domain.AccountStatus, now time.Time) error {
	args := m.Called(ctx, accountNumber, status, now)
	return args.Error(0)
}

// MockAccountDetailRepository is a mock type for the AccountDetailRepository interface
type MockAccountDetailRepository struct {
	mock.Mock
}

func (m *MockAccountDetailRepository) SaveDetail(ctx context.Context, detail domain.AccountDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockAccountDetailRepository) UpdateDetail(ctx context.Context, detail domain.AccountDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockAccountDetailRepository) FindDetailByAccountNumber(ctx context.Context, accountNumber string) (*domain.AccountDetail, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountDetail), args.Error(1)
}

func (m *MockAccountDetailRepository) FindDetailsByAccountNumbers(ctx context.Context, accountNumbers []string) (map[string]domain.AccountDetail, error) {
	args := m.Called(ctx, accountNumbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.AccountDetail), args.Error(1)
}

// MockAccountTypeRepository is a mock type for the AccountTypeRepository interface
type MockAccountTypeRepository struct {
	mock.Mock
}

func (m *MockAccountTypeRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) (*domain.AccountType, error) {
	args := m.Called(ctx, accountType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) UpdateAccountType(ctx context.Context, accountType domain.AccountType) error {
	args := m.Called(ctx, accountType)
	return args.Error(0)
}

func (m *MockAccountTypeRepository) FindAccountTypeByID(ctx context.Context, accountTypeID int) (*domain.AccountType, error) {
	args := m.Called(ctx, accountTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountType), args.Error(1)
}

func (m *MockAccountTypeRepository) DeleteAccountType(ctx context.Context, accountTypeID int) error {
	args := m.Called(ctx, accountTypeID)
	return args.Error(0)
}

func (m *MockAccountTypeRepository) ExistsAccountTypeByID(ctx context.Context, accountTypeID int) (bool, error) {
	args := m.Called(ctx, accountTypeID)
	return args.Bool(0), args.Error(1)
}

// MockAccountTypeCache is a mock type for the AccountTypeCache interface
type MockAccountTypeCache struct {
	mock.Mock
}

func (m *MockAccountTypeCache) Get(ctx context.Context, accountTypeID int) (*domain.AccountType, bool) {
	args := m.Called(ctx, accountTypeID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.AccountType), args.Bool(1)
}

func (m *MockAccountTypeCache) GetList(ctx context.Context) ([]domain.AccountType, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]domain.AccountType), args.Bool(1)
}

func (m *MockAccountTypeCache) Put(ctx context.Context, accountType *domain.AccountType) {
	m.Called(ctx, accountType)
}

func (m *MockAccountTypeCache) PutList(ctx context.Context, accountTypes []domain.AccountType) {
	m.Called(ctx, accountTypes)
}

func (m *MockAccountTypeCache) Evict(ctx context.Context, accountTypeID int) {
	m.Called(ctx, accountTypeID)
}

// MockUserVerifier is a mock type for the UserVerifierSvc interface
type MockUserVerifier struct {
	mock.Mock
}

func (m *MockUserVerifier) UserExists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockEventPublisher is a mock type for the EventPublisherSvc interface
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishAccountEvent(ctx context.Context, event domain.AccountEvent) {
	m.Called(ctx, event)
}
