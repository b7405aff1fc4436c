package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finhub/accounts_service/internal/apperrors"
	"github.com/finhub/accounts_service/internal/core/domain"
	portssvc "github.com/finhub/accounts_service/internal/core/ports/services"
	"github.com/finhub/accounts_service/internal/core/services"
	"github.com/finhub/accounts_service/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockDetailRepo  *MockAccountDetailRepository
	mockTypeRepo    *MockAccountTypeRepository
	mockVerifier    *MockUserVerifier
	mockPublisher   *MockEventPublisher
	service         portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockDetailRepo = new(MockAccountDetailRepository)
	suite.mockTypeRepo = new(MockAccountTypeRepository)
	suite.mockVerifier = new(MockUserVerifier)
	suite.mockPublisher = new(MockEventPublisher)
	suite.service = services.NewAccountService(
		suite.mockAccountRepo,
		suite.mockDetailRepo,
		suite.mockTypeRepo,
		suite.mockVerifier,
		suite.mockPublisher,
	)
}

func (suite *AccountServiceTestSuite) assertAllExpectations() {
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockDetailRepo.AssertExpectations(suite.T())
	suite.mockTypeRepo.AssertExpectations(suite.T())
	suite.mockVerifier.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func savingsType() *domain.AccountType {
	return &domain.AccountType{ID: 1, Name: domain.TypeSavings, Description: "Interest-bearing savings account"}
}

// --- CreateAccount ---

func (suite *AccountServiceTestSuite) TestCreateAccount_SavingsSuccess() {
	ctx := context.Background()
	userID := uuid.NewString()
	rate := decimal.NewFromFloat(2.5)
	req := dto.CreateAccountRequest{
		Name:            "My Savings",
		InstitutionName: "First National",
		AccountTypeID:   1,
		Currency:        "USD",
		UserID:          userID,
		InterestRate:    &rate,
	}

	suite.mockVerifier.On("UserExists", ctx, userID).Return(true, nil).Once()
	suite.mockTypeRepo.On("FindAccountTypeByID", ctx, 1).Return(savingsType(), nil).Once()

	var savedAccount domain.Account
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { savedAccount = args.Get(1).(domain.Account) }).
		Return(nil).Once()

	var savedDetail domain.AccountDetail
	suite.mockDetailRepo.On("SaveDetail", ctx, mock.AnythingOfType("domain.AccountDetail")).
		Run(func(args mock.Arguments) { savedDetail = args.Get(1).(domain.AccountDetail) }).
		Return(nil).Once()

	var published domain.AccountEvent
	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.AnythingOfType("domain.AccountEvent")).
		Run(func(args mock.Arguments) { published = args.Get(1).(domain.AccountEvent) }).
		Once()

	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, mock.AnythingOfType("string"), domain.StatusOpen, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)

	// Persisted at OPENING, served back as OPEN.
	suite.Equal(domain.StatusOpening, savedAccount.Status)
	suite.Equal(domain.StatusOpen, resp.Status)
	suite.NotEmpty(resp.AccountNumber)
	suite.Equal(savedAccount.AccountNumber, resp.AccountNumber)
	suite.Equal(domain.TypeSavings, resp.AccountTypeName)
	suite.Equal(userID, resp.OwnerUserID)

	// Savings gets exactly the interest rate detail.
	suite.Equal(savedAccount.AccountNumber, savedDetail.AccountNumber)
	suite.Require().NotNil(savedDetail.InterestRate)
	suite.True(rate.Equal(*savedDetail.InterestRate))
	suite.Nil(savedDetail.CreditLimit)
	suite.Require().NotNil(resp.AccountDetail)
	suite.True(rate.Equal(*resp.AccountDetail.InterestRate))

	// Event snapshot is taken before the advance to OPEN.
	suite.Equal(domain.EventAccountCreated, published.EventType)
	suite.Equal(domain.StatusOpening, published.Status)
	suite.Equal(userID, published.UserID)
	suite.Equal(savedAccount.AccountNumber, published.AccountNumber)
	suite.WithinDuration(time.Now(), published.Timestamp, time.Second)

	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_IgnoresFieldsOutsideTypePolicy() {
	ctx := context.Background()
	userID := uuid.NewString()
	rate := decimal.NewFromFloat(19.9)
	limit := decimal.NewFromInt(5000)
	req := dto.CreateAccountRequest{
		Name:            "Everyday Card",
		InstitutionName: "First National",
		AccountTypeID:   3,
		Currency:        "EUR",
		UserID:          userID,
		InterestRate:    &rate, // not applicable to CREDIT_CARD
		CreditLimit:     &limit,
	}

	cardType := &domain.AccountType{ID: 3, Name: domain.TypeCreditCard}
	suite.mockVerifier.On("UserExists", ctx, userID).Return(true, nil).Once()
	suite.mockTypeRepo.On("FindAccountTypeByID", ctx, 3).Return(cardType, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	var savedDetail domain.AccountDetail
	suite.mockDetailRepo.On("SaveDetail", ctx, mock.AnythingOfType("domain.AccountDetail")).
		Run(func(args mock.Arguments) { savedDetail = args.Get(1).(domain.AccountDetail) }).
		Return(nil).Once()
	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.AnythingOfType("domain.AccountEvent")).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, mock.AnythingOfType("string"), domain.StatusOpen, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Require().NotNil(savedDetail.CreditLimit)
	suite.True(limit.Equal(*savedDetail.CreditLimit))
	suite.Nil(savedDetail.InterestRate)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DigitalWalletGetsNoDetail() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:            "Wallet",
		InstitutionName: "PayFast",
		AccountTypeID:   6,
		Currency:        "USD",
		UserID:          userID,
	}

	walletType := &domain.AccountType{ID: 6, Name: domain.TypeDigitalWallet}
	suite.mockVerifier.On("UserExists", ctx, userID).Return(true, nil).Once()
	suite.mockTypeRepo.On("FindAccountTypeByID", ctx, 6).Return(walletType, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.AnythingOfType("domain.AccountEvent")).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, mock.AnythingOfType("string"), domain.StatusOpen, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Nil(resp.AccountDetail)
	suite.mockDetailRepo.AssertNotCalled(suite.T(), "SaveDetail", mock.Anything, mock.Anything)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownTypeNothingPersisted() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:            "Ghost Type",
		InstitutionName: "First National",
		AccountTypeID:   99,
		Currency:        "USD",
		UserID:          userID,
	}

	suite.mockVerifier.On("UserExists", ctx, userID).Return(true, nil).Once()
	suite.mockTypeRepo.On("FindAccountTypeByID", ctx, 99).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishAccountEvent", mock.Anything, mock.Anything)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnknownUserNothingPersisted() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:            "No Owner",
		InstitutionName: "First National",
		AccountTypeID:   1,
		Currency:        "USD",
		UserID:          userID,
	}

	suite.mockVerifier.On("UserExists", ctx, userID).Return(false, nil).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockTypeRepo.AssertNotCalled(suite.T(), "FindAccountTypeByID", mock.Anything, mock.Anything)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_VerifierOutageSurfacesAsDependencyError() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{
		Name:            "Outage",
		InstitutionName: "First National",
		AccountTypeID:   1,
		Currency:        "USD",
		UserID:          userID,
	}

	suite.mockVerifier.On("UserExists", ctx, userID).Return(false, apperrors.ErrDependency).Once()

	resp, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrDependency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.assertAllExpectations()
}

// --- GetAccount ---

func (suite *AccountServiceTestSuite) TestGetAccount_Success() {
	ctx := context.Background()
	number := uuid.NewString()
	account := &domain.Account{
		AccountNumber:   number,
		Name:            "Found",
		AccountTypeID:   1,
		AccountTypeName: domain.TypeSavings,
		Status:          domain.StatusOpen,
		Currency:        "USD",
	}
	rate := decimal.NewFromFloat(1.2)
	detail := &domain.AccountDetail{AccountNumber: number, InterestRate: &rate}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(account, nil).Once()
	suite.mockDetailRepo.On("FindDetailByAccountNumber", ctx, number).Return(detail, nil).Once()

	resp, err := suite.service.GetAccount(ctx, number)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(number, resp.AccountNumber)
	suite.Require().NotNil(resp.AccountDetail)
	suite.True(rate.Equal(*resp.AccountDetail.InterestRate))
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestGetAccount_NotFound() {
	ctx := context.Background()
	number := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetAccount(ctx, number)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.assertAllExpectations()
}

// --- ListAccountsByUser ---

func (suite *AccountServiceTestSuite) TestListAccountsByUser_PaginationTotals() {
	ctx := context.Background()
	userID := uuid.NewString()
	accounts := []domain.Account{
		{AccountNumber: uuid.NewString(), AccountTypeName: domain.TypeSavings, Status: domain.StatusOpen, OwnerUserID: userID},
		{AccountNumber: uuid.NewString(), AccountTypeName: domain.TypeDigitalWallet, Status: domain.StatusOpen, OwnerUserID: userID},
	}

	suite.mockVerifier.On("UserExists", ctx, userID).Return(true, nil).Once()
	suite.mockAccountRepo.On("ListAccountsByUser", ctx, userID, 2, 10).Return(accounts, int64(25), nil).Once()
	suite.mockDetailRepo.On("FindDetailsByAccountNumbers", ctx, mock.AnythingOfType("[]string")).
		Return(map[string]domain.AccountDetail{}, nil).Once()

	resp, err := suite.service.ListAccountsByUser(ctx, userID, 2, 10)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Accounts, 2)
	suite.Equal(2, resp.Page)
	suite.Equal(10, resp.Size)
	suite.Equal(int64(25), resp.TotalElements)
	suite.Equal(3, resp.TotalPages)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestListAccountsByUser_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockVerifier.On("UserExists", ctx, userID).Return(false, nil).Once()

	resp, err := suite.service.ListAccountsByUser(ctx, userID, 0, 10)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "ListAccountsByUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.assertAllExpectations()
}

// --- ListAccountsByInstitution ---

func (suite *AccountServiceTestSuite) TestListAccountsByInstitution_AttachesDetails() {
	ctx := context.Background()
	withDetail := uuid.NewString()
	withoutDetail := uuid.NewString()
	accounts := []domain.Account{
		{AccountNumber: withDetail, AccountTypeName: domain.TypeLoan, Status: domain.StatusOpen},
		{AccountNumber: withoutDetail, AccountTypeName: domain.TypeDigitalWallet, Status: domain.StatusOpen},
	}
	loan := decimal.NewFromInt(150000)

	suite.mockAccountRepo.On("FindAccountsByInstitution", ctx, "First National").Return(accounts, nil).Once()
	suite.mockDetailRepo.On("FindDetailsByAccountNumbers", ctx, []string{withDetail, withoutDetail}).
		Return(map[string]domain.AccountDetail{
			withDetail: {AccountNumber: withDetail, LoanAmount: &loan},
		}, nil).Once()

	views, err := suite.service.ListAccountsByInstitution(ctx, "First National")

	suite.Require().NoError(err)
	suite.Require().Len(views, 2)
	suite.Require().NotNil(views[0].AccountDetail)
	suite.True(loan.Equal(*views[0].AccountDetail.LoanAmount))
	suite.Nil(views[1].AccountDetail)
	suite.assertAllExpectations()
}

// --- UpdateAccount ---

func (suite *AccountServiceTestSuite) TestUpdateAccount_CurrencyOnly() {
	ctx := context.Background()
	number := uuid.NewString()
	existing := &domain.Account{
		AccountNumber:   number,
		Name:            "Keep Me",
		InstitutionName: "First National",
		AccountTypeID:   1,
		AccountTypeName: domain.TypeSavings,
		Status:          domain.StatusOpen,
		Currency:        "USD",
		Description:     "original",
	}
	rate := decimal.NewFromFloat(2.5)
	detail := &domain.AccountDetail{AccountNumber: number, InterestRate: &rate}
	newCurrency := "EUR"
	req := dto.UpdateAccountRequest{Currency: &newCurrency}

	var updated domain.Account
	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(existing, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Account) }).
		Return(nil).Once()
	suite.mockDetailRepo.On("FindDetailByAccountNumber", ctx, number).Return(detail, nil).Once()
	suite.mockDetailRepo.On("UpdateDetail", ctx, mock.AnythingOfType("domain.AccountDetail")).Return(nil).Once()

	var published domain.AccountEvent
	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.AnythingOfType("domain.AccountEvent")).
		Run(func(args mock.Arguments) { published = args.Get(1).(domain.AccountEvent) }).
		Once()

	resp, err := suite.service.UpdateAccount(ctx, number, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal("EUR", updated.Currency)
	suite.Equal("Keep Me", updated.Name)
	suite.Equal("original", updated.Description)
	suite.Equal(domain.StatusOpen, updated.Status)
	suite.Equal("EUR", resp.Currency)

	suite.Equal(domain.EventAccountUpdated, published.EventType)
	suite.Equal("EUR", published.Currency)
	suite.Empty(published.UserID)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_TypeChangeResolvesNewName() {
	ctx := context.Background()
	number := uuid.NewString()
	existing := &domain.Account{
		AccountNumber:   number,
		Name:            "Flexible",
		AccountTypeID:   1,
		AccountTypeName: domain.TypeSavings,
		Status:          domain.StatusOpen,
		Currency:        "USD",
	}
	newTypeID := 2
	req := dto.UpdateAccountRequest{AccountTypeID: &newTypeID}
	currentType := &domain.AccountType{ID: 2, Name: domain.TypeCurrent}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(existing, nil).Once()
	suite.mockTypeRepo.On("FindAccountTypeByID", ctx, 2).Return(currentType, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()
	suite.mockDetailRepo.On("FindDetailByAccountNumber", ctx, number).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.AnythingOfType("domain.AccountEvent")).Once()

	resp, err := suite.service.UpdateAccount(ctx, number, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(2, resp.AccountTypeID)
	suite.Equal(domain.TypeCurrent, resp.AccountTypeName)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	number := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.UpdateAccount(ctx, number, dto.UpdateAccountRequest{})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishAccountEvent", mock.Anything, mock.Anything)
	suite.assertAllExpectations()
}

// --- CloseAccount ---

func (suite *AccountServiceTestSuite) TestCloseAccount_Success() {
	ctx := context.Background()
	number := uuid.NewString()
	account := &domain.Account{
		AccountNumber:   number,
		Name:            "Leaving",
		AccountTypeName: domain.TypeSavings,
		Status:          domain.StatusOpen,
		Currency:        "USD",
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, number, domain.StatusClosing, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	var published domain.AccountEvent
	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.AnythingOfType("domain.AccountEvent")).
		Run(func(args mock.Arguments) { published = args.Get(1).(domain.AccountEvent) }).
		Once()

	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, number, domain.StatusClosed, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockDetailRepo.On("FindDetailByAccountNumber", ctx, number).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.CloseAccount(ctx, number)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(domain.StatusClosed, resp.Status)

	// Event snapshot is taken between the two writes.
	suite.Equal(domain.EventAccountClosed, published.EventType)
	suite.Equal(domain.StatusClosing, published.Status)
	suite.Empty(published.UserID)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestCloseAccount_AlreadyClosedReRunsTransitions() {
	ctx := context.Background()
	number := uuid.NewString()
	account := &domain.Account{
		AccountNumber:   number,
		Name:            "Twice",
		AccountTypeName: domain.TypeSavings,
		Status:          domain.StatusClosed,
		Currency:        "USD",
	}

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, number, domain.StatusClosing, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.MatchedBy(func(ev domain.AccountEvent) bool {
		return ev.EventType == domain.EventAccountClosed
	})).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, number, domain.StatusClosed, mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockDetailRepo.On("FindDetailByAccountNumber", ctx, number).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.CloseAccount(ctx, number)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(domain.StatusClosed, resp.Status)
	suite.assertAllExpectations()
}

func (suite *AccountServiceTestSuite) TestCloseAccount_NotFound() {
	ctx := context.Background()
	number := uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByNumber", ctx, number).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.CloseAccount(ctx, number)

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishAccountEvent", mock.Anything, mock.Anything)
	suite.assertAllExpectations()
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
