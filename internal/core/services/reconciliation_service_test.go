package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finhub/accounts_service/internal/core/domain"
	"github.com/finhub/accounts_service/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReconciliationServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	mockPublisher   *MockEventPublisher
	service         *services.ReconciliationService
}

func (suite *ReconciliationServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockPublisher = new(MockEventPublisher)
	suite.service = services.NewReconciliationService(suite.mockAccountRepo, suite.mockPublisher, 5*time.Minute)
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_RedrivesStrandedOpening() {
	ctx := context.Background()
	stale := time.Now().UTC().Add(-time.Hour)
	number := uuid.NewString()
	userID := uuid.NewString()
	stranded := domain.Account{
		AccountNumber:   number,
		Name:            "Stuck",
		AccountTypeName: domain.TypeSavings,
		Status:          domain.StatusOpening,
		Currency:        "USD",
		OwnerUserID:     userID,
		Timestamps:      domain.Timestamps{CreatedAt: stale, UpdatedAt: stale},
	}

	suite.mockAccountRepo.On("FindAccountsByStatus", ctx, domain.StatusOpening).
		Return([]domain.Account{stranded}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByStatus", ctx, domain.StatusClosing).
		Return([]domain.Account{}, nil).Once()

	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.MatchedBy(func(ev domain.AccountEvent) bool {
		return ev.EventType == domain.EventAccountCreated &&
			ev.AccountNumber == number &&
			ev.Status == domain.StatusOpening &&
			ev.UserID == userID
	})).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, number, domain.StatusOpen, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	suite.service.ReconcileStuckAccounts(ctx)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_RedrivesStrandedClosing() {
	ctx := context.Background()
	stale := time.Now().UTC().Add(-time.Hour)
	number := uuid.NewString()
	stranded := domain.Account{
		AccountNumber:   number,
		Name:            "Half Closed",
		AccountTypeName: domain.TypeCurrent,
		Status:          domain.StatusClosing,
		Currency:        "EUR",
		OwnerUserID:     uuid.NewString(),
		Timestamps:      domain.Timestamps{CreatedAt: stale, UpdatedAt: stale},
	}

	suite.mockAccountRepo.On("FindAccountsByStatus", ctx, domain.StatusOpening).
		Return([]domain.Account{}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByStatus", ctx, domain.StatusClosing).
		Return([]domain.Account{stranded}, nil).Once()

	suite.mockPublisher.On("PublishAccountEvent", ctx, mock.MatchedBy(func(ev domain.AccountEvent) bool {
		return ev.EventType == domain.EventAccountClosed && ev.UserID == ""
	})).Once()
	suite.mockAccountRepo.On("UpdateAccountStatus", ctx, number, domain.StatusClosed, mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	suite.service.ReconcileStuckAccounts(ctx)

	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockPublisher.AssertExpectations(suite.T())
}

func (suite *ReconciliationServiceTestSuite) TestReconcile_LeavesFreshTransitionsAlone() {
	ctx := context.Background()
	fresh := time.Now().UTC()
	inFlight := domain.Account{
		AccountNumber: uuid.NewString(),
		Status:        domain.StatusOpening,
		Timestamps:    domain.Timestamps{CreatedAt: fresh, UpdatedAt: fresh},
	}

	suite.mockAccountRepo.On("FindAccountsByStatus", ctx, domain.StatusOpening).
		Return([]domain.Account{inFlight}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByStatus", ctx, domain.StatusClosing).
		Return([]domain.Account{}, nil).Once()

	suite.service.ReconcileStuckAccounts(ctx)

	suite.mockPublisher.AssertNotCalled(suite.T(), "PublishAccountEvent", mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "UpdateAccountStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestReconciliationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationServiceTestSuite))
}
