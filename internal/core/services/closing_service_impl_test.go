package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/services"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// --- Mock ProfitService ---
type MockProfitService struct {
	mock.Mock
}

func (m *MockProfitService) CalculateDailyProfit(ctx context.Context, accountID string, day time.Time, requestingUserID string) (*dto.ProfitResponse, error) {
	args := m.Called(ctx, accountID, day, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfitResponse), args.Error(1)
}

func (m *MockProfitService) CalculateProfitRange(ctx context.Context, accountID string, from, to time.Time, requestingUserID string) (*dto.ProfitRangeResponse, error) {
	args := m.Called(ctx, accountID, from, to, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfitRangeResponse), args.Error(1)
}

func (m *MockProfitService) DailyProfitMMK(ctx context.Context, accountID string, day time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, day)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type ClosingServiceTestSuite struct {
	suite.Suite
	mockClosingRepo *MockClosingRepository
	mockAccountRepo *MockAccountRepository
	mockProfitSvc   *MockProfitService
	service         portssvc.ClosingSvcFacade

	userID    string
	accountID string
}

func (suite *ClosingServiceTestSuite) SetupTest() {
	suite.mockClosingRepo = new(MockClosingRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockProfitSvc = new(MockProfitService)
	suite.service = services.NewClosingServiceImpl(suite.mockClosingRepo, suite.mockAccountRepo, suite.mockProfitSvc)
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *ClosingServiceTestSuite) ownAccount(balance int64) *domain.Account {
	return &domain.Account{
		AccountID: suite.accountID,
		UserID:    suite.userID,
		Currency:  domain.MMK,
		Balance:   decimal.NewFromInt(balance),
		Status:    domain.AccountActive,
	}
}

func (suite *ClosingServiceTestSuite) TestCreateClosing_Success() {
	ctx := context.Background()
	req := dto.CreateClosingRequest{
		AccountID:         suite.accountID,
		ActualCashBalance: decimal.NewFromInt(995_000),
		Note:              "short by note count",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(suite.ownAccount(1_000_000), nil).Once()
	suite.mockClosingRepo.On("FindClosingForDay", ctx, suite.accountID, mock.AnythingOfType("time.Time")).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockProfitSvc.On("DailyProfitMMK", ctx, suite.accountID, mock.AnythingOfType("time.Time")).Return(decimal.NewFromInt(12_000), nil).Once()
	suite.mockClosingRepo.On("SaveClosing", ctx, mock.AnythingOfType("domain.DailyClosing")).Return(nil).Once()

	closing, err := suite.service.CreateClosing(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(closing)
	suite.NotEmpty(closing.ClosingID)
	suite.True(closing.SystemBalance.Equal(decimal.NewFromInt(1_000_000)))
	suite.True(closing.Difference.Equal(decimal.NewFromInt(-5_000)), "difference must be actual minus system")
	suite.True(closing.ProfitPerDayMMK.Equal(decimal.NewFromInt(12_000)))
	suite.Equal(0, closing.ClosingDate.Hour())
	suite.mockClosingRepo.AssertExpectations(suite.T())
}

func (suite *ClosingServiceTestSuite) TestCreateClosing_AlreadyClosedToday() {
	ctx := context.Background()
	req := dto.CreateClosingRequest{
		AccountID:         suite.accountID,
		ActualCashBalance: decimal.NewFromInt(1_000_000),
	}
	existing := &domain.DailyClosing{ClosingID: uuid.NewString(), AccountID: suite.accountID}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(suite.ownAccount(1_000_000), nil).Once()
	suite.mockClosingRepo.On("FindClosingForDay", ctx, suite.accountID, mock.AnythingOfType("time.Time")).Return(existing, nil).Once()

	_, err := suite.service.CreateClosing(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrAlreadyClosed)
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "SaveClosing")
}

func (suite *ClosingServiceTestSuite) TestCreateClosing_NegativeActualBalance() {
	ctx := context.Background()
	req := dto.CreateClosingRequest{
		AccountID:         suite.accountID,
		ActualCashBalance: decimal.NewFromInt(-1),
	}

	_, err := suite.service.CreateClosing(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *ClosingServiceTestSuite) TestCreateClosing_OtherUsersAccountForbidden() {
	ctx := context.Background()
	account := suite.ownAccount(1_000_000)
	account.UserID = uuid.NewString()
	req := dto.CreateClosingRequest{
		AccountID:         suite.accountID,
		ActualCashBalance: decimal.NewFromInt(1_000_000),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(account, nil).Once()

	_, err := suite.service.CreateClosing(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockClosingRepo.AssertNotCalled(suite.T(), "SaveClosing")
}

func (suite *ClosingServiceTestSuite) TestCreateClosing_DeletedAccountRejected() {
	ctx := context.Background()
	account := suite.ownAccount(1_000_000)
	account.Status = domain.AccountDeleted
	req := dto.CreateClosingRequest{
		AccountID:         suite.accountID,
		ActualCashBalance: decimal.NewFromInt(1_000_000),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(account, nil).Once()

	_, err := suite.service.CreateClosing(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ClosingServiceTestSuite) TestListClosings_DefaultsApplied() {
	ctx := context.Background()
	closings := []domain.ClosingWithAccount{
		{
			DailyClosing: domain.DailyClosing{ClosingID: uuid.NewString(), AccountID: suite.accountID},
			AccountName:     "MMK cash",
			AccountCurrency: domain.MMK,
		},
	}

	suite.mockClosingRepo.On("ListClosingsByUser", ctx, suite.userID, 20, 0).Return(closings, int64(1), nil).Once()

	resp, err := suite.service.ListClosings(ctx, suite.userID, dto.ListClosingsParams{})

	suite.Require().NoError(err)
	suite.Equal(int64(1), resp.Total)
	suite.Require().Len(resp.Closings, 1)
	suite.mockClosingRepo.AssertExpectations(suite.T())
}

func TestClosingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClosingServiceTestSuite))
}
