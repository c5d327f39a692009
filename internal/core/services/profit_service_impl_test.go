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
)

// --- Mock ExchangeRateService (reader only) ---
type MockRateReaderService struct {
	mock.Mock
}

func (m *MockRateReaderService) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockRateReaderService) GetRateToMMK(ctx context.Context, currency domain.Currency) (decimal.Decimal, error) {
	args := m.Called(ctx, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateReaderService) RatesToMMK(ctx context.Context) (map[domain.Currency]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Currency]decimal.Decimal), args.Error(1)
}

func (m *MockRateReaderService) RatesFromMMK(ctx context.Context) (map[domain.Currency]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Currency]decimal.Decimal), args.Error(1)
}

func (m *MockRateReaderService) ConvertToMMK(ctx context.Context, amount decimal.Decimal, currency domain.Currency) (decimal.Decimal, error) {
	args := m.Called(ctx, amount, currency)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

type ProfitServiceTestSuite struct {
	suite.Suite
	mockProfitRepo  *MockProfitRepository
	mockAccountRepo *MockAccountRepository
	mockRateSvc     *MockRateReaderService
	service         portssvc.ProfitSvcFacade

	userID    string
	accountID string
}

func (suite *ProfitServiceTestSuite) SetupTest() {
	suite.mockProfitRepo = new(MockProfitRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockRateSvc = new(MockRateReaderService)
	suite.service = services.NewProfitServiceImpl(suite.mockProfitRepo, suite.mockAccountRepo, suite.mockRateSvc)
	suite.userID = uuid.NewString()
	suite.accountID = uuid.NewString()
}

func (suite *ProfitServiceTestSuite) ownAccount() *domain.Account {
	return &domain.Account{
		AccountID: suite.accountID,
		UserID:    suite.userID,
		Currency:  domain.MMK,
		Balance:   decimal.NewFromInt(1_000_000),
		Status:    domain.AccountActive,
	}
}

func (suite *ProfitServiceTestSuite) anyWindow() (interface{}, interface{}) {
	return mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")
}

func (suite *ProfitServiceTestSuite) TestCalculateDailyProfit_RepricesExchangeLegs() {
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	start, end := suite.anyWindow()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(suite.ownAccount(), nil).Once()
	suite.mockProfitRepo.On("SumBrokeredProfit", ctx, suite.accountID, start, end).Return(decimal.NewFromInt(5_000), nil).Once()
	// Bought 30 USD for 100,000 MMK. At today's 3,300 MMK/USD the position is
	// worth 99,000, a repriced loss of 1,000.
	suite.mockProfitRepo.On("ListExchangeLegs", ctx, suite.accountID, start, end).Return([]domain.ExchangeLeg{
		{
			AmountOut:    decimal.NewFromInt(100_000),
			AmountIn:     decimal.NewFromInt(30),
			FromCurrency: domain.MMK,
			ToCurrency:   domain.USD,
		},
	}, nil).Once()
	suite.mockProfitRepo.On("ListCrossSpreads", ctx, suite.accountID, start, end).Return([]domain.CrossSpread{}, nil).Once()
	suite.mockRateSvc.On("GetRateToMMK", ctx, domain.USD).Return(decimal.NewFromInt(3_300), nil).Once()
	suite.mockRateSvc.On("GetRateToMMK", ctx, domain.MMK).Return(decimal.NewFromInt(1), nil).Once()

	resp, err := suite.service.CalculateDailyProfit(ctx, suite.accountID, day, suite.userID)

	suite.Require().NoError(err)
	suite.True(resp.ExchangeProfit.Equal(decimal.NewFromInt(-1_000)), "got %s", resp.ExchangeProfit)
	suite.True(resp.BrokeredProfit.Equal(decimal.NewFromInt(5_000)))
	suite.True(resp.TotalProfitMMK.Equal(decimal.NewFromInt(4_000)))
	suite.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), resp.Date)
	suite.mockProfitRepo.AssertExpectations(suite.T())
}

func (suite *ProfitServiceTestSuite) TestCalculateDailyProfit_CrossSpread() {
	ctx := context.Background()
	day := time.Now()
	start, end := suite.anyWindow()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(suite.ownAccount(), nil).Once()
	suite.mockProfitRepo.On("SumBrokeredProfit", ctx, suite.accountID, start, end).Return(decimal.Zero, nil).Once()
	suite.mockProfitRepo.On("ListExchangeLegs", ctx, suite.accountID, start, end).Return([]domain.ExchangeLeg{}, nil).Once()
	// 100 units sold at 3,500 against a 3,400 supplier rate: 10,000 spread.
	suite.mockProfitRepo.On("ListCrossSpreads", ctx, suite.accountID, start, end).Return([]domain.CrossSpread{
		{
			ForeignAmount: decimal.NewFromInt(100),
			SupplierRate:  decimal.NewFromInt(3_400),
			CustomerRate:  decimal.NewFromInt(3_500),
		},
	}, nil).Once()

	resp, err := suite.service.CalculateDailyProfit(ctx, suite.accountID, day, suite.userID)

	suite.Require().NoError(err)
	suite.True(resp.CrossProfit.Equal(decimal.NewFromInt(10_000)))
	suite.True(resp.TotalProfitMMK.Equal(decimal.NewFromInt(10_000)))
}

func (suite *ProfitServiceTestSuite) TestCalculateDailyProfit_OtherUsersAccountHidden() {
	ctx := context.Background()
	account := suite.ownAccount()
	account.UserID = uuid.NewString()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(account, nil).Once()

	_, err := suite.service.CalculateDailyProfit(ctx, suite.accountID, time.Now(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockProfitRepo.AssertNotCalled(suite.T(), "SumBrokeredProfit")
}

func (suite *ProfitServiceTestSuite) TestDailyProfitMMK_EmptyDayIsZero() {
	ctx := context.Background()
	start, end := suite.anyWindow()

	suite.mockProfitRepo.On("SumBrokeredProfit", ctx, suite.accountID, start, end).Return(decimal.Zero, nil).Once()
	suite.mockProfitRepo.On("ListExchangeLegs", ctx, suite.accountID, start, end).Return([]domain.ExchangeLeg{}, nil).Once()
	suite.mockProfitRepo.On("ListCrossSpreads", ctx, suite.accountID, start, end).Return([]domain.CrossSpread{}, nil).Once()

	profit, err := suite.service.DailyProfitMMK(ctx, suite.accountID, time.Now())

	suite.Require().NoError(err)
	suite.True(profit.IsZero())
}

func (suite *ProfitServiceTestSuite) TestCalculateProfitRange_SumsEachDay() {
	ctx := context.Background()
	from := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 11, 18, 0, 0, 0, time.Local)
	start, end := suite.anyWindow()

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(suite.ownAccount(), nil).Once()
	// Two calendar days, so each profit source is queried twice. Only the
	// brokered source carries profit: 5,000 per day.
	suite.mockProfitRepo.On("SumBrokeredProfit", ctx, suite.accountID, start, end).Return(decimal.NewFromInt(5_000), nil).Twice()
	suite.mockProfitRepo.On("ListExchangeLegs", ctx, suite.accountID, start, end).Return([]domain.ExchangeLeg{}, nil).Twice()
	suite.mockProfitRepo.On("ListCrossSpreads", ctx, suite.accountID, start, end).Return([]domain.CrossSpread{}, nil).Twice()

	resp, err := suite.service.CalculateProfitRange(ctx, suite.accountID, from, to, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Days, 2)
	suite.Equal(time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), resp.Days[0].Date)
	suite.Equal(time.Date(2026, 3, 11, 0, 0, 0, 0, time.Local), resp.Days[1].Date)
	suite.True(resp.TotalProfitMMK.Equal(decimal.NewFromInt(10_000)))
	suite.mockProfitRepo.AssertExpectations(suite.T())
}

func (suite *ProfitServiceTestSuite) TestCalculateProfitRange_RejectsInvertedRange() {
	ctx := context.Background()
	from := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)
	to := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.accountID).Return(suite.ownAccount(), nil).Once()

	_, err := suite.service.CalculateProfitRange(ctx, suite.accountID, from, to, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockProfitRepo.AssertNotCalled(suite.T(), "SumBrokeredProfit")
}

func TestProfitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfitServiceTestSuite))
}
