package services_test

import (
	"context"
	"testing"

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

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo *MockAccountRepository
	service         portssvc.AccountSvcFacade

	userID string
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewAccountServiceImpl(suite.mockAccountRepo)
	suite.userID = uuid.NewString()
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	initial := decimal.NewFromInt(500_000)
	req := dto.CreateAccountRequest{
		Name:           "Front counter MMK",
		Currency:       domain.MMK,
		InitialBalance: &initial,
	}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.UserID == suite.userID &&
			acc.Currency == domain.MMK &&
			acc.Balance.Equal(initial) &&
			acc.Status == domain.AccountActive
	})).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.NotEmpty(account.AccountID)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_DefaultsToZeroBalance() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "THB drawer", Currency: domain.THB}

	suite.mockAccountRepo.On("SaveAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Balance.IsZero()
	})).Return(nil).Once()

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().NoError(err)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NegativeInitialBalance() {
	ctx := context.Background()
	initial := decimal.NewFromInt(-1)
	req := dto.CreateAccountRequest{Name: "bad", Currency: domain.MMK, InitialBalance: &initial}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount")
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnsupportedCurrency() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{Name: "bad", Currency: domain.Currency("BTC")}

	_, err := suite.service.CreateAccount(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_HidesOtherUsersAccount() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    uuid.NewString(),
		Status:    domain.AccountActive,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()

	_, err := suite.service.GetAccountByID(ctx, account.AccountID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestListAccounts_CurrencyFilter() {
	ctx := context.Background()
	accounts := []domain.Account{{AccountID: uuid.NewString(), UserID: suite.userID, Currency: domain.USD}}

	suite.mockAccountRepo.On("FindAccountsByUserAndCurrency", ctx, suite.userID, domain.USD).Return(accounts, nil).Once()

	res, err := suite.service.ListAccounts(ctx, suite.userID, dto.ListAccountsParams{Currency: "USD"})

	suite.Require().NoError(err)
	suite.Len(res, 1)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByUser")
}

func (suite *AccountServiceTestSuite) TestListAccounts_InvalidCurrencyFilter() {
	ctx := context.Background()

	_, err := suite.service.ListAccounts(ctx, suite.userID, dto.ListAccountsParams{Currency: "BTC"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AccountServiceTestSuite) TestGetTotalBalance_SumsAccounts() {
	ctx := context.Background()
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), UserID: suite.userID, Currency: domain.USD, Balance: decimal.NewFromInt(1_200)},
		{AccountID: uuid.NewString(), UserID: suite.userID, Currency: domain.USD, Balance: decimal.NewFromInt(300)},
	}
	suite.mockAccountRepo.On("FindAccountsByUserAndCurrency", ctx, suite.userID, domain.USD).
		Return(accounts, nil).Once()

	total, err := suite.service.GetTotalBalance(ctx, suite.userID, domain.USD)

	suite.Require().NoError(err)
	suite.True(total.Equal(decimal.NewFromInt(1_500)))
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetTotalBalance_UnsupportedCurrency() {
	ctx := context.Background()

	_, err := suite.service.GetTotalBalance(ctx, suite.userID, domain.Currency("XXX"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountsByUserAndCurrency")
}

func (suite *AccountServiceTestSuite) TestDeactivateAccount_MarksDeleted() {
	ctx := context.Background()
	account := &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Status:    domain.AccountActive,
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, account.AccountID).Return(account, nil).Once()
	suite.mockAccountRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		return acc.Status == domain.AccountDeleted && acc.LastUpdatedBy == suite.userID
	})).Return(nil).Once()

	err := suite.service.DeactivateAccount(ctx, account.AccountID, suite.userID)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
