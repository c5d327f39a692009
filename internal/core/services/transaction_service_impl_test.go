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

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockAccountRepo  *MockAccountRepository
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.TransactionSvcFacade

	userID string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewTransactionServiceImpl(suite.mockTxnRepo, suite.mockAccountRepo, suite.mockSupplierRepo)
	suite.userID = uuid.NewString()
}

func (suite *TransactionServiceTestSuite) activeAccount(currency domain.Currency, balance int64) *domain.Account {
	return &domain.Account{
		AccountID: uuid.NewString(),
		UserID:    suite.userID,
		Name:      string(currency) + " cash",
		Currency:  currency,
		Balance:   decimal.NewFromInt(balance),
		Status:    domain.AccountActive,
	}
}

// --- CreateExchange ---

func (suite *TransactionServiceTestSuite) TestCreateExchange_Success() {
	ctx := context.Background()
	mmk := suite.activeAccount(domain.MMK, 1_000_000)
	thb := suite.activeAccount(domain.THB, 5_000)

	req := dto.CreateExchangeRequest{
		FromAccountID: mmk.AccountID,
		ToAccountID:   thb.AccountID,
		AmountOut:     decimal.NewFromInt(900_000),
		AmountIn:      decimal.NewFromInt(6_000),
		ExchangeRate:  decimal.NewFromInt(150),
		CustomerName:  "Daw Khin",
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, mmk.AccountID).Return(mmk, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, thb.AccountID).Return(thb, nil).Once()
	suite.mockTxnRepo.On("SaveExchange", ctx, mock.AnythingOfType("domain.ExchangeTransaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[mmk.AccountID].Equal(decimal.NewFromInt(-900_000)) &&
			changes[thb.AccountID].Equal(decimal.NewFromInt(6_000))
	})).Return(nil).Once()

	txn, err := suite.service.CreateExchange(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(suite.userID, txn.CreatedBy)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateExchange_InsufficientFunds() {
	ctx := context.Background()
	mmk := suite.activeAccount(domain.MMK, 1_000_000)
	thb := suite.activeAccount(domain.THB, 5_000)

	req := dto.CreateExchangeRequest{
		FromAccountID: mmk.AccountID,
		ToAccountID:   thb.AccountID,
		AmountOut:     decimal.NewFromInt(3_300_000),
		AmountIn:      decimal.NewFromInt(22_000),
		ExchangeRate:  decimal.NewFromInt(150),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, mmk.AccountID).Return(mmk, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, thb.AccountID).Return(thb, nil).Once()

	_, err := suite.service.CreateExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Contains(err.Error(), mmk.Name, "the error must name the short account")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveExchange")
}

func (suite *TransactionServiceTestSuite) TestCreateExchange_SameAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()

	req := dto.CreateExchangeRequest{
		FromAccountID: accountID,
		ToAccountID:   accountID,
		AmountOut:     decimal.NewFromInt(100),
		AmountIn:      decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(1),
	}

	_, err := suite.service.CreateExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *TransactionServiceTestSuite) TestCreateExchange_NonPositiveAmount() {
	ctx := context.Background()

	req := dto.CreateExchangeRequest{
		FromAccountID: uuid.NewString(),
		ToAccountID:   uuid.NewString(),
		AmountOut:     decimal.Zero,
		AmountIn:      decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(1),
	}

	_, err := suite.service.CreateExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateExchange_OtherUsersAccountForbidden() {
	ctx := context.Background()
	other := suite.activeAccount(domain.MMK, 1_000_000)
	other.UserID = uuid.NewString()
	thb := suite.activeAccount(domain.THB, 5_000)

	req := dto.CreateExchangeRequest{
		FromAccountID: other.AccountID,
		ToAccountID:   thb.AccountID,
		AmountOut:     decimal.NewFromInt(100),
		AmountIn:      decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(1),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, other.AccountID).Return(other, nil).Once()

	_, err := suite.service.CreateExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden, "another user's account must be rejected, not mutated")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveExchange")
}

func (suite *TransactionServiceTestSuite) TestCreateExchange_InactiveAccount() {
	ctx := context.Background()
	frozen := suite.activeAccount(domain.MMK, 1_000_000)
	frozen.Status = domain.AccountFrozen

	req := dto.CreateExchangeRequest{
		FromAccountID: frozen.AccountID,
		ToAccountID:   uuid.NewString(),
		AmountOut:     decimal.NewFromInt(100),
		AmountIn:      decimal.NewFromInt(100),
		ExchangeRate:  decimal.NewFromInt(1),
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, frozen.AccountID).Return(frozen, nil).Once()

	_, err := suite.service.CreateExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- CreateCrossExchange ---

func (suite *TransactionServiceTestSuite) crossRequest(bridge, target *domain.Account, direction domain.CrossDirection) dto.CreateCrossExchangeRequest {
	return dto.CreateCrossExchangeRequest{
		SupplierID:      uuid.NewString(),
		ForeignCurrency: domain.SGD,
		ForeignAmount:   decimal.NewFromInt(100),
		BridgeAccountID: bridge.AccountID,
		BridgeAmount:    decimal.NewFromInt(600),
		SupplierRate:    decimal.NewFromInt(3400),
		TargetAccountID: target.AccountID,
		TargetAmount:    decimal.NewFromInt(600),
		CustomerRate:    decimal.NewFromInt(3500),
		Direction:       string(direction),
	}
}

func (suite *TransactionServiceTestSuite) TestCreateCrossExchange_HeldToForeign_Success() {
	ctx := context.Background()
	bridge := suite.activeAccount(domain.MMK, 500)
	target := suite.activeAccount(domain.THB, 10_000)

	req := suite.crossRequest(bridge, target, domain.HeldToForeign)
	req.BridgeAmount = decimal.NewFromInt(400)
	req.TargetAmount = decimal.NewFromInt(400)

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(&domain.Supplier{SupplierID: req.SupplierID}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, bridge.AccountID).Return(bridge, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, target.AccountID).Return(target, nil).Once()
	suite.mockTxnRepo.On("SaveCrossExchange", ctx, mock.AnythingOfType("domain.CrossTransaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[bridge.AccountID].Equal(decimal.NewFromInt(-400)) &&
			changes[target.AccountID].Equal(decimal.NewFromInt(400))
	})).Return(nil).Once()

	txn, err := suite.service.CreateCrossExchange(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.HeldToForeign, txn.Direction)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateCrossExchange_HeldToForeign_InsufficientBridge() {
	ctx := context.Background()
	bridge := suite.activeAccount(domain.MMK, 500)
	target := suite.activeAccount(domain.THB, 10_000)

	req := suite.crossRequest(bridge, target, domain.HeldToForeign)

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(&domain.Supplier{SupplierID: req.SupplierID}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, bridge.AccountID).Return(bridge, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, target.AccountID).Return(target, nil).Once()

	_, err := suite.service.CreateCrossExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.Contains(err.Error(), bridge.Name, "the error must name the short account")
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveCrossExchange")
}

func (suite *TransactionServiceTestSuite) TestCreateCrossExchange_ForeignToHeld_DebitsTarget() {
	ctx := context.Background()
	bridge := suite.activeAccount(domain.MMK, 1_000_000)
	target := suite.activeAccount(domain.THB, 10_000)

	req := suite.crossRequest(bridge, target, domain.ForeignToHeld)

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(&domain.Supplier{SupplierID: req.SupplierID}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, bridge.AccountID).Return(bridge, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, target.AccountID).Return(target, nil).Once()
	suite.mockTxnRepo.On("SaveCrossExchange", ctx, mock.AnythingOfType("domain.CrossTransaction"), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[target.AccountID].Equal(decimal.NewFromInt(-600)) &&
			changes[bridge.AccountID].Equal(decimal.NewFromInt(600))
	})).Return(nil).Once()

	_, err := suite.service.CreateCrossExchange(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateCrossExchange_NonBaseBridgeRejected() {
	ctx := context.Background()
	bridge := suite.activeAccount(domain.USD, 1_000_000)
	target := suite.activeAccount(domain.THB, 10_000)

	req := suite.crossRequest(bridge, target, domain.HeldToForeign)

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(&domain.Supplier{SupplierID: req.SupplierID}, nil).Once()
	suite.mockAccountRepo.On("FindAccountByID", ctx, bridge.AccountID).Return(bridge, nil).Once()

	_, err := suite.service.CreateCrossExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *TransactionServiceTestSuite) TestCreateCrossExchange_UnknownSupplier() {
	ctx := context.Background()
	bridge := suite.activeAccount(domain.MMK, 1_000_000)
	target := suite.activeAccount(domain.THB, 10_000)

	req := suite.crossRequest(bridge, target, domain.HeldToForeign)

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, req.SupplierID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateCrossExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "FindAccountByID")
}

func (suite *TransactionServiceTestSuite) TestCreateCrossExchange_InvalidDirection() {
	ctx := context.Background()
	bridge := suite.activeAccount(domain.MMK, 1_000_000)
	target := suite.activeAccount(domain.THB, 10_000)

	req := suite.crossRequest(bridge, target, domain.CrossDirection("SIDEWAYS"))

	_, err := suite.service.CreateCrossExchange(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- GetTransaction ---

func (suite *TransactionServiceTestSuite) TestGetTransaction_OwnershipHidden() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.ExchangeTransaction{TransactionID: txnID}

	suite.mockTxnRepo.On("FindExchangeByID", ctx, txnID).Return(txn, uuid.NewString(), nil).Once()

	_, err := suite.service.GetTransaction(ctx, domain.KindStandard, txnID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestGetTransaction_Standard() {
	ctx := context.Background()
	txnID := uuid.NewString()
	txn := &domain.ExchangeTransaction{TransactionID: txnID}

	suite.mockTxnRepo.On("FindExchangeByID", ctx, txnID).Return(txn, suite.userID, nil).Once()

	rec, err := suite.service.GetTransaction(ctx, domain.KindStandard, txnID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.KindStandard, rec.Kind)
	suite.Equal(txnID, rec.Exchange.TransactionID)
}

// --- ListHistory ---

func (suite *TransactionServiceTestSuite) TestListHistory_MergesNewestFirst() {
	ctx := context.Background()
	baseTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	exchanges := []domain.ExchangeTransaction{
		{TransactionID: "ex-1", AuditFields: domain.AuditFields{CreatedAt: baseTime.Add(1 * time.Hour)}},
		{TransactionID: "ex-2", AuditFields: domain.AuditFields{CreatedAt: baseTime.Add(3 * time.Hour)}},
	}
	crosses := []domain.CrossTransaction{
		{TransactionID: "cr-1", AuditFields: domain.AuditFields{CreatedAt: baseTime.Add(2 * time.Hour)}},
	}

	suite.mockTxnRepo.On("ListExchangesByUser", ctx, suite.userID, 20).Return(exchanges, nil).Once()
	suite.mockTxnRepo.On("ListCrossByUser", ctx, suite.userID, 20).Return(crosses, nil).Once()

	res, err := suite.service.ListHistory(ctx, suite.userID, dto.ListHistoryParams{Page: 1, Limit: 20})

	suite.Require().NoError(err)
	suite.Equal(3, res.Total)
	suite.Require().Len(res.Items, 3)
	suite.Equal("ex-2", res.Items[0].Exchange.TransactionID)
	suite.Equal("cr-1", res.Items[1].Cross.TransactionID)
	suite.Equal("ex-1", res.Items[2].Exchange.TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListHistory_RepeatedReadsReturnSamePage() {
	ctx := context.Background()
	baseTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	exchanges := []domain.ExchangeTransaction{
		{TransactionID: "ex-1", AuditFields: domain.AuditFields{CreatedAt: baseTime.Add(1 * time.Hour)}},
		{TransactionID: "ex-2", AuditFields: domain.AuditFields{CreatedAt: baseTime}},
	}
	crosses := []domain.CrossTransaction{
		{TransactionID: "cr-1", AuditFields: domain.AuditFields{CreatedAt: baseTime}},
	}

	suite.mockTxnRepo.On("ListExchangesByUser", ctx, suite.userID, 20).Return(exchanges, nil).Twice()
	suite.mockTxnRepo.On("ListCrossByUser", ctx, suite.userID, 20).Return(crosses, nil).Twice()

	params := dto.ListHistoryParams{Page: 1, Limit: 20}
	first, err := suite.service.ListHistory(ctx, suite.userID, params)
	suite.Require().NoError(err)
	second, err := suite.service.ListHistory(ctx, suite.userID, params)
	suite.Require().NoError(err)

	// Unchanged underlying data must produce an identical page, timestamp
	// ties included.
	suite.Equal(first.Total, second.Total)
	suite.Require().Len(second.Items, len(first.Items))
	for i := range first.Items {
		suite.Equal(first.Items[i].Kind, second.Items[i].Kind)
		if first.Items[i].Exchange != nil {
			suite.Equal(first.Items[i].Exchange.TransactionID, second.Items[i].Exchange.TransactionID)
		}
		if first.Items[i].Cross != nil {
			suite.Equal(first.Items[i].Cross.TransactionID, second.Items[i].Cross.TransactionID)
		}
	}
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListHistory_TieBreaksOnRecordID() {
	ctx := context.Background()
	sameTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	exchanges := []domain.ExchangeTransaction{
		{TransactionID: "aaa", AuditFields: domain.AuditFields{CreatedAt: sameTime}},
	}
	crosses := []domain.CrossTransaction{
		{TransactionID: "zzz", AuditFields: domain.AuditFields{CreatedAt: sameTime}},
	}

	suite.mockTxnRepo.On("ListExchangesByUser", ctx, suite.userID, 20).Return(exchanges, nil).Once()
	suite.mockTxnRepo.On("ListCrossByUser", ctx, suite.userID, 20).Return(crosses, nil).Once()

	res, err := suite.service.ListHistory(ctx, suite.userID, dto.ListHistoryParams{Page: 1, Limit: 20})

	suite.Require().NoError(err)
	suite.Require().Len(res.Items, 2)
	suite.Equal("zzz", res.Items[0].Cross.TransactionID)
	suite.Equal("aaa", res.Items[1].Exchange.TransactionID)
}

func (suite *TransactionServiceTestSuite) TestListHistory_SecondPage() {
	ctx := context.Background()
	baseTime := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	exchanges := make([]domain.ExchangeTransaction, 3)
	for i := range exchanges {
		exchanges[i] = domain.ExchangeTransaction{
			TransactionID: uuid.NewString(),
			AuditFields:   domain.AuditFields{CreatedAt: baseTime.Add(time.Duration(i) * time.Minute)},
		}
	}

	suite.mockTxnRepo.On("ListExchangesByUser", ctx, suite.userID, 4).Return(exchanges, nil).Once()
	suite.mockTxnRepo.On("ListCrossByUser", ctx, suite.userID, 4).Return([]domain.CrossTransaction{}, nil).Once()

	res, err := suite.service.ListHistory(ctx, suite.userID, dto.ListHistoryParams{Page: 2, Limit: 2})

	suite.Require().NoError(err)
	suite.Equal(3, res.Total)
	suite.Equal(2, res.Page)
	suite.Require().Len(res.Items, 1)
	suite.Equal(exchanges[0].TransactionID, res.Items[0].Exchange.TransactionID)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
