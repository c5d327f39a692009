package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// Shared repository mocks used across the service test suites.

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByUserAndCurrency(ctx context.Context, userID string, currency domain.Currency) ([]domain.Account, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedByUserID string, updatedAt time.Time) error {
	args := m.Called(ctx, tx, balanceChanges, updatedByUserID, updatedAt)
	return args.Error(0)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindExchangeByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, string, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.ExchangeTransaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) FindCrossByID(ctx context.Context, transactionID string) (*domain.CrossTransaction, string, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.CrossTransaction), args.String(1), args.Error(2)
}

func (m *MockTransactionRepository) ListExchangesByUser(ctx context.Context, userID string, limit int) ([]domain.ExchangeTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeTransaction), args.Error(1)
}

func (m *MockTransactionRepository) ListCrossByUser(ctx context.Context, userID string, limit int) ([]domain.CrossTransaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CrossTransaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveExchange(ctx context.Context, txn domain.ExchangeTransaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

func (m *MockTransactionRepository) SaveCrossExchange(ctx context.Context, txn domain.CrossTransaction, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, txn, balanceChanges)
	return args.Error(0)
}

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

// --- Mock ProfitRepository ---
type MockProfitRepository struct {
	mock.Mock
}

func (m *MockProfitRepository) SumBrokeredProfit(ctx context.Context, accountID string, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockProfitRepository) ListExchangeLegs(ctx context.Context, accountID string, start, end time.Time) ([]domain.ExchangeLeg, error) {
	args := m.Called(ctx, accountID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeLeg), args.Error(1)
}

func (m *MockProfitRepository) ListCrossSpreads(ctx context.Context, accountID string, start, end time.Time) ([]domain.CrossSpread, error) {
	args := m.Called(ctx, accountID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CrossSpread), args.Error(1)
}

// --- Mock ClosingRepository ---
type MockClosingRepository struct {
	mock.Mock
}

func (m *MockClosingRepository) FindClosingForDay(ctx context.Context, accountID string, day time.Time) (*domain.DailyClosing, error) {
	args := m.Called(ctx, accountID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClosing), args.Error(1)
}

func (m *MockClosingRepository) ListClosingsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.ClosingWithAccount, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ClosingWithAccount), args.Get(1).(int64), args.Error(2)
}

func (m *MockClosingRepository) SaveClosing(ctx context.Context, closing domain.DailyClosing) error {
	args := m.Called(ctx, closing)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByPhone(ctx context.Context, phone string) (*domain.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
