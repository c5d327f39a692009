package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction records
type TransactionReader interface {
	// FindExchangeByID retrieves a standard exchange by ID together with the
	// user owning its source account, used for ownership checks.
	FindExchangeByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, string, error)

	// FindCrossByID retrieves a cross exchange by ID together with the user
	// owning its bridge account.
	FindCrossByID(ctx context.Context, transactionID string) (*domain.CrossTransaction, string, error)

	// ListExchangesByUser retrieves the most recent standard exchanges touching
	// any of the user's accounts, newest first.
	ListExchangesByUser(ctx context.Context, userID string, limit int) ([]domain.ExchangeTransaction, error)

	// ListCrossByUser retrieves the most recent cross exchanges touching any of
	// the user's accounts, newest first.
	ListCrossByUser(ctx context.Context, userID string, limit int) ([]domain.CrossTransaction, error)
}

// TransactionWriter defines write operations for transaction records
type TransactionWriter interface {
	// SaveExchange persists a standard exchange and applies its balance changes
	// within a single database transaction. Account rows are locked, balances
	// re-checked against the deltas, then updated together with the record
	// insert; any failure rolls back everything.
	SaveExchange(ctx context.Context, txn domain.ExchangeTransaction, balanceChanges map[string]decimal.Decimal) error

	// SaveCrossExchange persists a cross exchange the same way.
	SaveCrossExchange(ctx context.Context, txn domain.CrossTransaction, balanceChanges map[string]decimal.Decimal) error
}

// TransactionRepositoryFacade combines all transaction-record repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
