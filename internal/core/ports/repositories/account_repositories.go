package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByUser retrieves all non-deleted accounts owned by a user.
	FindAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)

	// FindAccountsByUserAndCurrency retrieves a user's non-deleted accounts denominated in the given currency.
	FindAccountsByUserAndCurrency(ctx context.Context, userID string, currency domain.Currency) ([]domain.Account, error)

	// FindAccountsByIDsForUpdate retrieves accounts by ID within an existing transaction,
	// acquiring row locks (SELECT ... FOR UPDATE) to serialize balance mutations.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount persists changes to an existing account's mutable fields (name, status).
	UpdateAccount(ctx context.Context, account domain.Account) error

	// UpdateAccountBalancesInTx applies balance deltas to the given accounts within an
	// existing transaction. Callers must hold row locks on the affected accounts.
	UpdateAccountBalancesInTx(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, updatedByUserID string, updatedAt time.Time) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
