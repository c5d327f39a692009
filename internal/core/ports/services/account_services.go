package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account, enforcing that it belongs to the
	// requesting user.
	GetAccountByID(ctx context.Context, accountID string, requestingUserID string) (*domain.Account, error)

	// ListAccounts retrieves the requesting user's accounts, each enriched
	// with its most recent daily closing. An optional currency filter narrows
	// the result.
	ListAccounts(ctx context.Context, requestingUserID string, params dto.ListAccountsParams) ([]domain.Account, error)

	// GetTotalBalance sums the requesting user's non-deleted account balances
	// for one currency.
	GetTotalBalance(ctx context.Context, requestingUserID string, currency domain.Currency) (decimal.Decimal, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount creates a new cash account for the requesting user.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// UpdateAccount updates an account's name or status.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, requestingUserID string) (*domain.Account, error)

	// DeactivateAccount marks an account as deleted. Its history remains.
	DeactivateAccount(ctx context.Context, accountID string, requestingUserID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
