package services

import (
	"context"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction records
type TransactionReaderSvc interface {
	// GetTransaction retrieves a single transaction of the given kind,
	// enforcing that it belongs to the requesting user. A record owned by
	// another user is indistinguishable from a missing one.
	GetTransaction(ctx context.Context, kind domain.TransactionKind, transactionID string, requestingUserID string) (*domain.LedgerRecord, error)

	// ListHistory retrieves one page of the requesting user's merged
	// transaction history, newest first across both kinds.
	ListHistory(ctx context.Context, requestingUserID string, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error)
}

// TransactionWriterSvc defines write operations for transaction records
type TransactionWriterSvc interface {
	// CreateExchange executes a standard exchange between two of the caller's
	// accounts: debit the source, credit the destination, both balances moved
	// atomically with the record insert.
	CreateExchange(ctx context.Context, req dto.CreateExchangeRequest, creatorUserID string) (*domain.ExchangeTransaction, error)

	// CreateCrossExchange executes a supplier-brokered trade against the
	// caller's bridge and target accounts.
	CreateCrossExchange(ctx context.Context, req dto.CreateCrossExchangeRequest, creatorUserID string) (*domain.CrossTransaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
