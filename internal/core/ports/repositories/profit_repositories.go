package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// ProfitReader defines the read operations backing profit calculation
type ProfitReader interface {
	// SumBrokeredProfit sums the MMK net profit of brokered deals attributed to
	// the account within [start, end].
	SumBrokeredProfit(ctx context.Context, accountID string, start, end time.Time) (decimal.Decimal, error)

	// ListExchangeLegs retrieves the currency legs of standard exchanges that
	// touched the account (either side) within [start, end].
	ListExchangeLegs(ctx context.Context, accountID string, start, end time.Time) ([]domain.ExchangeLeg, error)

	// ListCrossSpreads retrieves the rate spreads of cross exchanges whose
	// bridge or target account is the given account within [start, end].
	ListCrossSpreads(ctx context.Context, accountID string, start, end time.Time) ([]domain.CrossSpread, error)
}

// ProfitRepositoryFacade combines the profit repository interfaces
type ProfitRepositoryFacade interface {
	ProfitReader
}
