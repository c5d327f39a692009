package repositories

import (
	"context"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRateByCurrency retrieves the stored rate row for a single currency.
	FindRateByCurrency(ctx context.Context, currency domain.Currency) (*domain.ExchangeRate, error)

	// ListRates retrieves all stored rate rows.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// UpsertRate inserts or replaces the rate row for one currency.
	UpsertRate(ctx context.Context, rate domain.ExchangeRate) error

	// UpsertRates inserts or replaces rate rows for several currencies atomically.
	UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange-rate repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
