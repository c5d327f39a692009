package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for the rate table
type ExchangeRateReaderSvc interface {
	// ListRates retrieves the full rate table. The base currency is always
	// present with rate 1, whether or not a row is stored for it.
	ListRates(ctx context.Context) ([]domain.ExchangeRate, error)

	// GetRateToMMK resolves the MMK conversion rate for a currency. The base
	// currency resolves to 1; a currency with no stored rate also resolves to
	// 1 so that downstream valuations degrade to face value rather than fail.
	GetRateToMMK(ctx context.Context, currency domain.Currency) (decimal.Decimal, error)

	// RatesToMMK returns the to-MMK rate for every tracked currency, with the
	// base currency pinned to 1.
	RatesToMMK(ctx context.Context) (map[domain.Currency]decimal.Decimal, error)

	// RatesFromMMK returns the from-MMK rate for every tracked currency, with
	// the base currency pinned to 1.
	RatesFromMMK(ctx context.Context) (map[domain.Currency]decimal.Decimal, error)

	// ConvertToMMK values an amount of the given currency in MMK.
	ConvertToMMK(ctx context.Context, amount decimal.Decimal, currency domain.Currency) (decimal.Decimal, error)
}

// ExchangeRateWriterSvc defines write operations for the rate table
type ExchangeRateWriterSvc interface {
	// UpdateRate sets the rate pair for one currency.
	UpdateRate(ctx context.Context, req dto.UpdateRateRequest, updaterUserID string) (*domain.ExchangeRate, error)

	// UpdateRates replaces the rate pairs for several currencies atomically.
	UpdateRates(ctx context.Context, req dto.BulkUpdateRatesRequest, updaterUserID string) ([]domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all rate-table service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
