package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// UpdateRateRequest defines the structure for setting the rate of one currency.
type UpdateRateRequest struct {
	Currency    domain.Currency `json:"currency" binding:"required,currency"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
	RateFromMMK decimal.Decimal `json:"rateFromMMK" binding:"required"`
}

// BulkUpdateRatesRequest defines the structure for replacing several rates at once.
type BulkUpdateRatesRequest struct {
	Rates []UpdateRateRequest `json:"rates" binding:"required,min=1,dive"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	Currency       domain.Currency `json:"currency"`
	Rate           decimal.Decimal `json:"rate"`
	RateFromMMK    decimal.Decimal `json:"rateFromMMK"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ListRatesResponse wraps the full rate table.
type ListRatesResponse struct {
	Rates []ExchangeRateResponse `json:"rates"`
}

// RateMapsResponse carries both rate directions keyed by currency, the shape
// the counter UI consumes when quoting.
type RateMapsResponse struct {
	ToMMK   map[domain.Currency]decimal.Decimal `json:"toMMK"`
	FromMMK map[domain.Currency]decimal.Decimal `json:"fromMMK"`
}

// ConvertParams defines query parameters for an MMK valuation.
type ConvertParams struct {
	Amount   decimal.Decimal `form:"amount" binding:"required"`
	Currency string          `form:"currency" binding:"required,currency"`
}

// ConvertResponse is the MMK valuation of a foreign amount.
type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	Currency  domain.Currency `json:"currency"`
	AmountMMK decimal.Decimal `json:"amountMMK"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: rate.ExchangeRateID,
		Currency:       rate.Currency,
		Rate:           rate.Rate,
		RateFromMMK:    rate.RateFromMMK,
		LastUpdatedAt:  rate.LastUpdatedAt,
		LastUpdatedBy:  rate.LastUpdatedBy,
	}
}

// ToListRatesResponse converts a slice of domain.ExchangeRate to ListRatesResponse DTO
func ToListRatesResponse(rates []domain.ExchangeRate) ListRatesResponse {
	res := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		res[i] = ToExchangeRateResponse(&rates[i])
	}
	return ListRatesResponse{Rates: res}
}
