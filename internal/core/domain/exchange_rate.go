package domain

import "github.com/shopspring/decimal"

// ExchangeRate holds the conversion rates between one foreign currency and the
// base currency. Exactly one row exists per tracked foreign currency; the base
// currency itself is never stored.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	Currency       Currency        `json:"currency"`
	Rate           decimal.Decimal `json:"rate"`        // units of MMK per 1 unit of foreign currency
	RateFromMMK    decimal.Decimal `json:"rateFromMMK"` // inverse direction, MMK -> foreign
	AuditFields
}
