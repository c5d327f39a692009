package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is the exchange_rates table row. One row per tracked foreign
// currency; the base currency is never stored.
type ExchangeRate struct {
	ExchangeRateID string          `db:"exchange_rate_id"`
	Currency       string          `db:"currency"`
	Rate           decimal.Decimal `db:"rate"`
	RateFromMMK    decimal.Decimal `db:"rate_from_mmk"`
	AuditFields
}
