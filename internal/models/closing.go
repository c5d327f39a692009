package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyClosing is the daily_closings table row.
type DailyClosing struct {
	ClosingID         string          `db:"closing_id"`
	AccountID         string          `db:"account_id"`
	ClosingDate       time.Time       `db:"closing_date"`
	SystemBalance     decimal.Decimal `db:"system_balance"`
	ActualCashBalance decimal.Decimal `db:"actual_cash_balance"`
	Difference        decimal.Decimal `db:"difference"`
	ProfitPerDayMMK   decimal.Decimal `db:"profit_per_day_mmk"`
	Note              string          `db:"note"`
	AuditFields
}
