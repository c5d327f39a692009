package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyClosing is the end-of-day reconciliation record for one account. At
// most one exists per account per calendar day. It is purely observational:
// creating one never corrects the ledger balance.
type DailyClosing struct {
	ClosingID         string          `json:"closingID"`
	AccountID         string          `json:"accountID"`
	ClosingDate       time.Time       `json:"closingDate"`
	SystemBalance     decimal.Decimal `json:"systemBalance"`     // ledger balance at closing time
	ActualCashBalance decimal.Decimal `json:"actualCashBalance"` // physically counted balance
	Difference        decimal.Decimal `json:"difference"`        // actual - system
	ProfitPerDayMMK   decimal.Decimal `json:"profitPerDayMMK"`
	Note              string          `json:"note"`
	AuditFields
}

// ClosingWithAccount is a closing enriched with account display fields for
// history listings.
type ClosingWithAccount struct {
	DailyClosing
	AccountName     string   `json:"accountName"`
	AccountCurrency Currency `json:"accountCurrency"`
}
