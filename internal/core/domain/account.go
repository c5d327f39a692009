package domain

import (
	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountFrozen   AccountStatus = "FREEZE"
	AccountDeleted  AccountStatus = "DELETED"
)

// Account is a cash drawer or bank account held in a single currency.
// Balance is mutated exclusively by the transaction repository inside an
// atomic apply step; it never goes negative.
type Account struct {
	AccountID string          `json:"accountID"`
	UserID    string          `json:"userID"`
	Name      string          `json:"name"`
	Currency  Currency        `json:"currency"`
	Balance   decimal.Decimal `json:"balance"`
	Status    AccountStatus   `json:"status"`
	AuditFields

	// LastClosing is the most recent daily closing for the account, populated
	// on listing reads for "last closed" display. Nil when never closed.
	LastClosing *DailyClosing `json:"lastClosing,omitempty"`
}
