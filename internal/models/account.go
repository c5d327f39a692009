package models

import (
	"github.com/shopspring/decimal"
)

// AccountStatus mirrors the account status enum stored in the database.
type AccountStatus string

const (
	AccountActive   AccountStatus = "ACTIVE"
	AccountInactive AccountStatus = "INACTIVE"
	AccountFrozen   AccountStatus = "FREEZE"
	AccountDeleted  AccountStatus = "DELETED"
)

// Account is the accounts table row.
type Account struct {
	AccountID string          `db:"account_id"`
	UserID    string          `db:"user_id"`
	Name      string          `db:"name"`
	Currency  string          `db:"currency"`
	Balance   decimal.Decimal `db:"balance"`
	Status    AccountStatus   `db:"status"`
	AuditFields
}
