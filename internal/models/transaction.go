package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeTransaction is the exchange_transactions table row.
type ExchangeTransaction struct {
	TransactionID string          `db:"transaction_id"`
	FromAccountID string          `db:"from_account_id"`
	ToAccountID   string          `db:"to_account_id"`
	AmountOut     decimal.Decimal `db:"amount_out"`
	AmountIn      decimal.Decimal `db:"amount_in"`
	ExchangeRate  decimal.Decimal `db:"exchange_rate"`
	CustomerName  string          `db:"customer_name"`
	Note          string          `db:"note"`
	AuditFields
}

// CrossTransaction is the cross_transactions table row.
type CrossTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	SupplierID      string          `db:"supplier_id"`
	ForeignCurrency string          `db:"foreign_currency"`
	ForeignAmount   decimal.Decimal `db:"foreign_amount"`
	BridgeAccountID string          `db:"bridge_account_id"`
	BridgeAmount    decimal.Decimal `db:"bridge_amount"`
	SupplierRate    decimal.Decimal `db:"supplier_rate"`
	TargetAccountID string          `db:"target_account_id"`
	TargetAmount    decimal.Decimal `db:"target_amount"`
	CustomerRate    decimal.Decimal `db:"customer_rate"`
	Direction       string          `db:"direction"`
	Note            string          `db:"note"`
	AuditFields
}

// BrokeredTransaction is the brokered_transactions table row.
type BrokeredTransaction struct {
	TransactionID   string          `db:"transaction_id"`
	ProfitAccountID string          `db:"profit_account_id"`
	NetProfit       decimal.Decimal `db:"net_profit"`
	Note            string          `db:"note"`
	AuditFields
}
