package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the transaction variants carried by the ledger.
type TransactionKind string

const (
	KindStandard TransactionKind = "STANDARD"
	KindCross    TransactionKind = "CROSS"
	KindBrokered TransactionKind = "BROKERED"
)

// CrossDirection is the direction of an agent-mediated trade.
type CrossDirection string

const (
	// ForeignToHeld: the customer delivers foreign currency; the shop pays out
	// of the target account and settles into the bridge account.
	ForeignToHeld CrossDirection = "FOREIGN_TO_HELD"
	// HeldToForeign: the customer wants foreign currency; the shop pays out of
	// the bridge account and receives into the target account.
	HeldToForeign CrossDirection = "HELD_TO_FOREIGN"
)

// ExchangeTransaction is an immutable record of a direct transfer between two
// accounts of the same user. AmountOut and AmountIn are independently supplied
// by the caller; the engine never re-derives either from the rate.
type ExchangeTransaction struct {
	TransactionID string          `json:"transactionID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	AmountOut     decimal.Decimal `json:"amountOut"` // debited from the source account
	AmountIn      decimal.Decimal `json:"amountIn"`  // credited to the destination account
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	CustomerName  string          `json:"customerName"`
	Note          string          `json:"note"`
	AuditFields
}

// CrossTransaction is an immutable record of a trade brokered through an
// external supplier. The bridge account is always base-currency; the
// supplier/customer rate spread is reported profit only and is never booked
// into any account balance.
type CrossTransaction struct {
	TransactionID   string          `json:"transactionID"`
	SupplierID      string          `json:"supplierID"`
	ForeignCurrency Currency        `json:"foreignCurrency"`
	ForeignAmount   decimal.Decimal `json:"foreignAmount"`
	BridgeAccountID string          `json:"bridgeAccountID"`
	BridgeAmount    decimal.Decimal `json:"bridgeAmount"`
	SupplierRate    decimal.Decimal `json:"supplierRate"`
	TargetAccountID string          `json:"targetAccountID"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	CustomerRate    decimal.Decimal `json:"customerRate"`
	Direction       CrossDirection  `json:"direction"`
	Note            string          `json:"note"`
	AuditFields
}

// BrokeredTransaction is a profit-only record: an external deal whose net
// profit (already MMK-denominated) is attributed to an account. Rows are read
// by the profit calculator; this module never creates or mutates them.
type BrokeredTransaction struct {
	TransactionID   string          `json:"transactionID"`
	ProfitAccountID string          `json:"profitAccountID"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	Note            string          `json:"note"`
	AuditFields
}

// LedgerRecord is the tagged union used when merging transaction kinds into a
// single history stream. Exactly one of Exchange/Cross is non-nil, matching
// Kind.
type LedgerRecord struct {
	Kind     TransactionKind
	Exchange *ExchangeTransaction
	Cross    *CrossTransaction
}

// RecordID returns the id of the underlying record.
func (r LedgerRecord) RecordID() string {
	switch r.Kind {
	case KindStandard:
		return r.Exchange.TransactionID
	case KindCross:
		return r.Cross.TransactionID
	}
	return ""
}

// OccurredAt returns the creation time of the underlying record.
func (r LedgerRecord) OccurredAt() time.Time {
	switch r.Kind {
	case KindStandard:
		return r.Exchange.CreatedAt
	case KindCross:
		return r.Cross.CreatedAt
	}
	return time.Time{}
}
