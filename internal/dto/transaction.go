package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// CreateExchangeRequest defines the data needed to execute a standard exchange
// between two of the caller's accounts. Both amounts are supplied by the
// caller; the quoted rate is recorded but never used to derive either amount.
type CreateExchangeRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required"`
	ToAccountID   string          `json:"toAccountID" binding:"required"`
	AmountOut     decimal.Decimal `json:"amountOut" binding:"required"`
	AmountIn      decimal.Decimal `json:"amountIn" binding:"required"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate" binding:"required"`
	CustomerName  string          `json:"customerName"`
	Note          string          `json:"note"`
}

// CreateCrossExchangeRequest defines the data needed to execute a trade
// brokered through an external supplier.
type CreateCrossExchangeRequest struct {
	SupplierID      string          `json:"supplierID" binding:"required"`
	ForeignCurrency domain.Currency `json:"foreignCurrency" binding:"required,currency"`
	ForeignAmount   decimal.Decimal `json:"foreignAmount" binding:"required"`
	BridgeAccountID string          `json:"bridgeAccountID" binding:"required"`
	BridgeAmount    decimal.Decimal `json:"bridgeAmount" binding:"required"`
	SupplierRate    decimal.Decimal `json:"supplierRate" binding:"required"`
	TargetAccountID string          `json:"targetAccountID" binding:"required"`
	TargetAmount    decimal.Decimal `json:"targetAmount" binding:"required"`
	CustomerRate    decimal.Decimal `json:"customerRate" binding:"required"`
	Direction       string          `json:"direction" binding:"required,oneof=FOREIGN_TO_HELD HELD_TO_FOREIGN"`
	Note            string          `json:"note"`
}

// ExchangeTransactionResponse defines the data returned for a standard exchange.
type ExchangeTransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	FromAccountID string          `json:"fromAccountID"`
	ToAccountID   string          `json:"toAccountID"`
	AmountOut     decimal.Decimal `json:"amountOut"`
	AmountIn      decimal.Decimal `json:"amountIn"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	CustomerName  string          `json:"customerName"`
	Note          string          `json:"note"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// CrossTransactionResponse defines the data returned for a cross exchange.
type CrossTransactionResponse struct {
	TransactionID   string          `json:"transactionID"`
	SupplierID      string          `json:"supplierID"`
	ForeignCurrency domain.Currency `json:"foreignCurrency"`
	ForeignAmount   decimal.Decimal `json:"foreignAmount"`
	BridgeAccountID string          `json:"bridgeAccountID"`
	BridgeAmount    decimal.Decimal `json:"bridgeAmount"`
	SupplierRate    decimal.Decimal `json:"supplierRate"`
	TargetAccountID string          `json:"targetAccountID"`
	TargetAmount    decimal.Decimal `json:"targetAmount"`
	CustomerRate    decimal.Decimal `json:"customerRate"`
	Direction       string          `json:"direction"`
	Note            string          `json:"note"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// HistoryItemResponse is one entry of the merged transaction history. Exactly
// one of Exchange/Cross is set, matching Kind.
type HistoryItemResponse struct {
	Kind     string                       `json:"kind"`
	Exchange *ExchangeTransactionResponse `json:"exchange,omitempty"`
	Cross    *CrossTransactionResponse    `json:"cross,omitempty"`
}

// ListHistoryParams defines query parameters for the merged history listing.
type ListHistoryParams struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}

// ListHistoryResponse wraps one page of merged history.
type ListHistoryResponse struct {
	Items []HistoryItemResponse `json:"items"`
	Total int                   `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}

// ToExchangeTransactionResponse converts a domain.ExchangeTransaction to its DTO.
func ToExchangeTransactionResponse(txn *domain.ExchangeTransaction) ExchangeTransactionResponse {
	return ExchangeTransactionResponse{
		TransactionID: txn.TransactionID,
		FromAccountID: txn.FromAccountID,
		ToAccountID:   txn.ToAccountID,
		AmountOut:     txn.AmountOut,
		AmountIn:      txn.AmountIn,
		ExchangeRate:  txn.ExchangeRate,
		CustomerName:  txn.CustomerName,
		Note:          txn.Note,
		CreatedAt:     txn.CreatedAt,
		CreatedBy:     txn.CreatedBy,
	}
}

// ToCrossTransactionResponse converts a domain.CrossTransaction to its DTO.
func ToCrossTransactionResponse(txn *domain.CrossTransaction) CrossTransactionResponse {
	return CrossTransactionResponse{
		TransactionID:   txn.TransactionID,
		SupplierID:      txn.SupplierID,
		ForeignCurrency: txn.ForeignCurrency,
		ForeignAmount:   txn.ForeignAmount,
		BridgeAccountID: txn.BridgeAccountID,
		BridgeAmount:    txn.BridgeAmount,
		SupplierRate:    txn.SupplierRate,
		TargetAccountID: txn.TargetAccountID,
		TargetAmount:    txn.TargetAmount,
		CustomerRate:    txn.CustomerRate,
		Direction:       string(txn.Direction),
		Note:            txn.Note,
		CreatedAt:       txn.CreatedAt,
		CreatedBy:       txn.CreatedBy,
	}
}

// ToHistoryItemResponse converts a merged ledger record to its DTO.
func ToHistoryItemResponse(rec domain.LedgerRecord) HistoryItemResponse {
	item := HistoryItemResponse{Kind: string(rec.Kind)}
	switch rec.Kind {
	case domain.KindStandard:
		resp := ToExchangeTransactionResponse(rec.Exchange)
		item.Exchange = &resp
	case domain.KindCross:
		resp := ToCrossTransactionResponse(rec.Cross)
		item.Cross = &resp
	}
	return item
}
