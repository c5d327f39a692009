package mapping

import (
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
)

// ToModelExchangeTransaction converts a domain exchange transaction for DB storage.
func ToModelExchangeTransaction(d domain.ExchangeTransaction) models.ExchangeTransaction {
	return models.ExchangeTransaction{
		TransactionID: d.TransactionID,
		FromAccountID: d.FromAccountID,
		ToAccountID:   d.ToAccountID,
		AmountOut:     d.AmountOut,
		AmountIn:      d.AmountIn,
		ExchangeRate:  d.ExchangeRate,
		CustomerName:  d.CustomerName,
		Note:          d.Note,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExchangeTransaction converts an exchange_transactions row to the domain representation.
func ToDomainExchangeTransaction(m models.ExchangeTransaction) domain.ExchangeTransaction {
	return domain.ExchangeTransaction{
		TransactionID: m.TransactionID,
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
		AmountOut:     m.AmountOut,
		AmountIn:      m.AmountIn,
		ExchangeRate:  m.ExchangeRate,
		CustomerName:  m.CustomerName,
		Note:          m.Note,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCrossTransaction converts a domain cross transaction for DB storage.
func ToModelCrossTransaction(d domain.CrossTransaction) models.CrossTransaction {
	return models.CrossTransaction{
		TransactionID:   d.TransactionID,
		SupplierID:      d.SupplierID,
		ForeignCurrency: string(d.ForeignCurrency),
		ForeignAmount:   d.ForeignAmount,
		BridgeAccountID: d.BridgeAccountID,
		BridgeAmount:    d.BridgeAmount,
		SupplierRate:    d.SupplierRate,
		TargetAccountID: d.TargetAccountID,
		TargetAmount:    d.TargetAmount,
		CustomerRate:    d.CustomerRate,
		Direction:       string(d.Direction),
		Note:            d.Note,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCrossTransaction converts a cross_transactions row to the domain representation.
func ToDomainCrossTransaction(m models.CrossTransaction) domain.CrossTransaction {
	return domain.CrossTransaction{
		TransactionID:   m.TransactionID,
		SupplierID:      m.SupplierID,
		ForeignCurrency: domain.Currency(m.ForeignCurrency),
		ForeignAmount:   m.ForeignAmount,
		BridgeAccountID: m.BridgeAccountID,
		BridgeAmount:    m.BridgeAmount,
		SupplierRate:    m.SupplierRate,
		TargetAccountID: m.TargetAccountID,
		TargetAmount:    m.TargetAmount,
		CustomerRate:    m.CustomerRate,
		Direction:       domain.CrossDirection(m.Direction),
		Note:            m.Note,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}
