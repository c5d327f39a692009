package domain

import "github.com/shopspring/decimal"

// ExchangeLeg is the slice of a standard transaction the profit calculator
// needs: both amounts plus the currencies of the two accounts involved.
type ExchangeLeg struct {
	AmountOut    decimal.Decimal
	AmountIn     decimal.Decimal
	FromCurrency Currency
	ToCurrency   Currency
}

// CrossSpread is the slice of a cross transaction the profit calculator
// needs: the brokered amount and the two rates whose spread is the profit.
type CrossSpread struct {
	ForeignAmount decimal.Decimal
	SupplierRate  decimal.Decimal
	CustomerRate  decimal.Decimal
}
