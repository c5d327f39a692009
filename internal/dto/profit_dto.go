package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfitParams defines query parameters for the daily profit calculation.
type ProfitParams struct {
	// Date is the calendar day to evaluate, in YYYY-MM-DD. Defaults to today.
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// Day parses the Date parameter in local time, falling back to the current day.
func (p ProfitParams) Day() (time.Time, error) {
	if p.Date == "" {
		return time.Now(), nil
	}
	return time.ParseInLocation("2006-01-02", p.Date, time.Local)
}

// ProfitRangeParams defines query parameters for the date-range profit
// calculation. Both bounds are inclusive calendar days.
type ProfitRangeParams struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// Bounds parses the From/To parameters in local time.
func (p ProfitRangeParams) Bounds() (time.Time, time.Time, error) {
	from, err := time.ParseInLocation("2006-01-02", p.From, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	to, err := time.ParseInLocation("2006-01-02", p.To, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return from, to, nil
}

// ProfitResponse defines the data returned by the daily profit calculation.
// All figures are MMK-denominated; exchange legs are repriced at current rates.
type ProfitResponse struct {
	AccountID      string          `json:"accountID"`
	Date           time.Time       `json:"date"`
	BrokeredProfit decimal.Decimal `json:"brokeredProfit"`
	ExchangeProfit decimal.Decimal `json:"exchangeProfit"`
	CrossProfit    decimal.Decimal `json:"crossProfit"`
	TotalProfitMMK decimal.Decimal `json:"totalProfitMMK"`
}

// ProfitRangeResponse defines the data returned by the date-range profit
// calculation: one entry per calendar day plus the range total.
type ProfitRangeResponse struct {
	AccountID      string          `json:"accountID"`
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	Days           []ProfitDay     `json:"days"`
	TotalProfitMMK decimal.Decimal `json:"totalProfitMMK"`
}

// ProfitDay is one day's MMK profit within a range.
type ProfitDay struct {
	Date      time.Time       `json:"date"`
	ProfitMMK decimal.Decimal `json:"profitMMK"`
}
