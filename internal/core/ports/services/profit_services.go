package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// ProfitSvcFacade defines the daily profit calculation.
type ProfitSvcFacade interface {
	// CalculateDailyProfit evaluates the MMK profit an account produced on the
	// calendar day containing `day`, enforcing account ownership. Standard
	// exchange legs are repriced at current rates; cross spreads and brokered
	// profits are taken as recorded.
	CalculateDailyProfit(ctx context.Context, accountID string, day time.Time, requestingUserID string) (*dto.ProfitResponse, error)

	// CalculateProfitRange evaluates daily MMK profit for every calendar day
	// from `from` to `to` inclusive, enforcing account ownership.
	CalculateProfitRange(ctx context.Context, accountID string, from, to time.Time, requestingUserID string) (*dto.ProfitRangeResponse, error)

	// DailyProfitMMK is the total-only variant used by the closing flow.
	DailyProfitMMK(ctx context.Context, accountID string, day time.Time) (decimal.Decimal, error)
}
