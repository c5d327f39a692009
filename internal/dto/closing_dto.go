package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// CreateClosingRequest defines the data needed to close an account for the day.
type CreateClosingRequest struct {
	AccountID         string          `json:"accountID" binding:"required"`
	ActualCashBalance decimal.Decimal `json:"actualCashBalance" binding:"required"`
	Note              string          `json:"note"`
}

// ClosingResponse defines the data returned for a daily closing.
type ClosingResponse struct {
	ClosingID         string          `json:"closingID"`
	AccountID         string          `json:"accountID"`
	ClosingDate       time.Time       `json:"closingDate"`
	SystemBalance     decimal.Decimal `json:"systemBalance"`
	ActualCashBalance decimal.Decimal `json:"actualCashBalance"`
	Difference        decimal.Decimal `json:"difference"`
	ProfitPerDayMMK   decimal.Decimal `json:"profitPerDayMMK"`
	Note              string          `json:"note"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// ClosingWithAccountResponse is a closing enriched with account display fields.
type ClosingWithAccountResponse struct {
	ClosingResponse
	AccountName     string          `json:"accountName"`
	AccountCurrency domain.Currency `json:"accountCurrency"`
}

// ListClosingsParams defines query parameters for listing closing history.
type ListClosingsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// ListClosingsResponse wraps the closing history list.
type ListClosingsResponse struct {
	Closings []ClosingWithAccountResponse `json:"closings"`
	Total    int64                        `json:"total"`
}

// ToClosingResponse converts a domain.DailyClosing to ClosingResponse DTO
func ToClosingResponse(c *domain.DailyClosing) ClosingResponse {
	return ClosingResponse{
		ClosingID:         c.ClosingID,
		AccountID:         c.AccountID,
		ClosingDate:       c.ClosingDate,
		SystemBalance:     c.SystemBalance,
		ActualCashBalance: c.ActualCashBalance,
		Difference:        c.Difference,
		ProfitPerDayMMK:   c.ProfitPerDayMMK,
		Note:              c.Note,
		CreatedAt:         c.CreatedAt,
		CreatedBy:         c.CreatedBy,
	}
}

// ToListClosingsResponse converts enriched closings to ListClosingsResponse DTO
func ToListClosingsResponse(closings []domain.ClosingWithAccount, total int64) ListClosingsResponse {
	res := make([]ClosingWithAccountResponse, len(closings))
	for i := range closings {
		res[i] = ClosingWithAccountResponse{
			ClosingResponse: ToClosingResponse(&closings[i].DailyClosing),
			AccountName:     closings[i].AccountName,
			AccountCurrency: closings[i].AccountCurrency,
		}
	}
	return ListClosingsResponse{Closings: res, Total: total}
}
