package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new cash account.
type CreateAccountRequest struct {
	Name           string           `json:"name" binding:"required"`
	Currency       domain.Currency  `json:"currency" binding:"required,currency"`
	InitialBalance *decimal.Decimal `json:"initialBalance"` // Optional, defaults to zero
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name   *string `json:"name"`
	Status *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE FREEZE"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string            `json:"accountID"`
	UserID        string            `json:"userID"`
	Name          string            `json:"name"`
	Currency      domain.Currency   `json:"currency"`
	Balance       decimal.Decimal   `json:"balance"`
	Status        string            `json:"status"`
	LastClosing   *ClosingResponse  `json:"lastClosing,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
	CreatedBy     string            `json:"createdBy"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy string            `json:"lastUpdatedBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Currency string `form:"currency" binding:"omitempty,currency"`
}

// TotalBalanceParams defines query parameters for a per-currency balance total.
type TotalBalanceParams struct {
	Currency string `form:"currency" binding:"required,currency"`
}

// TotalBalanceResponse is the user's aggregate balance in one currency.
type TotalBalanceResponse struct {
	Currency     domain.Currency `json:"currency"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	resp := AccountResponse{
		AccountID:     acc.AccountID,
		UserID:        acc.UserID,
		Name:          acc.Name,
		Currency:      acc.Currency,
		Balance:       acc.Balance,
		Status:        string(acc.Status),
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
	if acc.LastClosing != nil {
		closing := ToClosingResponse(acc.LastClosing)
		resp.LastClosing = &closing
	}
	return resp
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: res}
}
