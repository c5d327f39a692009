package services

import (
	"context"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	"github.com/kyawswarhtun/currency_exchange_app/internal/dto"
)

// ClosingReaderSvc defines read operations for daily closings
type ClosingReaderSvc interface {
	// ListClosings retrieves the requesting user's closing history across all
	// their accounts, newest first.
	ListClosings(ctx context.Context, requestingUserID string, params dto.ListClosingsParams) (*dto.ListClosingsResponse, error)
}

// ClosingWriterSvc defines write operations for daily closings
type ClosingWriterSvc interface {
	// CreateClosing closes one account for the current day: snapshots the
	// ledger balance, records the counted cash and their difference, and
	// attaches the day's profit. At most one closing per account per day.
	CreateClosing(ctx context.Context, req dto.CreateClosingRequest, creatorUserID string) (*domain.DailyClosing, error)
}

// ClosingSvcFacade combines all closing service interfaces
type ClosingSvcFacade interface {
	ClosingReaderSvc
	ClosingWriterSvc
}
