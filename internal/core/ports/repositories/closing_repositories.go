package repositories

import (
	"context"
	"time"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
)

// ClosingReader defines read operations for daily closing data
type ClosingReader interface {
	// FindClosingForDay retrieves the closing for an account on the calendar
	// day containing the given time, if one exists.
	FindClosingForDay(ctx context.Context, accountID string, day time.Time) (*domain.DailyClosing, error)

	// ListClosingsByUser retrieves closings for all of the user's accounts,
	// newest first, enriched with account display fields.
	ListClosingsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.ClosingWithAccount, int64, error)
}

// ClosingWriter defines write operations for daily closing data
type ClosingWriter interface {
	// SaveClosing persists a new daily closing record.
	SaveClosing(ctx context.Context, closing domain.DailyClosing) error
}

// ClosingRepositoryFacade combines all closing repository interfaces
type ClosingRepositoryFacade interface {
	ClosingReader
	ClosingWriter
}
