package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
	"github.com/kyawswarhtun/currency_exchange_app/internal/utils/mapping"
)

type PgxClosingRepository struct {
	BaseRepository
}

// newPgxClosingRepository creates a new repository for daily closing data.
func newPgxClosingRepository(pool *pgxpool.Pool) portsrepo.ClosingRepositoryFacade {
	return &PgxClosingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClosingRepository implements portsrepo.ClosingRepositoryFacade
var _ portsrepo.ClosingRepositoryFacade = (*PgxClosingRepository)(nil)

const closingColumns = `closing_id, account_id, closing_date, system_balance, actual_cash_balance, difference, profit_per_day_mmk, note, created_at, created_by, last_updated_at, last_updated_by`

func scanClosing(row pgx.Row) (*models.DailyClosing, error) {
	var m models.DailyClosing
	err := row.Scan(
		&m.ClosingID,
		&m.AccountID,
		&m.ClosingDate,
		&m.SystemBalance,
		&m.ActualCashBalance,
		&m.Difference,
		&m.ProfitPerDayMMK,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveClosing persists a new daily closing record. The unique index on
// (account_id, closing_date) backs the once-per-day rule.
func (r *PgxClosingRepository) SaveClosing(ctx context.Context, closing domain.DailyClosing) error {
	m := mapping.ToModelDailyClosing(closing)

	query := `
		INSERT INTO daily_closings (` + closingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClosingID,
		m.AccountID,
		m.ClosingDate,
		m.SystemBalance,
		m.ActualCashBalance,
		m.Difference,
		m.ProfitPerDayMMK,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrAlreadyClosed
		}
		return fmt.Errorf("failed to save daily closing %s: %w", m.ClosingID, err)
	}
	return nil
}

// FindClosingForDay retrieves the closing for an account on the calendar day
// containing the given time, if one exists.
func (r *PgxClosingRepository) FindClosingForDay(ctx context.Context, accountID string, day time.Time) (*domain.DailyClosing, error) {
	query := `
		SELECT ` + closingColumns + `
		FROM daily_closings
		WHERE account_id = $1 AND closing_date = $2;
	`
	year, month, d := day.Local().Date()
	dayStart := time.Date(year, month, d, 0, 0, 0, 0, time.Local)

	m, err := scanClosing(r.Pool.QueryRow(ctx, query, accountID, dayStart))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find closing for account %s: %w", accountID, err)
	}

	closing := mapping.ToDomainDailyClosing(*m)
	return &closing, nil
}

// ListClosingsByUser retrieves closings for all of the user's accounts, newest
// first, enriched with account display fields.
func (r *PgxClosingRepository) ListClosingsByUser(ctx context.Context, userID string, limit int, offset int) ([]domain.ClosingWithAccount, int64, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	countQuery := `
		SELECT COUNT(*)
		FROM daily_closings c
		JOIN accounts a ON a.account_id = c.account_id
		WHERE a.user_id = $1;
	`
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count closings for user %s: %w", userID, err)
	}

	query := `
		SELECT c.closing_id, c.account_id, c.closing_date, c.system_balance, c.actual_cash_balance, c.difference, c.profit_per_day_mmk, c.note, c.created_at, c.created_by, c.last_updated_at, c.last_updated_by, a.name, a.currency
		FROM daily_closings c
		JOIN accounts a ON a.account_id = c.account_id
		WHERE a.user_id = $1
		ORDER BY c.closing_date DESC, c.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query closings for user %s: %w", userID, err)
	}
	defer rows.Close()

	closings := []domain.ClosingWithAccount{}
	for rows.Next() {
		var m models.DailyClosing
		var accountName, accountCurrency string
		err := rows.Scan(
			&m.ClosingID,
			&m.AccountID,
			&m.ClosingDate,
			&m.SystemBalance,
			&m.ActualCashBalance,
			&m.Difference,
			&m.ProfitPerDayMMK,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&accountName,
			&accountCurrency,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan closing row: %w", err)
		}
		closings = append(closings, domain.ClosingWithAccount{
			DailyClosing:    mapping.ToDomainDailyClosing(m),
			AccountName:     accountName,
			AccountCurrency: domain.Currency(accountCurrency),
		})
	}
	return closings, total, rows.Err()
}
