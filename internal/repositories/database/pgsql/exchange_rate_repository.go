package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
	"github.com/kyawswarhtun/currency_exchange_app/internal/utils/mapping"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

const rateColumns = `exchange_rate_id, currency, rate, rate_from_mmk, created_at, created_by, last_updated_at, last_updated_by`

// upsertRateQuery replaces a currency's rate pair in place; currency is the
// natural key of the table.
const upsertRateQuery = `
	INSERT INTO exchange_rates (` + rateColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (currency) DO UPDATE
	SET rate = EXCLUDED.rate,
		rate_from_mmk = EXCLUDED.rate_from_mmk,
		last_updated_at = EXCLUDED.last_updated_at,
		last_updated_by = EXCLUDED.last_updated_by;
`

func scanRate(row pgx.Row) (*models.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID,
		&m.Currency,
		&m.Rate,
		&m.RateFromMMK,
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

// FindRateByCurrency retrieves the stored rate row for a single currency.
func (r *PgxExchangeRateRepository) FindRateByCurrency(ctx context.Context, currency domain.Currency) (*domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates WHERE currency = $1;`

	m, err := scanRate(r.Pool.QueryRow(ctx, query, string(currency)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate for %s: %w", currency, err)
	}

	rate := mapping.ToDomainExchangeRate(*m)
	return &rate, nil
}

// ListRates retrieves all stored rate rows.
func (r *PgxExchangeRateRepository) ListRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + rateColumns + ` FROM exchange_rates ORDER BY currency;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates := []domain.ExchangeRate{}
	for rows.Next() {
		m, err := scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		rates = append(rates, mapping.ToDomainExchangeRate(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating exchange rate rows: %w", err)
	}
	return rates, nil
}

// UpsertRate inserts or replaces the rate row for one currency.
func (r *PgxExchangeRateRepository) UpsertRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	_, err := r.Pool.Exec(ctx, upsertRateQuery,
		m.ExchangeRateID,
		m.Currency,
		m.Rate,
		m.RateFromMMK,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert exchange rate for %s: %w", m.Currency, err)
	}
	return nil
}

// UpsertRates inserts or replaces rate rows for several currencies atomically.
func (r *PgxExchangeRateRepository) UpsertRates(ctx context.Context, rates []domain.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, rate := range rates {
		m := mapping.ToModelExchangeRate(rate)
		batch.Queue(upsertRateQuery,
			m.ExchangeRateID,
			m.Currency,
			m.Rate,
			m.RateFromMMK,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to upsert exchange rate for %s: %w", rates[i].Currency, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close rate upsert batch: %w", err)
	}
	if batchErr != nil {
		return batchErr
	}

	return r.Commit(ctx, tx)
}
