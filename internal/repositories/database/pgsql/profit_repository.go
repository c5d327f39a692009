package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
)

type PgxProfitRepository struct {
	BaseRepository
}

// newPgxProfitRepository creates a new repository for profit source data.
func newPgxProfitRepository(pool *pgxpool.Pool) portsrepo.ProfitRepositoryFacade {
	return &PgxProfitRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxProfitRepository implements portsrepo.ProfitRepositoryFacade
var _ portsrepo.ProfitRepositoryFacade = (*PgxProfitRepository)(nil)

// SumBrokeredProfit sums the MMK net profit of brokered deals attributed to
// the account within [start, end].
func (r *PgxProfitRepository) SumBrokeredProfit(ctx context.Context, accountID string, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(net_profit), 0)
		FROM brokered_transactions
		WHERE profit_account_id = $1 AND created_at BETWEEN $2 AND $3;
	`
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, accountID, start, end).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum brokered profit for account %s: %w", accountID, err)
	}
	return sum, nil
}

// ListExchangeLegs retrieves the currency legs of standard exchanges that
// touched the account within [start, end]. The currencies come from the
// accounts on each side of the transfer.
func (r *PgxProfitRepository) ListExchangeLegs(ctx context.Context, accountID string, start, end time.Time) ([]domain.ExchangeLeg, error) {
	query := `
		SELECT t.amount_out, t.amount_in, fa.currency, ta.currency
		FROM exchange_transactions t
		JOIN accounts fa ON fa.account_id = t.from_account_id
		JOIN accounts ta ON ta.account_id = t.to_account_id
		WHERE (t.from_account_id = $1 OR t.to_account_id = $1)
		  AND t.created_at BETWEEN $2 AND $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange legs for account %s: %w", accountID, err)
	}
	defer rows.Close()

	legs := []domain.ExchangeLeg{}
	for rows.Next() {
		var leg domain.ExchangeLeg
		var fromCurrency, toCurrency string
		if err := rows.Scan(&leg.AmountOut, &leg.AmountIn, &fromCurrency, &toCurrency); err != nil {
			return nil, fmt.Errorf("failed to scan exchange leg row: %w", err)
		}
		leg.FromCurrency = domain.Currency(fromCurrency)
		leg.ToCurrency = domain.Currency(toCurrency)
		legs = append(legs, leg)
	}
	return legs, rows.Err()
}

// ListCrossSpreads retrieves the rate spreads of cross exchanges whose bridge
// or target account is the given account within [start, end].
func (r *PgxProfitRepository) ListCrossSpreads(ctx context.Context, accountID string, start, end time.Time) ([]domain.CrossSpread, error) {
	query := `
		SELECT foreign_amount, supplier_rate, customer_rate
		FROM cross_transactions
		WHERE (bridge_account_id = $1 OR target_account_id = $1)
		  AND created_at BETWEEN $2 AND $3;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query cross spreads for account %s: %w", accountID, err)
	}
	defer rows.Close()

	spreads := []domain.CrossSpread{}
	for rows.Next() {
		var sp domain.CrossSpread
		if err := rows.Scan(&sp.ForeignAmount, &sp.SupplierRate, &sp.CustomerRate); err != nil {
			return nil, fmt.Errorf("failed to scan cross spread row: %w", err)
		}
		spreads = append(spreads, sp)
	}
	return spreads, rows.Err()
}
