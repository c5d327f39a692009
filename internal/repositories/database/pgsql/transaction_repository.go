package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/kyawswarhtun/currency_exchange_app/internal/apperrors"
	"github.com/kyawswarhtun/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	"github.com/kyawswarhtun/currency_exchange_app/internal/models"
	"github.com/kyawswarhtun/currency_exchange_app/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for transaction records.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const exchangeColumns = `transaction_id, from_account_id, to_account_id, amount_out, amount_in, exchange_rate, customer_name, note, created_at, created_by, last_updated_at, last_updated_by`

const crossColumns = `transaction_id, supplier_id, foreign_currency, foreign_amount, bridge_account_id, bridge_amount, supplier_rate, target_account_id, target_amount, customer_rate, direction, note, created_at, created_by, last_updated_at, last_updated_by`

// SaveExchange persists a standard exchange and applies its balance changes
// within a single DB transaction: lock the accounts, re-check that no debit
// overdraws the locked balance, apply the deltas, insert the record, commit.
func (r *PgxTransactionRepository) SaveExchange(ctx context.Context, txn domain.ExchangeTransaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockAndApply(ctx, tx, balanceChanges, txn.CreatedBy, txn.AuditFields); err != nil {
		return err
	}

	m := mapping.ToModelExchangeTransaction(txn)
	query := `
		INSERT INTO exchange_transactions (` + exchangeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.FromAccountID,
		m.ToAccountID,
		m.AmountOut,
		m.AmountIn,
		m.ExchangeRate,
		m.CustomerName,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert exchange transaction "+m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// SaveCrossExchange persists a cross exchange the same way as SaveExchange.
func (r *PgxTransactionRepository) SaveCrossExchange(ctx context.Context, txn domain.CrossTransaction, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := r.lockAndApply(ctx, tx, balanceChanges, txn.CreatedBy, txn.AuditFields); err != nil {
		return err
	}

	m := mapping.ToModelCrossTransaction(txn)
	query := `
		INSERT INTO cross_transactions (` + crossColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err = tx.Exec(ctx, query,
		m.TransactionID,
		m.SupplierID,
		m.ForeignCurrency,
		m.ForeignAmount,
		m.BridgeAccountID,
		m.BridgeAmount,
		m.SupplierRate,
		m.TargetAccountID,
		m.TargetAmount,
		m.CustomerRate,
		m.Direction,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert cross transaction "+m.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// lockAndApply locks the touched accounts, verifies the debits against the
// locked balances, and applies the deltas. The service's earlier sufficiency
// check raced with concurrent writers; this one does not.
func (r *PgxTransactionRepository) lockAndApply(ctx context.Context, tx pgx.Tx, balanceChanges map[string]decimal.Decimal, userID string, audit domain.AuditFields) error {
	accountIDs := make([]string, 0, len(balanceChanges))
	for accID := range balanceChanges {
		accountIDs = append(accountIDs, accID)
	}

	lockedAccounts, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	for accID, delta := range balanceChanges {
		if delta.IsNegative() && lockedAccounts[accID].Balance.Add(delta).IsNegative() {
			return fmt.Errorf("%w: account %s balance %s cannot cover %s",
				apperrors.ErrInsufficientFunds, accID, lockedAccounts[accID].Balance, delta.Neg())
		}
	}

	if err := r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, audit.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to update account balances", err)
	}
	return nil
}

func scanExchange(row pgx.Row) (*models.ExchangeTransaction, error) {
	var m models.ExchangeTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.AmountOut,
		&m.AmountIn,
		&m.ExchangeRate,
		&m.CustomerName,
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

func scanCross(row pgx.Row) (*models.CrossTransaction, error) {
	var m models.CrossTransaction
	err := row.Scan(
		&m.TransactionID,
		&m.SupplierID,
		&m.ForeignCurrency,
		&m.ForeignAmount,
		&m.BridgeAccountID,
		&m.BridgeAmount,
		&m.SupplierRate,
		&m.TargetAccountID,
		&m.TargetAmount,
		&m.CustomerRate,
		&m.Direction,
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

// FindExchangeByID retrieves a standard exchange and the user owning its
// source account.
func (r *PgxTransactionRepository) FindExchangeByID(ctx context.Context, transactionID string) (*domain.ExchangeTransaction, string, error) {
	query := `
		SELECT t.transaction_id, t.from_account_id, t.to_account_id, t.amount_out, t.amount_in, t.exchange_rate, t.customer_name, t.note, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, a.user_id
		FROM exchange_transactions t
		JOIN accounts a ON a.account_id = t.from_account_id
		WHERE t.transaction_id = $1;
	`
	var m models.ExchangeTransaction
	var ownerUserID string
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.FromAccountID,
		&m.ToAccountID,
		&m.AmountOut,
		&m.AmountIn,
		&m.ExchangeRate,
		&m.CustomerName,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&ownerUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to find exchange transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainExchangeTransaction(m)
	return &txn, ownerUserID, nil
}

// FindCrossByID retrieves a cross exchange and the user owning its bridge
// account.
func (r *PgxTransactionRepository) FindCrossByID(ctx context.Context, transactionID string) (*domain.CrossTransaction, string, error) {
	query := `
		SELECT t.transaction_id, t.supplier_id, t.foreign_currency, t.foreign_amount, t.bridge_account_id, t.bridge_amount, t.supplier_rate, t.target_account_id, t.target_amount, t.customer_rate, t.direction, t.note, t.created_at, t.created_by, t.last_updated_at, t.last_updated_by, a.user_id
		FROM cross_transactions t
		JOIN accounts a ON a.account_id = t.bridge_account_id
		WHERE t.transaction_id = $1;
	`
	var m models.CrossTransaction
	var ownerUserID string
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(
		&m.TransactionID,
		&m.SupplierID,
		&m.ForeignCurrency,
		&m.ForeignAmount,
		&m.BridgeAccountID,
		&m.BridgeAmount,
		&m.SupplierRate,
		&m.TargetAccountID,
		&m.TargetAmount,
		&m.CustomerRate,
		&m.Direction,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&ownerUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to find cross transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainCrossTransaction(m)
	return &txn, ownerUserID, nil
}

// ListExchangesByUser retrieves the most recent standard exchanges touching
// any of the user's accounts.
func (r *PgxTransactionRepository) ListExchangesByUser(ctx context.Context, userID string, limit int) ([]domain.ExchangeTransaction, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + exchangeColumns + `
		FROM exchange_transactions
		WHERE from_account_id IN (SELECT account_id FROM accounts WHERE user_id = $1)
		   OR to_account_id IN (SELECT account_id FROM accounts WHERE user_id = $1)
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.ExchangeTransaction{}
	for rows.Next() {
		m, err := scanExchange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exchange transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainExchangeTransaction(*m))
	}
	return txns, rows.Err()
}

// ListCrossByUser retrieves the most recent cross exchanges touching any of
// the user's accounts.
func (r *PgxTransactionRepository) ListCrossByUser(ctx context.Context, userID string, limit int) ([]domain.CrossTransaction, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT ` + crossColumns + `
		FROM cross_transactions
		WHERE bridge_account_id IN (SELECT account_id FROM accounts WHERE user_id = $1)
		   OR target_account_id IN (SELECT account_id FROM accounts WHERE user_id = $1)
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2;
	`
	rows, err := r.Pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query cross transactions for user %s: %w", userID, err)
	}
	defer rows.Close()

	txns := []domain.CrossTransaction{}
	for rows.Next() {
		m, err := scanCross(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cross transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainCrossTransaction(*m))
	}
	return txns, rows.Err()
}
