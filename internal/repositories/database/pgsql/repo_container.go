package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	exchangeRateRepo := newPgxExchangeRateRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)
	profitRepo := newPgxProfitRepository(dbPool)
	closingRepo := newPgxClosingRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		ExchangeRateRepo: exchangeRateRepo,
		TransactionRepo:  transactionRepo,
		ProfitRepo:       profitRepo,
		ClosingRepo:      closingRepo,
		SupplierRepo:     supplierRepo,
		UserRepo:         userRepo,
	}
}
