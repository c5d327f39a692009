package services

import (
	portsrepo "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/kyawswarhtun/currency_exchange_app/internal/core/ports/services"
	"github.com/kyawswarhtun/currency_exchange_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.ExchangeRate = NewExchangeRateServiceImpl(repos.ExchangeRateRepo)
	container.Account = NewAccountServiceImpl(repos.AccountRepo)
	container.Supplier = NewSupplierServiceImpl(repos.SupplierRepo)
	container.Transaction = NewTransactionServiceImpl(repos.TransactionRepo, repos.AccountRepo, repos.SupplierRepo)

	// Profit feeds the closing flow, so it is wired before closing.
	container.Profit = NewProfitServiceImpl(repos.ProfitRepo, repos.AccountRepo, container.ExchangeRate)
	container.Closing = NewClosingServiceImpl(repos.ClosingRepo, repos.AccountRepo, container.Profit)

	container.User = NewUserServiceImpl(repos.UserRepo)
	container.Token = NewTokenServiceImpl(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer)

	return container
}
