package services

import (
	portsrepo "github.com/cambiosys/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/cambiosys/currency_exchange_app/internal/core/ports/services"
	"github.com/cambiosys/currency_exchange_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Catalog services first; pricing and lifecycle services build on them.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.Rate = NewRateService(repos.RateRepo, container.Currency)
	container.Client = NewClientService(repos.ClientRepo)
	container.Method = NewMethodService(repos.MethodRepo)

	container.Operation = NewOperationService(
		container.Currency,
		container.Rate,
		container.Method,
		container.Client,
	)
	container.Stock = NewStockService(repos.StockRepo, container.Currency)
	container.Profit = NewProfitService(repos.ProfitRepo, container.Currency, container.Method)
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		container.Operation,
		container.Stock,
		container.Profit,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade    = (*currencyService)(nil)
	_ portssvc.RateSvcFacade        = (*rateService)(nil)
	_ portssvc.ClientSvcFacade      = (*clientService)(nil)
	_ portssvc.MethodSvcFacade      = (*methodService)(nil)
	_ portssvc.OperationSvcFacade   = (*operationService)(nil)
	_ portssvc.StockSvcFacade       = (*stockService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.ProfitSvcFacade      = (*profitService)(nil)
)
