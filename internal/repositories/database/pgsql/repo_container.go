package pgsql

import (
	portsrepo "github.com/cambiosys/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	rateRepo := newPgxRateRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	methodRepo := newPgxMethodRepository(dbPool)
	stockRepo := newPgxStockRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	profitRepo := newPgxProfitRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:    currencyRepo,
		RateRepo:        rateRepo,
		ClientRepo:      clientRepo,
		MethodRepo:      methodRepo,
		StockRepo:       stockRepo,
		TransactionRepo: transactionRepo,
		ProfitRepo:      profitRepo,
	}
}
