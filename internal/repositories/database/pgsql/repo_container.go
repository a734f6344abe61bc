package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	locationRepo := newPgxCashLocationRepository(dbPool)
	movementRepo := newPgxCashMovementRepository(dbPool)
	snapshotRepo := newPgxBalanceSnapshotRepository(dbPool)
	journalRepo := newPgxJournalRepository(dbPool)
	exchangeRateRepo := NewPgxExchangeRateRepository(dbPool)
	ledgerRepo := newPgxLedgerRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo:     currencyRepo,
		LocationRepo:     locationRepo,
		MovementRepo:     movementRepo,
		SnapshotRepo:     snapshotRepo,
		JournalRepo:      journalRepo,
		ExchangeRateRepo: exchangeRateRepo,
		LedgerRepo:       ledgerRepo,
		UserRepo:         userRepo,
	}
}
