package services

import (
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
	portssvc "github.com/storebooks/cash_position_app/internal/core/ports/services"
	"github.com/storebooks/cash_position_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency service first: the reconciliation path depends on its lookup.
	currencySvc := NewCurrencyService(repos.CurrencyRepo, cfg.BaseCurrencyCode)
	container.Currency = currencySvc

	engine := NewDiscrepancyEngine(cfg.BaseCurrencyCode, cfg.BaseCurrencyMinorUnits)

	container.CashPosition = NewCashPositionService(
		repos.MovementRepo,
		repos.SnapshotRepo,
		repos.JournalRepo,
		repos.ExchangeRateRepo,
		repos.LedgerRepo,
		repos.LocationRepo,
		currencySvc,
		engine,
	)

	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, currencySvc)
	container.Location = NewCashLocationService(repos.LocationRepo)
	container.Journal = NewJournalService(repos.JournalRepo)
	container.User = NewUserService(repos.UserRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CashPositionSvcFacade = (*CashPositionService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.CashLocationSvcFacade = (*CashLocationService)(nil)
	_ portssvc.JournalSvcFacade      = (*JournalService)(nil)
	_ portssvc.UserSvcFacade         = (*UserService)(nil)
)
