package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyReader
	LocationRepo     CashLocationReader
	MovementRepo     CashMovementReader
	SnapshotRepo     BalanceSnapshotReader
	JournalRepo      JournalReader
	ExchangeRateRepo ExchangeRateRepositoryFacade
	LedgerRepo       LedgerReader
	UserRepo         UserReader
}
