package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
)

const (
	defaultMovementPageSize = 50
	maxMovementPageSize     = 500
)

// CashPositionService orchestrates the cash position matrix and the
// per-cell reconciliation drill-down over the read-side repositories.
type CashPositionService struct {
	BaseService
	movementRepo portsrepo.CashMovementReader
	snapshotRepo portsrepo.BalanceSnapshotReader
	journalRepo  portsrepo.JournalReader
	rateRepo     portsrepo.ExchangeRateReader
	ledgerRepo   portsrepo.LedgerReader
	locationRepo portsrepo.CashLocationReader
	currencySvc  *CurrencyService
	engine       DiscrepancyEngine
}

// NewCashPositionService creates a new CashPositionService.
func NewCashPositionService(
	movementRepo portsrepo.CashMovementReader,
	snapshotRepo portsrepo.BalanceSnapshotReader,
	journalRepo portsrepo.JournalReader,
	rateRepo portsrepo.ExchangeRateReader,
	ledgerRepo portsrepo.LedgerReader,
	locationRepo portsrepo.CashLocationReader,
	currencySvc *CurrencyService,
	engine DiscrepancyEngine,
) *CashPositionService {
	return &CashPositionService{
		movementRepo: movementRepo,
		snapshotRepo: snapshotRepo,
		journalRepo:  journalRepo,
		rateRepo:     rateRepo,
		ledgerRepo:   ledgerRepo,
		locationRepo: locationRepo,
		currencySvc:  currencySvc,
		engine:       engine,
	}
}

// BuildCashPosition aggregates movements into the date x location flow
// matrix and derives each location's current balance from its latest
// snapshot.
func (s *CashPositionService) BuildCashPosition(ctx context.Context, companyID string, startDate, endDate time.Time) (*domain.CashPositionMatrix, error) {
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}

	locations, err := s.locationRepo.ListCashLocations(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash locations: %w", err)
	}

	lookup, err := s.currencySvc.Lookup(ctx)
	if err != nil {
		// The lookup falls back to the base currency code for every ID;
		// the matrix is still renderable.
		s.LogError(ctx, err, "currency lookup unavailable, using base currency fallback")
	}

	movements, err := s.movementRepo.ListCashMovements(ctx, companyID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash movements: %w", err)
	}

	matrix := &domain.CashPositionMatrix{
		Locations: locations,
		Flows:     AggregateFlows(movements, lookup),
		Balances:  make(map[string]domain.DerivedBalance, len(locations)),
		Breakdown: make(map[string]map[string]decimal.Decimal),
	}

	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		matrix.Dates = append(matrix.Dates, d.Format(domain.LocalDateLayout))
	}

	locationIDs := make([]string, len(locations))
	for i, loc := range locations {
		locationIDs[i] = loc.LocationID
	}

	snapshots, err := s.snapshotRepo.LatestBalanceSnapshots(ctx, locationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance snapshots: %w", err)
	}

	for _, loc := range locations {
		snap, ok := snapshots[loc.LocationID]
		if !ok {
			// Never counted: zero balance is a valid state.
			matrix.Balances[loc.LocationID] = DeriveBalance(nil, lookup)
			continue
		}
		matrix.Balances[loc.LocationID] = DeriveBalance(&snap, lookup)
		if byCurrency := DeriveBalancesByCurrency(&snap, lookup); len(byCurrency) > 1 {
			matrix.Breakdown[loc.LocationID] = byCurrency
		}
	}

	return matrix, nil
}

// ReconcileCell produces the drill-down for one (location, local date)
// cell. The four backing streams are fetched concurrently; a failed
// stream flags its section unavailable instead of failing the call.
func (s *CashPositionService) ReconcileCell(ctx context.Context, companyID, locationID, localDate string) (*domain.CashPositionDetail, error) {
	day, err := time.Parse(domain.LocalDateLayout, localDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid local date %q", apperrors.ErrValidation, localDate)
	}

	loc, err := s.locationRepo.FindCashLocation(ctx, companyID, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find cash location: %w", err)
	}

	lookup, lookupErr := s.currencySvc.Lookup(ctx)
	if lookupErr != nil {
		s.LogError(ctx, lookupErr, "currency lookup unavailable, using base currency fallback", "location_id", locationID)
	}

	movements, err := s.movementRepo.ListCashMovements(ctx, companyID, day, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash movements: %w", err)
	}
	flows := AggregateFlows(movements, lookup)[domain.FlowKey{LocalDate: localDate, LocationID: locationID}]

	needsConversion := s.engine.NeedsConversion(loc.Kind, flows.OriginalCurrencyCode)

	var (
		wg sync.WaitGroup

		journalLines []domain.JournalLine
		journalErr   error

		rate    *decimal.Decimal
		rateErr error

		pairs     []domain.BalancePair
		ledgerErr error

		deltas   []domain.DenominationDelta
		denomErr error
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		journalLines, journalErr = s.journalRepo.ListJournalLines(ctx, companyID, locationID, localDate)
	}()

	go func() {
		defer wg.Done()
		if !needsConversion {
			return
		}
		fromID, baseID := s.resolveRatePair(ctx, flows.OriginalCurrencyCode)
		if fromID == "" || baseID == "" {
			// No resolvable pair behaves like a missing rate.
			return
		}
		found, err := s.rateRepo.FindRateAsOf(ctx, companyID, fromID, baseID, day)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Valid outcome: reconciliation reports "no rate found".
				return
			}
			rateErr = err
			return
		}
		r := found.Rate
		rate = &r
	}()

	go func() {
		defer wg.Done()
		pairs, ledgerErr = s.ledgerRepo.GetLedgerBalances(ctx, companyID, locationID, localDate)
	}()

	go func() {
		defer wg.Done()
		if loc.Kind.IsBank() {
			// Bank accounts have no physical denominations.
			return
		}
		deltas, denomErr = s.ledgerRepo.GetDenominationChanges(ctx, companyID, locationID, localDate)
	}()

	wg.Wait()

	if journalErr != nil && ledgerErr != nil && denomErr != nil {
		return nil, fmt.Errorf("failed to load reconciliation data: %w", journalErr)
	}

	detail := &domain.CashPositionDetail{
		JournalAvailable:      journalErr == nil,
		RateAvailable:         rateErr == nil,
		LedgerAvailable:       ledgerErr == nil,
		DenominationAvailable: denomErr == nil,
		LedgerRows:            []domain.LedgerBalanceRow{},
		Denominations:         []domain.DenominationGroup{},
		JournalLines:          []domain.JournalLine{},
	}

	if journalErr != nil {
		s.LogError(ctx, journalErr, "journal lines unavailable", "location_id", locationID, "local_date", localDate)
	} else {
		detail.JournalLines = journalLines
		report := s.engine.Reconcile(DiscrepancyInput{
			LocationID: locationID,
			LocalDate:  localDate,
			Kind:       loc.Kind,
			Flows:      flows,
			Journal:    SumJournalLines(journalLines),
			Rate:       rate,
		})
		detail.Report = &report
	}

	if rateErr != nil {
		s.LogError(ctx, rateErr, "exchange rate unavailable", "location_id", locationID, "local_date", localDate)
	}

	if ledgerErr != nil {
		s.LogError(ctx, ledgerErr, "ledger balances unavailable", "location_id", locationID, "local_date", localDate)
	} else {
		detail.LedgerRows = BuildLedgerBalanceRows(pairs, lookup)
	}

	if denomErr != nil {
		s.LogError(ctx, denomErr, "denomination changes unavailable", "location_id", locationID, "local_date", localDate)
	} else if !loc.Kind.IsBank() {
		detail.Denominations = GroupDenominationDeltas(deltas, lookup)
	}

	return detail, nil
}

// ListMovements returns one location's raw movements with token
// pagination, newest first.
func (s *CashPositionService) ListMovements(ctx context.Context, companyID, locationID string, limit int, nextToken string) ([]domain.CashMovement, string, error) {
	if limit <= 0 {
		limit = defaultMovementPageSize
	}
	if limit > maxMovementPageSize {
		limit = maxMovementPageSize
	}

	movements, token, err := s.movementRepo.ListCashMovementsByLocation(ctx, companyID, locationID, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list cash movements in service: %w", err)
	}
	return movements, token, nil
}

// resolveRatePair maps the flow's original currency code and the base
// currency code back to currency IDs for the rate lookup.
func (s *CashPositionService) resolveRatePair(ctx context.Context, originalCode string) (fromID, baseID string) {
	currencies, err := s.currencySvc.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to resolve currency IDs for rate lookup")
		return "", ""
	}
	for _, c := range currencies {
		if c.CurrencyCode == originalCode {
			fromID = c.CurrencyID
		}
		if c.CurrencyCode == s.engine.BaseCurrencyCode {
			baseID = c.CurrencyID
		}
	}
	return fromID, baseID
}
