package services

import (
	"context"
	"time"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CashPositionSvcFacade exposes the cash position matrix and the
// per-cell reconciliation drill-down.
type CashPositionSvcFacade interface {
	// BuildCashPosition aggregates movements and derives current
	// balances for every location of the company over the inclusive
	// local-date range.
	BuildCashPosition(ctx context.Context, companyID string, startDate, endDate time.Time) (*domain.CashPositionMatrix, error)

	// ReconcileCell produces the full drill-down for one (location,
	// local date) cell: discrepancy report, ledger balance rows,
	// denomination groups and the raw journal lines. Sections backed by
	// failed fetches are flagged unavailable instead of failing the
	// whole call.
	ReconcileCell(ctx context.Context, companyID, locationID, localDate string) (*domain.CashPositionDetail, error)

	// ListMovements returns one location's raw movements with token
	// pagination, newest first.
	ListMovements(ctx context.Context, companyID, locationID string, limit int, nextToken string) ([]domain.CashMovement, string, error)
}
