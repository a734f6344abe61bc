package repositories

import (
	"context"
	"time"

	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CashMovementReader defines read operations for raw cash movements.
// The provider resolves local dates via timezone conversion; the engine
// must not re-derive them.
type CashMovementReader interface {
	// ListCashMovements returns all movements touching the company's
	// cash locations within the inclusive local-date range.
	ListCashMovements(ctx context.Context, companyID string, startDate, endDate time.Time) ([]domain.CashMovement, error)

	// ListCashMovementsByLocation returns one location's movements,
	// newest first, with token pagination. nextToken carries the last
	// row's (local_date, created_at) cursor.
	ListCashMovementsByLocation(ctx context.Context, companyID, locationID string, limit int, nextToken string) ([]domain.CashMovement, string, error)
}
