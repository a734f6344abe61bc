package mapping

import (
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/models"
	"github.com/storebooks/cash_position_app/internal/utils/amounts"
)

// ToDomainCashMovement converts a raw movement row to its domain form,
// coercing corrupt numeric text to zero at the boundary.
func ToDomainCashMovement(m models.CashMovement) domain.CashMovement {
	return domain.CashMovement{
		LocationID:         m.LocationID,
		LocalDate:          m.LocalDate,
		BaseAmount:         amounts.ParseAmount(m.BaseAmount),
		OriginalAmount:     amounts.ParseAmount(m.OriginalAmount),
		OriginalCurrencyID: m.OriginalCurrencyID,
	}
}

// ToDomainCashMovementSlice converts a slice of movement rows.
func ToDomainCashMovementSlice(ms []models.CashMovement) []domain.CashMovement {
	ds := make([]domain.CashMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCashMovement(m)
	}
	return ds
}
