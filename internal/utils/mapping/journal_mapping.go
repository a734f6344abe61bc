package mapping

import (
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/models"
	"github.com/storebooks/cash_position_app/internal/utils/amounts"
)

// ToDomainJournalLine converts a raw journal line row to its domain
// form, coercing corrupt debit/credit text to zero at the boundary.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		JournalID:       m.JournalID,
		LineID:          m.LineID,
		LocalDate:       m.LocalDate,
		Description:     m.Description,
		JournalType:     m.JournalType,
		LineDescription: m.LineDescription,
		AccountName:     m.AccountName,
		Debit:           amounts.ParseAmount(m.Debit),
		Credit:          amounts.ParseAmount(m.Credit),
	}
}

// ToDomainJournalLineSlice converts a slice of journal line rows.
func ToDomainJournalLineSlice(ms []models.JournalLine) []domain.JournalLine {
	ds := make([]domain.JournalLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJournalLine(m)
	}
	return ds
}
