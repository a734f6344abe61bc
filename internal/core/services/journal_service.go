package services

import (
	"context"
	"fmt"

	"github.com/storebooks/cash_position_app/internal/core/domain"
	portsrepo "github.com/storebooks/cash_position_app/internal/core/ports/repositories"
)

// JournalService provides the journal drill-down view.
type JournalService struct {
	BaseService
	journalRepo portsrepo.JournalReader
}

func NewJournalService(journalRepo portsrepo.JournalReader) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

// GetJournalLines returns all lines of one journal with their totals.
func (s *JournalService) GetJournalLines(ctx context.Context, journalID string) ([]domain.JournalLine, domain.JournalTotals, error) {
	lines, err := s.journalRepo.FindJournalLinesByJournalID(ctx, journalID)
	if err != nil {
		return nil, domain.JournalTotals{}, fmt.Errorf("failed to get journal lines in service: %w", err)
	}
	return lines, SumJournalLines(lines), nil
}
