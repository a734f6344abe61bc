package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	"github.com/storebooks/cash_position_app/internal/core/services"
	"github.com/stretchr/testify/assert"
)

func TestSumJournalLines(t *testing.T) {
	tests := []struct {
		name       string
		lines      []domain.JournalLine
		wantDebit  int64
		wantCredit int64
		wantNet    int64
	}{
		{
			name: "debits and credits net out",
			lines: []domain.JournalLine{
				{LineID: "l1", Debit: decimal.NewFromInt(150000)},
				{LineID: "l2", Credit: decimal.NewFromInt(50000)},
				{LineID: "l3", Debit: decimal.NewFromInt(20000), Credit: decimal.NewFromInt(5000)},
			},
			wantDebit:  170000,
			wantCredit: 55000,
			wantNet:    115000,
		},
		{
			name:    "empty set yields zeros",
			lines:   nil,
			wantNet: 0,
		},
		{
			name: "credit heavy day goes negative",
			lines: []domain.JournalLine{
				{LineID: "l1", Credit: decimal.NewFromInt(75000)},
			},
			wantCredit: 75000,
			wantNet:    -75000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.SumJournalLines(tt.lines)
			assert.True(t, got.Debit.Equal(decimal.NewFromInt(tt.wantDebit)))
			assert.True(t, got.Credit.Equal(decimal.NewFromInt(tt.wantCredit)))
			assert.True(t, got.Net.Equal(decimal.NewFromInt(tt.wantNet)))
		})
	}
}
