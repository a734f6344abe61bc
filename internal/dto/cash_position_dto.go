package dto

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CashCellResponse is one (date, location) cell of the position matrix.
type CashCellResponse struct {
	LocalDate            string          `json:"localDate"`
	LocationID           string          `json:"locationID"`
	BaseIn               decimal.Decimal `json:"baseIn"`
	BaseOut              decimal.Decimal `json:"baseOut"`
	OriginalIn           decimal.Decimal `json:"originalIn"`
	OriginalOut          decimal.Decimal `json:"originalOut"`
	OriginalCurrencyCode string          `json:"originalCurrencyCode"`
}

// CurrentBalanceResponse is a location's derived current balance.
type CurrentBalanceResponse struct {
	LocationID   string                     `json:"locationID"`
	Balance      decimal.Decimal            `json:"balance"`
	CurrencyCode string                     `json:"currencyCode"`
	ByCurrency   map[string]decimal.Decimal `json:"byCurrency,omitempty"`
}

// CashPositionResponse is the full matrix payload.
type CashPositionResponse struct {
	Locations []CashLocationResponse   `json:"locations"`
	Dates     []string                 `json:"dates"`
	Cells     []CashCellResponse       `json:"cells"`
	Balances  []CurrentBalanceResponse `json:"balances"`
}

// ToCashPositionResponse flattens the matrix maps into wire-friendly lists.
func ToCashPositionResponse(m *domain.CashPositionMatrix) CashPositionResponse {
	resp := CashPositionResponse{
		Locations: ToListCashLocationResponse(m.Locations),
		Dates:     m.Dates,
		Cells:     make([]CashCellResponse, 0, len(m.Flows)),
		Balances:  make([]CurrentBalanceResponse, 0, len(m.Balances)),
	}

	for key, s := range m.Flows {
		resp.Cells = append(resp.Cells, CashCellResponse{
			LocalDate:            key.LocalDate,
			LocationID:           key.LocationID,
			BaseIn:               s.BaseIn,
			BaseOut:              s.BaseOut,
			OriginalIn:           s.OriginalIn,
			OriginalOut:          s.OriginalOut,
			OriginalCurrencyCode: s.OriginalCurrencyCode,
		})
	}
	sort.Slice(resp.Cells, func(i, j int) bool {
		if resp.Cells[i].LocalDate != resp.Cells[j].LocalDate {
			return resp.Cells[i].LocalDate < resp.Cells[j].LocalDate
		}
		return resp.Cells[i].LocationID < resp.Cells[j].LocationID
	})

	for locationID, b := range m.Balances {
		resp.Balances = append(resp.Balances, CurrentBalanceResponse{
			LocationID:   locationID,
			Balance:      b.Balance,
			CurrencyCode: b.CurrencyCode,
			ByCurrency:   m.Breakdown[locationID],
		})
	}
	sort.Slice(resp.Balances, func(i, j int) bool {
		return resp.Balances[i].LocationID < resp.Balances[j].LocationID
	})

	return resp
}

// CashPositionDetailResponse is the drill-down payload for one cell.
type CashPositionDetailResponse struct {
	Report        *domain.DiscrepancyReport  `json:"report,omitempty"`
	LedgerRows    []domain.LedgerBalanceRow  `json:"ledgerRows"`
	Denominations []domain.DenominationGroup `json:"denominations"`
	JournalLines  []domain.JournalLine       `json:"journalLines"`

	JournalAvailable      bool `json:"journalAvailable"`
	RateAvailable         bool `json:"rateAvailable"`
	LedgerAvailable       bool `json:"ledgerAvailable"`
	DenominationAvailable bool `json:"denominationAvailable"`
}

// ToCashPositionDetailResponse converts the engine output contract to its wire shape.
func ToCashPositionDetailResponse(d *domain.CashPositionDetail) CashPositionDetailResponse {
	return CashPositionDetailResponse{
		Report:                d.Report,
		LedgerRows:            d.LedgerRows,
		Denominations:         d.Denominations,
		JournalLines:          d.JournalLines,
		JournalAvailable:      d.JournalAvailable,
		RateAvailable:         d.RateAvailable,
		LedgerAvailable:       d.LedgerAvailable,
		DenominationAvailable: d.DenominationAvailable,
	}
}

// MovementListResponse is a page of raw movements plus the cursor for the next page.
type MovementListResponse struct {
	Movements []domain.CashMovement `json:"movements"`
	NextToken string                `json:"nextToken,omitempty"`
}
