package dto

import (
	"github.com/storebooks/cash_position_app/internal/core/domain"
)

// CashLocationResponse defines the structure for API responses containing location details.
type CashLocationResponse struct {
	LocationID   string `json:"locationID"`
	Name         string `json:"name"`
	CurrencyCode string `json:"currencyCode"`
	Kind         string `json:"kind"`
	StoreID      string `json:"storeID,omitempty"`
	StoreName    string `json:"storeName,omitempty"`
}

// ToCashLocationResponse converts a domain.CashLocation to CashLocationResponse DTO
func ToCashLocationResponse(l *domain.CashLocation) CashLocationResponse {
	return CashLocationResponse{
		LocationID:   l.LocationID,
		Name:         l.Name,
		CurrencyCode: l.CurrencyCode,
		Kind:         string(l.Kind),
		StoreID:      l.StoreID,
		StoreName:    l.StoreName,
	}
}

// ToListCashLocationResponse converts a slice of domain.CashLocation to DTOs.
func ToListCashLocationResponse(locations []domain.CashLocation) []CashLocationResponse {
	responses := make([]CashLocationResponse, len(locations))
	for i := range locations {
		responses[i] = ToCashLocationResponse(&locations[i])
	}
	return responses
}
