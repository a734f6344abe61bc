package domain

import "time"

// AuditFields holds standard audit information for persisted entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// LocalDateLayout is the wire format for local calendar dates.
// Movements are bucketed by local day, never by raw timestamp; the
// timezone conversion happens in the data provider, not here.
const LocalDateLayout = "2006-01-02"
