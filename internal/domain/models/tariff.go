package models

import "time"

// Tariff holds the per-km rates for one calendar month (1-12, unique).
// The rate that applies depends on whether the route is over 1000 km.
type Tariff struct {
	ID                  int64     `json:"id"`
	Month               int       `json:"month"`
	PricePerKmUnder1000 float64   `json:"pricePerKmUnder1000"`
	PricePerKmOver1000  float64   `json:"pricePerKmOver1000"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
