package models

import (
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
	PaymentManual PaymentStatus = "manual"
)

// ParsePaymentStatus normalizes and validates a payment status value.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentUnpaid:
		return PaymentUnpaid, true
	case PaymentPaid:
		return PaymentPaid, true
	case PaymentManual:
		return PaymentManual, true
	default:
		return "", false
	}
}

// Order is a persisted quote bound to a user. Price fields are a snapshot
// taken at creation time and are never recomputed, so historical orders keep
// the tariff and distance that applied when they were placed.
type Order struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	CarBrand   string `json:"carBrand"`
	CityFromID int64  `json:"cityFromId"`
	CityToID   int64  `json:"cityToId"`

	StartDate            string        `json:"startDate"`
	DistanceKm           int           `json:"distance"`
	AppliedTariff        float64       `json:"appliedTariff"`
	IsFixedRoute         bool          `json:"isFixedRoute"`
	TransportPrice       float64       `json:"transportPrice"`
	InsurancePrice       float64       `json:"insurancePrice"`
	TotalPrice           float64       `json:"totalPrice"`
	DurationHours        int           `json:"durationHours"`
	DurationDays         int           `json:"durationDays"`
	EstimatedArrivalDate string        `json:"estimatedArrivalDate"`
	PaymentStatus        PaymentStatus `json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Resolved display names, populated on detail/list reads.
	UserFullName string `json:"userFullName,omitempty"`
	UserPhone    string `json:"userPhone,omitempty"`
	CityFromName string `json:"cityFromName,omitempty"`
	CityToName   string `json:"cityToName,omitempty"`
}
