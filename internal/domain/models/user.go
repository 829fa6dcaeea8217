package models

import "time"

// User is a customer identified by a unique phone number.
type User struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Orders is populated only on profile lookups.
	Orders []Order `json:"orders,omitempty"`
}
