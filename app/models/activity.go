package models

import "time"

// Activity is an event organized for the class. When RequiresFee is false the
// fee fields are not meaningful and the activity is excluded from debt reports.
type Activity struct {
	ID              string    `json:"id"`
	Name            string    `json:"name" validate:"required"`
	Date            time.Time `json:"date" validate:"required"`
	RequiresFee     bool      `json:"requires_fee"`
	FeePerStudent   float64   `json:"fee_per_student" validate:"gte=0"`
	TotalExpected   float64   `json:"total_expected" validate:"gte=0"`
	PaymentDeadline time.Time `json:"payment_deadline"`
	Description     string    `json:"description"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
