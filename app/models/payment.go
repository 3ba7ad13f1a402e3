package models

import "time"

// Payment records money received from a student toward an activity's fee.
// Several partial payments may accumulate toward the same (student, activity)
// pair; there is no uniqueness constraint.
type Payment struct {
	ID         string      `json:"id"`
	StudentID  string      `json:"student_id" validate:"required,uuid"`
	ActivityID string      `json:"activity_id" validate:"required,uuid"`
	Amount     float64     `json:"amount" validate:"gte=0"`
	PaidAt     time.Time   `json:"paid_at"`
	Notes      string      `json:"notes"`
	Receipt    *Attachment `json:"receipt,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Joined for JSON responses
	StudentName   string  `json:"student_name,omitempty"`
	ActivityName  string  `json:"activity_name,omitempty"`
	FeePerStudent float64 `json:"fee_per_student,omitempty"`
}
