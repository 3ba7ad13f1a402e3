package models

import "time"

// Expense is money spent from the treasury, optionally tied to an activity.
type Expense struct {
	ID          string      `json:"id"`
	Name        string      `json:"name" validate:"required"`
	Amount      float64     `json:"amount" validate:"gte=0"`
	Date        time.Time   `json:"date"`
	ActivityID  *string     `json:"activity_id,omitempty" validate:"omitempty,uuid"`
	Description string      `json:"description"`
	Invoice     *Attachment `json:"invoice,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`

	ActivityName string `json:"activity_name,omitempty"` // joined for JSON responses
}
