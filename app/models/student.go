package models

import "time"

// Student is a member of the class the treasury collects fees from.
type Student struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name" validate:"required"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
