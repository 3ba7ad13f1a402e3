package models

import "time"

// User roles. Admin is the treasurer account; guardians get read-mostly access.
const (
	RoleAdmin    = "admin"
	RoleGuardian = "guardian"
)

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username" validate:"required,min=3"`
	Password    string    `json:"-"`
	DisplayName string    `json:"display_name" validate:"required"`
	Role        string    `json:"role" validate:"required,oneof=admin guardian"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the treasurer role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
