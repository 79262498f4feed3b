package models

import "time"

// Roles recognised across the swap network.
const (
	RoleDriver   = "driver"
	RoleOperator = "operator"
)

// User is a driver or station operator account.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	return role == RoleDriver || role == RoleOperator
}
