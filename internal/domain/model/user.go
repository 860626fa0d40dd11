package model

import "time"

// Role separates buyer accounts from seller accounts.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// User represents a registered trading company account.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Company      string
	Role         Role
	CreatedAt    time.Time
}
