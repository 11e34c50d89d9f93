package models

import "time"

// UserRole represents the role of a user
type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAgency  UserRole = "agency"
	RoleVisitor UserRole = "visitor"
)

// Valid reports whether the role is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleAgency, RoleVisitor:
		return true
	}
	return false
}

// User represents a user in the system. Identity is immutable after creation;
// the role determines authorization.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
