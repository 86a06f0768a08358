package entities

import "time"

type Role string

const (
	RoleTenant Role = "tenant"
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleTenant, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

// Profile is the public part of a user account. ID is the identity provider subject.
type Profile struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
