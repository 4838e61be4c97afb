package models

import (
	"time"
)

// User represents a platform user
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	SchoolID string `json:"school_id,omitempty"`
	// Permissions is a legacy free-form capability set, still honored by
	// the permission resolver before any role-based rule runs.
	Permissions []string  `json:"permissions,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Global user roles
const (
	RoleAdmin       = "admin"
	RoleProducer    = "producer"
	RoleSchoolAdmin = "school_admin"
	RoleTechnician  = "technician"
	RoleParticipant = "participant"
)

// ValidRoles defines allowed user roles
var ValidRoles = map[string]bool{
	RoleAdmin:       true,
	RoleProducer:    true,
	RoleSchoolAdmin: true,
	RoleTechnician:  true,
	RoleParticipant: true,
}

// HasPermission reports whether the legacy capability set contains the
// given permission string.
func (u *User) HasPermission(permission string) bool {
	for _, p := range u.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}
