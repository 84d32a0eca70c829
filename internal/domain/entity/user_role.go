// Package entity contains the core business objects of the project.
package entity

// UserRole represents the kind of account a UserPet is.
type UserRole string

const (
	// RoleOwner indicates a pet owner account.
	RoleOwner UserRole = "OWNER"
	// RoleVet indicates a veterinarian account.
	RoleVet UserRole = "VET"
	// RoleAdmin indicates an administrator account.
	RoleAdmin UserRole = "ADMIN"
)

// String returns the string representation of the UserRole.
func (r UserRole) String() string {
	return string(r)
}

// IsValid checks if the UserRole is a valid value.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleOwner, RoleVet, RoleAdmin:
		return true
	default:
		return false
	}
}
