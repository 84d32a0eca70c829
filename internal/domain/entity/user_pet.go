// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserPet is an account in the system: a pet owner, a veterinarian, or an
// administrator. The role field decides which. Identity is defined solely by
// the datastore-assigned ID; a zero ID marks a record that has not been
// persisted yet.
type UserPet struct {
	ID           int64      // Surrogate identifier assigned by the datastore on insert.
	Name         string     // Display name, required, at most 100 characters.
	Email        string     // Login identifier, required and unique, at most 100 characters.
	PasswordHash string     // bcrypt hash of the account password. Never leaves the service layer.
	Phone        *string    // Optional contact phone, at most 20 characters.
	Address      *string    // Optional postal address.
	Role         UserRole   // Required account role (owner, vet or admin).
	Avatar       *string    // Optional avatar URL.
	CreatedAt    *time.Time // Set by the datastore when the row is inserted.
}
