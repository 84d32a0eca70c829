// Package service defines the interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

// PasswordHasher abstracts password hashing so the use case layer does not
// depend on a concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash and reports
	// whether they match.
	Check(password, hash string) bool
}
