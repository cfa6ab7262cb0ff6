// Package service defines interfaces for stateless domain logic of the development backend.
package service

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool
}
