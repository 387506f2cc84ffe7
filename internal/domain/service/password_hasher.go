// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password derivation and verification.
type PasswordHasher interface {
	// NewSalt returns a fresh random salt for one account.
	NewSalt() ([]byte, error)

	// Hash derives the stored hash from a plaintext password and salt.
	Hash(password string, salt []byte) ([]byte, error)

	// Check recomputes the hash and compares it in constant time.
	Check(password string, salt, hash []byte) bool
}
