// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the login identity of a member. The credential fields never leave the server.
type Account struct {
	ID           string    // Opaque unique identifier (UUIDv7 string).
	DisplayName  string    // Mirrors Member.DisplayName; written together with it.
	Email        string    // Unique, stored lower-cased.
	PasswordHash []byte    // Argon2id output for (password, PasswordSalt).
	PasswordSalt []byte    // Per-account random salt.
	MainImageURL *string   // Mirrors Member.MainImageURL; mutated only by the photo lifecycle.
	CreatedAt    time.Time // Timestamp of registration.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// MainImage returns the main image URL or an empty string.
func (a *Account) MainImage() string {
	if a == nil || a.MainImageURL == nil {
		return ""
	}

	return *a.MainImageURL
}
