// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"dating/internal/domain/entity"
)

var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")

	// ErrDuplicateEmail is returned when an account with the same email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// AccountRepository defines the operations for account persistence.
type AccountRepository interface {
	// Create persists a new account. Returns ErrDuplicateEmail on a unique violation.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by ID.
	FindByID(ctx context.Context, id string) (*entity.Account, error)

	// FindByEmail retrieves an account by its (case-insensitive) email.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// UpdateDisplayName rewrites the account's display name.
	UpdateDisplayName(ctx context.Context, id, displayName string) error

	// UpdateMainImage sets or clears the account's main image URL.
	UpdateMainImage(ctx context.Context, id string, url *string) error

	// Count returns the number of registered accounts.
	Count(ctx context.Context) (int64, error)
}
