// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"dating/internal/domain/entity"
	"dating/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account and its member profile.
type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
	Gender      string
	DateOfBirth time.Time
	City        string
	Country     string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SessionOutput is returned by register and login: the account (without credentials) and its token.
type SessionOutput struct {
	Account *entity.Account
	Token   *service.Token
}

// AccountUsecase defines credential and session operations.
type AccountUsecase interface {
	// Register creates the account and its member profile in one commit and issues a token.
	Register(ctx context.Context, input RegisterInput) (*SessionOutput, error)

	// Verify checks credentials. Unknown email and wrong password fail identically.
	Verify(ctx context.Context, email, password string) (*entity.Account, error)

	// Login verifies credentials and issues a token.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)
}
