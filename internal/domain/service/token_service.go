package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
// The account ID travels in the registered "sub" claim.
type Claims struct {
	DisplayName string `json:"name"`
	jwt.RegisteredClaims
}

// AccountID returns the subject of the token.
func (c *Claims) AccountID() string {
	return c.Subject
}

// Token is a signed access token and its expiry.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// Issue creates a signed token for the account.
	Issue(accountID, displayName string) (*Token, error)

	// Validate verifies signature and expiry and returns the claims.
	Validate(tokenString string) (*Claims, error)
}
