// Package session holds the client's authenticated identity and mirrors it to durable storage.
package session

import (
	"time"
)

// Session is the client-held identity and its bearer token.
type Session struct {
	AccountID    string    `json:"accountId"`
	DisplayName  string    `json:"displayName"`
	MainImageURL *string   `json:"mainImageUrl"`
	Token        string    `json:"token"`
	TokenExpiry  time.Time `json:"tokenExpiry"`
}

// Valid reports whether the session carries the fields every caller relies on.
func (s *Session) Valid() bool {
	return s != nil && s.AccountID != "" && s.Token != ""
}

// Expired reports whether the token has expired at now. A zero expiry never expires.
func (s *Session) Expired(now time.Time) bool {
	return !s.TokenExpiry.IsZero() && !now.Before(s.TokenExpiry)
}

func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}

	c := *s
	if s.MainImageURL != nil {
		url := *s.MainImageURL
		c.MainImageURL = &url
	}

	return &c
}
