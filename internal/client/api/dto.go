package api

import "time"

// RegisterRequest is the registration form. Only email, display name and password are required.
type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Gender      string `json:"gender,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	City        string `json:"city,omitempty"`
	Country     string `json:"country,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MemberUpdate carries the fields to change; nil fields are left alone.
type MemberUpdate struct {
	DisplayName *string `json:"displayName,omitempty"`
	Description *string `json:"description,omitempty"`
	City        *string `json:"city,omitempty"`
	Country     *string `json:"country,omitempty"`
}

type Photo struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

type Member struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"displayName"`
	Description  string    `json:"description"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age,omitempty"`
	MainImageURL *string   `json:"mainImageUrl"`
	Created      time.Time `json:"created"`
	LastActive   time.Time `json:"lastActive"`
	Photos       []*Photo  `json:"photos"`
}

type sessionPayload struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"displayName"`
	Email        string    `json:"email"`
	MainImageURL *string   `json:"mainImageUrl"`
	Token        string    `json:"token"`
	TokenExpiry  time.Time `json:"tokenExpiry"`
}

type dataEnvelope struct {
	Data any `json:"data"`
}
