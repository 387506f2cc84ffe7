package entity

import "time"

// Member is the public profile of an account (one-to-one, same ID).
type Member struct {
	ID           string
	DisplayName  string
	Description  string
	City         string
	Country      string
	Gender       string
	DateOfBirth  time.Time
	MainImageURL *string // Equals the URL of exactly one of Photos, or nil.
	Created      time.Time
	LastActive   time.Time
	Version      int64 // Bumped on every main image change; used for optimistic checks.
	Photos       []*Photo
}

// MainImage returns the main image URL or an empty string.
func (m *Member) MainImage() string {
	if m == nil || m.MainImageURL == nil {
		return ""
	}

	return *m.MainImageURL
}

// HasMainImage reports whether the member currently has a main image.
func (m *Member) HasMainImage() bool {
	return m.MainImage() != ""
}

// IsMain reports whether the given photo is the member's main image.
func (m *Member) IsMain(photo *Photo) bool {
	return photo != nil && m.HasMainImage() && m.MainImage() == photo.URL
}

// MemberUpdate carries the optional fields of a profile edit; nil means unchanged.
type MemberUpdate struct {
	DisplayName *string
	Description *string
	City        *string
	Country     *string
}

// IsEmpty reports whether no field is set.
func (u MemberUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Description == nil && u.City == nil && u.Country == nil
}

// Apply copies the set fields onto the member.
func (u MemberUpdate) Apply(m *Member) {
	if u.DisplayName != nil {
		m.DisplayName = *u.DisplayName
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
	if u.City != nil {
		m.City = *u.City
	}
	if u.Country != nil {
		m.Country = *u.Country
	}
}
