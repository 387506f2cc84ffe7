package handler

import (
	"time"

	"dating/internal/domain/entity"
	"dating/internal/usecase"
)

const dateLayout = "2006-01-02"

// SessionResponse is returned by register and login; clients persist it as their session.
type SessionResponse struct {
	ID           string    `json:"id"`
	DisplayName  string    `json:"displayName"`
	Email        string    `json:"email"`
	MainImageURL *string   `json:"mainImageUrl"`
	Token        string    `json:"token"`
	TokenExpiry  time.Time `json:"tokenExpiry"`
}

// PhotoResponse is a photo of a member gallery.
type PhotoResponse struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	IsMain bool   `json:"isMain"`
}

// MemberResponse is the public projection of a member.
type MemberResponse struct {
	ID           string           `json:"id"`
	DisplayName  string           `json:"displayName"`
	Description  string           `json:"description"`
	City         string           `json:"city"`
	Country      string           `json:"country"`
	Gender       string           `json:"gender"`
	Age          int              `json:"age,omitempty"`
	MainImageURL *string          `json:"mainImageUrl"`
	Created      time.Time        `json:"created"`
	LastActive   time.Time        `json:"lastActive"`
	Photos       []*PhotoResponse `json:"photos"`
}

func toSessionResponse(out *usecase.SessionOutput) *SessionResponse {
	return &SessionResponse{
		ID:           out.Account.ID,
		DisplayName:  out.Account.DisplayName,
		Email:        out.Account.Email,
		MainImageURL: out.Account.MainImageURL,
		Token:        out.Token.Value,
		TokenExpiry:  out.Token.ExpiresAt,
	}
}

func toPhotoResponse(photo *entity.Photo, isMain bool) *PhotoResponse {
	return &PhotoResponse{
		ID:     photo.ID,
		URL:    photo.URL,
		IsMain: isMain,
	}
}

func toMemberResponse(member *entity.Member, now time.Time) *MemberResponse {
	photos := make([]*PhotoResponse, 0, len(member.Photos))
	for _, photo := range member.Photos {
		photos = append(photos, toPhotoResponse(photo, member.IsMain(photo)))
	}

	return &MemberResponse{
		ID:           member.ID,
		DisplayName:  member.DisplayName,
		Description:  member.Description,
		City:         member.City,
		Country:      member.Country,
		Gender:       member.Gender,
		Age:          ageAt(member.DateOfBirth, now),
		MainImageURL: member.MainImageURL,
		Created:      member.Created,
		LastActive:   member.LastActive,
		Photos:       photos,
	}
}

// ageAt returns whole years between dob and now, or 0 when dob is unknown.
func ageAt(dob, now time.Time) int {
	if dob.IsZero() {
		return 0
	}

	age := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		age--
	}

	return max(age, 0)
}
