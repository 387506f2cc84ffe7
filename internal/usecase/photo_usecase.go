package usecase

import (
	"context"

	"dating/internal/domain/entity"
)

// PhotoUsecase owns the rule that a member's main image is always one of its own photos, or none.
type PhotoUsecase interface {
	// UploadPhoto stores the bytes and adds a photo; the first photo becomes the main image.
	UploadPhoto(ctx context.Context, accountID string, content []byte) (*entity.Photo, error)

	// SetMainPhoto makes an owned photo the main image of both account and member.
	SetMainPhoto(ctx context.Context, accountID string, photoID int64) error

	// DeletePhoto removes an owned photo. Deleting the main photo promotes the most recent
	// remaining photo, or clears the main image when none remain.
	DeletePhoto(ctx context.Context, accountID string, photoID int64) error
}
