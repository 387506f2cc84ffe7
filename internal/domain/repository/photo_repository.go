package repository

import (
	"context"
	"errors"

	"dating/internal/domain/entity"
)

// ErrPhotoNotFound is returned when no photo matches the lookup, including ownership mismatches.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository defines the operations for photo persistence.
type PhotoRepository interface {
	// Create persists a new photo and assigns its ID.
	Create(ctx context.Context, photo *entity.Photo) error

	// FindOwned retrieves a photo only if it belongs to memberID.
	FindOwned(ctx context.Context, memberID string, photoID int64) (*entity.Photo, error)

	// ListByMember returns the member's photos, oldest first.
	ListByMember(ctx context.Context, memberID string) ([]*entity.Photo, error)

	// FindLatestByMember returns the most recently uploaded photo, or ErrPhotoNotFound.
	FindLatestByMember(ctx context.Context, memberID string) (*entity.Photo, error)

	// Delete removes a photo owned by memberID.
	Delete(ctx context.Context, memberID string, photoID int64) error
}
