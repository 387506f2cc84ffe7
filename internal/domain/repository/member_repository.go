package repository

import (
	"context"
	"errors"
	"time"

	"dating/internal/domain/entity"
)

var (
	// ErrMemberNotFound is returned when no member matches the lookup.
	ErrMemberNotFound = errors.New("member not found")

	// ErrVersionConflict is returned when a conditional write lost a race.
	ErrVersionConflict = errors.New("member was modified concurrently")
)

// MemberRepository defines the operations for member profile persistence.
type MemberRepository interface {
	// Create persists a new member.
	Create(ctx context.Context, member *entity.Member) error

	// FindByID retrieves a member with its photos.
	FindByID(ctx context.Context, id string) (*entity.Member, error)

	// FindByIDForUpdate retrieves a member and locks its row until the transaction ends
	// on backends that support row locks.
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Member, error)

	// List returns all members with their photos, ordered by last activity.
	List(ctx context.Context) ([]*entity.Member, error)

	// UpdateProfile persists the editable profile fields.
	UpdateProfile(ctx context.Context, member *entity.Member) error

	// SetMainImage sets or clears the main image if the stored version still equals
	// expectedVersion, bumping it. Returns ErrVersionConflict otherwise.
	SetMainImage(ctx context.Context, id string, url *string, expectedVersion int64) error

	// TouchLastActive records activity for the member.
	TouchLastActive(ctx context.Context, id string, at time.Time) error
}
