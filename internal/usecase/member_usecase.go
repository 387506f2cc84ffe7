package usecase

import (
	"context"

	"dating/internal/domain/entity"
)

// MemberUsecase defines member browsing and profile editing.
type MemberUsecase interface {
	ListMembers(ctx context.Context) ([]*entity.Member, error)
	GetMember(ctx context.Context, id string) (*entity.Member, error)
	GetMemberPhotos(ctx context.Context, id string) ([]*entity.Photo, error)

	// UpdateMember applies the set fields to the caller's profile. A display name change
	// is written to the account in the same commit.
	UpdateMember(ctx context.Context, accountID string, update entity.MemberUpdate) error

	// TouchLastActive records that the member made an authenticated request.
	TouchLastActive(ctx context.Context, accountID string) error
}
