package gormdb

import (
	"context"

	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/repository"
	"dating/internal/errors"
	"dating/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// photoRepository implements repository.PhotoRepository using GORM.
type photoRepository struct {
	db *gorm.DB
}

// NewPhotoRepository is the constructor for photoRepository.
func NewPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (repo *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	photoM := fromPhotoDomain(photo)

	if err := repo.db.WithContext(ctx).Create(photoM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMemberNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create photo")
	}

	photo.ID = photoM.ID
	photo.CreatedAt = photoM.CreatedAt

	return nil
}

func (repo *photoRepository) FindOwned(ctx context.Context, memberID string, photoID int64) (*entity.Photo, error) {
	var photoM model.PhotoModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND member_id = ?", photoID, memberID).
		First(&photoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find photo")
	}

	return toPhotoDomain(&photoM), nil
}

func (repo *photoRepository) ListByMember(ctx context.Context, memberID string) ([]*entity.Photo, error) {
	var photoMs []model.PhotoModel
	if err := repo.db.WithContext(ctx).Where("member_id = ?", memberID).Order("id ASC").Find(&photoMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list photos")
	}

	photos := make([]*entity.Photo, 0, len(photoMs))
	for i := range photoMs {
		photos = append(photos, toPhotoDomain(&photoMs[i]))
	}

	return photos, nil
}

// FindLatestByMember orders by upload time, then by id to break ties within the same clock tick.
func (repo *photoRepository) FindLatestByMember(ctx context.Context, memberID string) (*entity.Photo, error) {
	var photoM model.PhotoModel
	err := repo.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC").
		Order("id DESC").
		First(&photoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPhotoNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest photo")
	}

	return toPhotoDomain(&photoM), nil
}

func (repo *photoRepository) Delete(ctx context.Context, memberID string, photoID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND member_id = ?", photoID, memberID).
		Delete(&model.PhotoModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete photo")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPhotoNotFound
	}

	return nil
}

func toPhotoDomain(m *model.PhotoModel) *entity.Photo {
	return &entity.Photo{
		ID:                m.ID,
		URL:               m.URL,
		ExternalStorageID: m.ExternalStorageID,
		MemberID:          m.MemberID,
		CreatedAt:         m.CreatedAt,
	}
}

func fromPhotoDomain(p *entity.Photo) *model.PhotoModel {
	return &model.PhotoModel{
		ID:                p.ID,
		URL:               p.URL,
		ExternalStorageID: p.ExternalStorageID,
		MemberID:          p.MemberID,
		CreatedAt:         p.CreatedAt,
	}
}
