package gormdb

import (
	"context"
	"time"

	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/repository"
	"dating/internal/errors"
	"dating/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// memberRepository implements repository.MemberRepository using GORM.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	// Omit associations: the account row is written by the account repository.
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(memberM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create member")
	}

	member.Created = memberM.CreatedAt

	return nil
}

func (repo *memberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	return repo.find(ctx, repo.db.WithContext(ctx), id)
}

func (repo *memberRepository) FindByIDForUpdate(ctx context.Context, id string) (*entity.Member, error) {
	query := repo.db.WithContext(ctx)
	// SQLite has no row locks; its single writer already serializes the transaction.
	if isPostgres(repo.db) {
		query = query.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	return repo.find(ctx, query, id)
}

func (repo *memberRepository) find(_ context.Context, query *gorm.DB, id string) (*entity.Member, error) {
	var memberM model.MemberModel
	err := query.
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.id ASC")
		}).
		Where("members.id = ?", id).
		First(&memberM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return toMemberDomain(&memberM), nil
}

func (repo *memberRepository) List(ctx context.Context) ([]*entity.Member, error) {
	var memberMs []model.MemberModel
	err := repo.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("photos.id ASC")
		}).
		Order("last_active DESC").
		Order("id ASC").
		Find(&memberMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	members := make([]*entity.Member, 0, len(memberMs))
	for i := range memberMs {
		members = append(members, toMemberDomain(&memberMs[i]))
	}

	return members, nil
}

func (repo *memberRepository) UpdateProfile(ctx context.Context, member *entity.Member) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"display_name": member.DisplayName,
			"description":  member.Description,
			"city":         member.City,
			"country":      member.Country,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func (repo *memberRepository) SetMainImage(ctx context.Context, id string, url *string, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]any{
			"main_image_url": url,
			"version":        gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set main image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVersionConflict
	}

	return nil
}

func (repo *memberRepository) TouchLastActive(ctx context.Context, id string, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", id).
		Update("last_active", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch last active")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

func toMemberDomain(m *model.MemberModel) *entity.Member {
	member := &entity.Member{
		ID:           m.ID,
		DisplayName:  m.DisplayName,
		Description:  m.Description,
		City:         m.City,
		Country:      m.Country,
		Gender:       m.Gender,
		DateOfBirth:  m.DateOfBirth,
		MainImageURL: m.MainImageURL,
		Created:      m.CreatedAt,
		LastActive:   m.LastActive,
		Version:      m.Version,
		Photos:       make([]*entity.Photo, 0, len(m.Photos)),
	}
	for i := range m.Photos {
		member.Photos = append(member.Photos, toPhotoDomain(&m.Photos[i]))
	}

	return member
}

func fromMemberDomain(m *entity.Member) *model.MemberModel {
	return &model.MemberModel{
		ID:           m.ID,
		DisplayName:  m.DisplayName,
		Description:  m.Description,
		City:         m.City,
		Country:      m.Country,
		Gender:       m.Gender,
		DateOfBirth:  m.DateOfBirth,
		MainImageURL: m.MainImageURL,
		Version:      m.Version,
		CreatedAt:    m.Created,
		LastActive:   m.LastActive,
	}
}
