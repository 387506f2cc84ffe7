package gormdb

import (
	"context"
	"testing"
	"time"

	"dating/internal/domain/entity"
	"dating/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email string) *entity.Account {
	t.Helper()
	ctx := context.Background()

	account := &entity.Account{
		ID:           uuid.NewString(),
		DisplayName:  "alice",
		Email:        email,
		PasswordHash: []byte("hash"),
		PasswordSalt: []byte("salt"),
	}
	require.NoError(t, NewAccountRepository(db).Create(ctx, account))
	require.NoError(t, NewMemberRepository(db).Create(ctx, &entity.Member{
		ID:          account.ID,
		DisplayName: account.DisplayName,
		City:        "Paris",
		LastActive:  time.Now(),
	}))

	return account
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewAccountRepository(db)

	account := seedAccount(t, db, "Alice@X.com")

	byEmail, err := repo.FindByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byEmail.ID)
	assert.Equal(t, "alice@x.com", byEmail.Email)
	assert.Equal(t, []byte("hash"), byEmail.PasswordHash)
	assert.Nil(t, byEmail.MainImageURL)

	byID, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, byEmail.Email, byID.Email)

	_, err = repo.FindByEmail(ctx, "bob@x.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	seedAccount(t, db, "alice@x.com")

	err := NewAccountRepository(db).Create(ctx, &entity.Account{
		ID:           uuid.NewString(),
		DisplayName:  "other",
		Email:        "ALICE@x.com",
		PasswordHash: []byte("h"),
		PasswordSalt: []byte("s"),
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestMemberRepository_SetMainImageVersioning(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	account := seedAccount(t, db, "alice@x.com")
	repo := NewMemberRepository(db)

	url := "https://cdn/a.jpg"
	require.NoError(t, repo.SetMainImage(ctx, account.ID, &url, 0))

	member, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, url, member.MainImage())
	assert.EqualValues(t, 1, member.Version)

	// Stale version loses.
	other := "https://cdn/b.jpg"
	assert.ErrorIs(t, repo.SetMainImage(ctx, account.ID, &other, 0), repository.ErrVersionConflict)

	require.NoError(t, repo.SetMainImage(ctx, account.ID, nil, 1))
	member, err = repo.FindByIDForUpdate(ctx, account.ID)
	require.NoError(t, err)
	assert.Nil(t, member.MainImageURL)
	assert.EqualValues(t, 2, member.Version)
}

func TestMemberRepository_UpdateListAndTouch(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	alice := seedAccount(t, db, "alice@x.com")
	bob := seedAccount(t, db, "bob@x.com")
	repo := NewMemberRepository(db)

	member, err := repo.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	member.Description = "hello"
	member.Country = "France"
	require.NoError(t, repo.UpdateProfile(ctx, member))

	later := time.Now().Add(time.Hour)
	require.NoError(t, repo.TouchLastActive(ctx, bob.ID, later))

	members, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, bob.ID, members[0].ID)
	assert.Equal(t, "hello", members[1].Description)
	assert.Equal(t, "France", members[1].Country)

	_, err = repo.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
	assert.ErrorIs(t, repo.TouchLastActive(ctx, "missing", later), repository.ErrMemberNotFound)
}

func TestPhotoRepository_Ownership(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	alice := seedAccount(t, db, "alice@x.com")
	bob := seedAccount(t, db, "bob@x.com")
	repo := NewPhotoRepository(db)

	first := &entity.Photo{URL: "https://cdn/1.jpg", MemberID: alice.ID}
	second := &entity.Photo{URL: "https://cdn/2.jpg", MemberID: alice.ID}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.NotZero(t, first.ID)
	assert.Greater(t, second.ID, first.ID)

	found, err := repo.FindOwned(ctx, alice.ID, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.URL, found.URL)

	_, err = repo.FindOwned(ctx, bob.ID, first.ID)
	assert.ErrorIs(t, err, repository.ErrPhotoNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, bob.ID, first.ID), repository.ErrPhotoNotFound)

	latest, err := repo.FindLatestByMember(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, second.ID, latest.ID)

	require.NoError(t, repo.Delete(ctx, alice.ID, second.ID))
	photos, err := repo.ListByMember(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, first.ID, photos[0].ID)

	_, err = repo.FindLatestByMember(ctx, bob.ID)
	assert.ErrorIs(t, err, repository.ErrPhotoNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	alice := seedAccount(t, db, "alice@x.com")
	txManager := NewTransactionManager(db)

	url := "https://cdn/a.jpg"
	err := txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewAccountRepository().UpdateMainImage(ctx, alice.ID, &url); err != nil {
			return err
		}

		return repository.ErrVersionConflict
	})
	assert.ErrorIs(t, err, repository.ErrVersionConflict)

	account, err := NewAccountRepository(db).FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, account.MainImageURL)

	require.NoError(t, txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return factory.NewAccountRepository().UpdateMainImage(ctx, alice.ID, &url)
	}))
	account, err = NewAccountRepository(db).FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, url, account.MainImage())
}
