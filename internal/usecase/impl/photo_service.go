package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"dating/config"
	deliverycontext "dating/internal/delivery/context"
	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/repository"
	"dating/internal/domain/service"
	"dating/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const (
	defaultMainImageRetries = 5
	defaultRetryBase        = 10 * time.Millisecond
)

// photoService implements the PhotoUsecase interface.
//
// Every decision about the main image happens inside one transaction that first locks
// the member row, and every main image write is conditional on the member version read
// under that lock. A lost race rolls back and is retried with exponential backoff.
type photoService struct {
	txManager      repository.TransactionManager
	blobStore      service.BlobStore
	logger         *slog.Logger
	maxUploadBytes int64
	allowedTypes   []string
	retries        uint64
	retryBase      time.Duration
}

// PhotoServiceParams holds dependencies for PhotoService, injected by Fx.
type PhotoServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BlobStore service.BlobStore
	Config    *config.Config
	Logger    *slog.Logger
}

// NewPhotoService is the constructor for photoService.
func NewPhotoService(params PhotoServiceParams) usecase.PhotoUsecase {
	return &photoService{
		txManager:      params.TxManager,
		blobStore:      params.BlobStore,
		logger:         params.Logger,
		maxUploadBytes: params.Config.Blob.MaxUploadBytes,
		allowedTypes:   params.Config.Blob.AllowedMIMETypes,
		retries:        defaultMainImageRetries,
		retryBase:      defaultRetryBase,
	}
}

func (srv *photoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadPhoto writes the blob first, outside the transaction. If the commit then fails
// the blob is removed again so no orphan object is left behind.
func (srv *photoService) UploadPhoto(ctx context.Context, accountID string, content []byte) (*entity.Photo, error) {
	contentType, err := srv.checkContent(content)
	if err != nil {
		return nil, err
	}

	// Unknown members fail before anything is stored.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := repoFactory.NewMemberRepository().FindByID(ctx, accountID)

		return err
	})
	if err != nil {
		return nil, mapMemberErr(err)
	}

	stored, err := srv.blobStore.Put(ctx, content, contentType)
	if err != nil {
		srv.log(ctx).Warn("Blob upload failed", slog.String("accountID", accountID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
	}

	storageID := stored.StorageID
	var photo *entity.Photo
	err = srv.withMainImageRetry(ctx, func(repoFactory repository.RepositoryFactory) error {
		member, err := repoFactory.NewMemberRepository().FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		photo = &entity.Photo{
			URL:               stored.URL,
			ExternalStorageID: &storageID,
			MemberID:          member.ID,
		}
		if err := repoFactory.NewPhotoRepository().Create(ctx, photo); err != nil {
			return errors.Wrap(err, "failed to create photo")
		}

		if member.HasMainImage() {
			return nil
		}

		return writeMainImage(ctx, repoFactory, member, &photo.URL)
	})
	if err != nil {
		if delErr := srv.blobStore.Delete(context.WithoutCancel(ctx), storageID); delErr != nil {
			srv.log(ctx).Error("Failed to remove orphaned blob", slog.String("storageID", storageID), slog.Any("error", delErr))
		}

		return nil, mapMemberErr(err)
	}

	srv.log(ctx).Info("Photo uploaded", slog.String("accountID", accountID), slog.Int64("photoID", photo.ID))

	return photo, nil
}

func (srv *photoService) SetMainPhoto(ctx context.Context, accountID string, photoID int64) error {
	err := srv.withMainImageRetry(ctx, func(repoFactory repository.RepositoryFactory) error {
		member, err := repoFactory.NewMemberRepository().FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		photo, err := repoFactory.NewPhotoRepository().FindOwned(ctx, accountID, photoID)
		if err != nil {
			return err
		}

		if member.IsMain(photo) {
			return domainerrors.ErrPhotoAlreadyMain
		}

		return writeMainImage(ctx, repoFactory, member, &photo.URL)
	})
	if err != nil {
		return mapMemberErr(err)
	}

	return nil
}

// DeletePhoto promotes the most recently uploaded remaining photo when the main photo is
// deleted, and clears the main image if the gallery becomes empty. The blob is deleted
// after the commit; a failure there is only logged.
func (srv *photoService) DeletePhoto(ctx context.Context, accountID string, photoID int64) error {
	var deleted *entity.Photo
	err := srv.withMainImageRetry(ctx, func(repoFactory repository.RepositoryFactory) error {
		photoRepo := repoFactory.NewPhotoRepository()

		member, err := repoFactory.NewMemberRepository().FindByIDForUpdate(ctx, accountID)
		if err != nil {
			return err
		}

		photo, err := photoRepo.FindOwned(ctx, accountID, photoID)
		if err != nil {
			return err
		}

		if err := photoRepo.Delete(ctx, accountID, photoID); err != nil {
			return err
		}
		deleted = photo

		if !member.IsMain(photo) {
			return nil
		}

		var fallback *string
		latest, err := photoRepo.FindLatestByMember(ctx, accountID)
		switch {
		case err == nil:
			fallback = &latest.URL
		case !errors.Is(err, repository.ErrPhotoNotFound):
			return errors.Wrap(err, "failed to find fallback photo")
		}

		return writeMainImage(ctx, repoFactory, member, fallback)
	})
	if err != nil {
		return mapMemberErr(err)
	}

	if deleted.ExternalStorageID != nil {
		if err := srv.blobStore.Delete(context.WithoutCancel(ctx), *deleted.ExternalStorageID); err != nil {
			srv.log(ctx).Error("Failed to delete photo blob",
				slog.String("storageID", *deleted.ExternalStorageID),
				slog.Any("error", err),
			)
		}
	}

	return nil
}

// withMainImageRetry runs fn in a transaction, retrying when a conditional main image write lost a race.
func (srv *photoService) withMainImageRetry(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	backoff := retry.WithMaxRetries(srv.retries, retry.NewExponential(srv.retryBase))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := srv.txManager.Execute(ctx, fn)
		if errors.Is(err, repository.ErrVersionConflict) {
			srv.log(ctx).Debug("Main image write conflicted, retrying")

			return retry.RetryableError(err)
		}

		return err
	})
	if errors.Is(err, repository.ErrVersionConflict) {
		return domainerrors.ErrConcurrentUpdate
	}

	return err
}

func (srv *photoService) checkContent(content []byte) (string, error) {
	if len(content) == 0 {
		return "", domainerrors.NewValidationError(map[string]string{"file": "is required"})
	}
	if srv.maxUploadBytes > 0 && int64(len(content)) > srv.maxUploadBytes {
		return "", domainerrors.NewValidationError(map[string]string{"file": "is too large"})
	}

	detected := mimetype.Detect(content)
	allowed := slices.ContainsFunc(srv.allowedTypes, func(mime string) bool {
		return detected.Is(mime)
	})
	if !allowed {
		return "", domainerrors.ErrUnsupportedMediaType.WithDetails("file: " + detected.String())
	}

	return detected.String(), nil
}

// writeMainImage updates both mirrors of the main image in the current transaction.
func writeMainImage(ctx context.Context, repoFactory repository.RepositoryFactory, member *entity.Member, url *string) error {
	if err := repoFactory.NewMemberRepository().SetMainImage(ctx, member.ID, url, member.Version); err != nil {
		return err
	}

	if err := repoFactory.NewAccountRepository().UpdateMainImage(ctx, member.ID, url); err != nil {
		return errors.Wrap(err, "failed to update account main image")
	}

	return nil
}

// mapMemberErr turns repository lookups into the public taxonomy. Ownership mismatches
// surface as not found.
func mapMemberErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrMemberNotFound), errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrMemberNotFound
	case errors.Is(err, repository.ErrPhotoNotFound):
		return domainerrors.ErrPhotoNotFound
	default:
		return err
	}
}
