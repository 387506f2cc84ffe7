package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "dating/internal/delivery/context"
	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/repository"
	"dating/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	txManager  repository.TransactionManager
	memberRepo repository.MemberRepository
	photoRepo  repository.PhotoRepository
	logger     *slog.Logger
	now        func() time.Time
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.MemberRepository
	PhotoRepo  repository.PhotoRepository
	Logger     *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		photoRepo:  params.PhotoRepo,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *memberService) ListMembers(ctx context.Context) ([]*entity.Member, error) {
	members, err := srv.memberRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	return members, nil
}

func (srv *memberService) GetMember(ctx context.Context, id string) (*entity.Member, error) {
	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to get member")
	}

	return member, nil
}

// GetMemberPhotos returns an empty list for unknown members.
func (srv *memberService) GetMemberPhotos(ctx context.Context, id string) ([]*entity.Photo, error) {
	photos, err := srv.photoRepo.ListByMember(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get member photos")
	}

	return photos, nil
}

// UpdateMember fails with ErrMemberUpdateFailed when nothing would change.
func (srv *memberService) UpdateMember(ctx context.Context, accountID string, update entity.MemberUpdate) error {
	if update.DisplayName != nil {
		trimmed := strings.TrimSpace(*update.DisplayName)
		if trimmed == "" {
			return domainerrors.NewValidationError(map[string]string{"displayName": "must not be empty"})
		}
		update.DisplayName = &trimmed
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.NewMemberRepository()

		member, err := memberRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrMemberNotFound) {
				return domainerrors.ErrMemberUpdateFailed.WithDetails("could not get member")
			}

			return errors.Wrap(err, "failed to find member")
		}

		before := *member
		update.Apply(member)
		if before.DisplayName == member.DisplayName && before.Description == member.Description &&
			before.City == member.City && before.Country == member.Country {
			return domainerrors.ErrMemberUpdateFailed
		}

		if err := memberRepo.UpdateProfile(ctx, member); err != nil {
			return errors.Wrap(err, "failed to update member")
		}

		if before.DisplayName != member.DisplayName {
			if err := repoFactory.NewAccountRepository().UpdateDisplayName(ctx, accountID, member.DisplayName); err != nil {
				return errors.Wrap(err, "failed to update account display name")
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to update member")
	}

	srv.log(ctx).Debug("Member updated", slog.String("accountID", accountID))

	return nil
}

func (srv *memberService) TouchLastActive(ctx context.Context, accountID string) error {
	if err := srv.memberRepo.TouchLastActive(ctx, accountID, srv.now()); err != nil {
		return errors.Wrap(err, "failed to touch last active")
	}

	return nil
}
