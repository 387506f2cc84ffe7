// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	deliverycontext "dating/internal/delivery/context"
	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/repository"
	"dating/internal/domain/service"
	"dating/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 4

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	// Hashed against when the email is unknown so both failure paths cost the same.
	dummySalt []byte
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
		dummySalt:    []byte("dating-dummy-salt"),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and member rows in one transaction, then issues a token.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SessionOutput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.DisplayName = strings.TrimSpace(input.DisplayName)
	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	salt, err := srv.hasher.NewSalt()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	hash, err := srv.hasher.Hash(input.Password, salt)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate account id")
	}

	now := srv.now()
	account := &entity.Account{
		ID:           id.String(),
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		PasswordHash: hash,
		PasswordSalt: salt,
	}
	member := &entity.Member{
		ID:          account.ID,
		DisplayName: input.DisplayName,
		Gender:      input.Gender,
		DateOfBirth: input.DateOfBirth,
		City:        input.City,
		Country:     input.Country,
		LastActive:  now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAccountRepository().Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailTaken.WithDetails("email: Email is already registered")
			}

			return errors.Wrap(err, "failed to create account")
		}

		if err := repoFactory.NewMemberRepository().Create(ctx, member); err != nil {
			return errors.Wrap(err, "failed to create member")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register account")
	}

	srv.log(ctx).Info("Account registered", slog.String("accountID", account.ID))

	return srv.issueSession(account)
}

// Verify recomputes the hash for the stored salt. Unknown emails still pay for one hash.
func (srv *accountService) Verify(ctx context.Context, email, password string) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.hasher.Check(password, srv.dummySalt, srv.dummySalt)

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(password, account.PasswordSalt, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return account, nil
}

// Login verifies credentials and issues a token.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	account, err := srv.Verify(ctx, input.Email, input.Password)
	if err != nil {
		srv.log(ctx).Info("Login rejected", slog.String("email", input.Email))

		return nil, err
	}

	return srv.issueSession(account)
}

func (srv *accountService) issueSession(account *entity.Account) (*usecase.SessionOutput, error) {
	token, err := srv.tokenService.Issue(account.ID, account.DisplayName)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.SessionOutput{
		Account: withoutCredentials(account),
		Token:   token,
	}, nil
}

func withoutCredentials(account *entity.Account) *entity.Account {
	clean := *account
	clean.PasswordHash = nil
	clean.PasswordSalt = nil

	return &clean
}

func validateRegistration(input usecase.RegisterInput) error {
	fields := map[string]string{}
	if _, err := mail.ParseAddress(input.Email); err != nil || input.Email == "" {
		fields["email"] = "must be a valid email address"
	}
	if input.DisplayName == "" {
		fields["displayName"] = "is required"
	}
	if len(input.Password) < minPasswordLength {
		fields["password"] = "must be at least 4 characters"
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields)
	}

	return nil
}
