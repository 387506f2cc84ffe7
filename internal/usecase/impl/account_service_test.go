package impl

import (
	"context"
	"testing"
	"time"

	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/repository"
	"dating/internal/domain/service"
	mockRepo "dating/internal/mocks/repository"
	mockService "dating/internal/mocks/service"
	"dating/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)

	svc := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      svc,
		txManager:    txManager,
		accountRepo:  accountRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func validRegisterInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:       " Alice@X.com ",
		DisplayName: "alice",
		Password:    "pw1234",
		Gender:      "female",
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		City:        "Paris",
		Country:     "France",
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	salt := []byte("salt-salt-salt-1")
	hash := []byte("derived-hash")
	fx.hasher.EXPECT().NewSalt().Return(salt, nil)
	fx.hasher.EXPECT().Hash("pw1234", salt).Return(hash, nil)

	var createdAccount *entity.Account
	var createdMember *entity.Member
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockMemberRepo := mockRepo.NewMockMemberRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockFactory.EXPECT().NewMemberRepository().Return(mockMemberRepo)
			mockAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(_ context.Context, account *entity.Account) { createdAccount = account }).
				Return(nil)
			mockMemberRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Member")).
				Run(func(_ context.Context, member *entity.Member) { createdMember = member }).
				Return(nil)

			return fn(mockFactory)
		})

	token := &service.Token{Value: "signed", ExpiresAt: time.Now().Add(time.Hour)}
	fx.tokenService.EXPECT().Issue(mock.AnythingOfType("string"), "alice").Return(token, nil)

	out, err := fx.service.Register(ctx, validRegisterInput())

	require.NoError(t, err)
	require.NotNil(t, createdAccount)
	require.NotNil(t, createdMember)
	assert.Equal(t, "alice@x.com", createdAccount.Email)
	assert.Equal(t, hash, createdAccount.PasswordHash)
	assert.Equal(t, salt, createdAccount.PasswordSalt)
	assert.Equal(t, createdAccount.ID, createdMember.ID)
	assert.Equal(t, "Paris", createdMember.City)
	assert.Equal(t, "female", createdMember.Gender)

	assert.Equal(t, token, out.Token)
	assert.Equal(t, createdAccount.ID, out.Account.ID)
	assert.Nil(t, out.Account.PasswordHash)
	assert.Nil(t, out.Account.PasswordSalt)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().NewSalt().Return([]byte("salt"), nil)
	fx.hasher.EXPECT().Hash("pw1234", []byte("salt")).Return([]byte("hash"), nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().NewAccountRepository().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	out, err := fx.service.Register(ctx, validRegisterInput())

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAccountService_Register_ValidationFailed(t *testing.T) {
	fx := createTestAccountService(t)

	input := validRegisterInput()
	input.Email = "not-an-email"
	input.Password = "pw"
	input.DisplayName = "  "

	out, err := fx.service.Register(context.Background(), input)

	assert.Nil(t, out)
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Fields(), "email")
	assert.Contains(t, validationErr.Fields(), "password")
	assert.Contains(t, validationErr.Fields(), "displayName")
}

func TestAccountService_Login(t *testing.T) {
	salt := []byte("salt")
	hash := []byte("hash")
	account := &entity.Account{ID: "acc-1", DisplayName: "alice", Email: "alice@x.com", PasswordHash: hash, PasswordSalt: salt}

	t.Run("success", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(account, nil)
		fx.hasher.EXPECT().Check("pw1234", salt, hash).Return(true)
		fx.tokenService.EXPECT().Issue("acc-1", "alice").Return(&service.Token{Value: "tok"}, nil)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ALICE@x.com", Password: "pw1234"})

		require.NoError(t, err)
		assert.Equal(t, "tok", out.Token.Value)
		assert.Nil(t, out.Account.PasswordHash)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(account, nil)
		fx.hasher.EXPECT().Check("nope", salt, hash).Return(false)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@x.com", Password: "nope"})

		assert.Nil(t, out)
		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	})

	t.Run("unknown email still hashes", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "bob@x.com").Return(nil, repository.ErrAccountNotFound)
		fx.hasher.EXPECT().Check("pw1234", mock.Anything, mock.Anything).Return(false)

		out, err := fx.service.Login(ctx, usecase.LoginInput{Email: "bob@x.com", Password: "pw1234"})

		assert.Nil(t, out)
		assert.Equal(t, domainerrors.ErrInvalidCredentials, err)
	})

	t.Run("token failure", func(t *testing.T) {
		fx := createTestAccountService(t)
		ctx := context.Background()

		fx.accountRepo.EXPECT().FindByEmail(ctx, "alice@x.com").Return(account, nil)
		fx.hasher.EXPECT().Check("pw1234", salt, hash).Return(true)
		fx.tokenService.EXPECT().Issue("acc-1", "alice").Return(nil, errors.New("boom"))

		_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "alice@x.com", Password: "pw1234"})

		assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
	})
}

func TestAccountService_CredentialHashing(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	alice, err := s.accounts.Register(ctx, usecase.RegisterInput{Email: "alice@x.com", DisplayName: "alice", Password: "pw1234"})
	require.NoError(t, err)
	bob, err := s.accounts.Register(ctx, usecase.RegisterInput{Email: "bob@x.com", DisplayName: "bob", Password: "pw1234"})
	require.NoError(t, err)
	assert.NotEmpty(t, alice.Token.Value)

	storedAlice, err := s.repos.NewAccountRepository().FindByID(ctx, alice.Account.ID)
	require.NoError(t, err)
	storedBob, err := s.repos.NewAccountRepository().FindByID(ctx, bob.Account.ID)
	require.NoError(t, err)
	assert.NotEqual(t, storedAlice.PasswordSalt, storedBob.PasswordSalt)
	assert.NotEqual(t, storedAlice.PasswordHash, storedBob.PasswordHash)

	verified, err := s.accounts.Verify(ctx, "alice@x.com", "pw1234")
	require.NoError(t, err)
	assert.Equal(t, alice.Account.ID, verified.ID)

	_, wrongPasswordErr := s.accounts.Verify(ctx, "alice@x.com", "pw12345")
	_, unknownEmailErr := s.accounts.Verify(ctx, "carol@x.com", "pw1234")
	assert.Equal(t, domainerrors.ErrInvalidCredentials, wrongPasswordErr)
	assert.Equal(t, wrongPasswordErr, unknownEmailErr)

	_, err = s.accounts.Register(ctx, usecase.RegisterInput{Email: "ALICE@x.com", DisplayName: "again", Password: "pw1234"})
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))

	member, err := s.members.GetMember(ctx, alice.Account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", member.DisplayName)
}
