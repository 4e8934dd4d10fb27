package impl

import (
	"context"
	"testing"
	"time"

	"tracer/internal/domain/entity"
	domainerrors "tracer/internal/domain/errors"
	"tracer/internal/domain/repository"
	"tracer/internal/domain/service"
	mockRepo "tracer/internal/mocks/repository"
	"tracer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Grace Park",
		Email:    "Grace.Park@Example.com",
		Password: "correct horse battery",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	generatedID := uuid.New()
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, "grace.park@example.com").
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = generatedID
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, generatedID, output.Account.ID)
	assert.Equal(t, "grace.park@example.com", output.Account.Email)
	assert.Equal(t, "hashed-password", output.Account.PasswordHash)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Grace Park",
		Email:    "grace.park@example.com",
		Password: "correct horse battery",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed-password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Grace Park",
		Email:    "grace.park@example.com",
		Password: "short",
	}

	fx.hasher.EXPECT().
		ValidatePasswordStrength(input.Password).
		Return(domainerrors.ErrPasswordTooWeak)

	output, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooWeak))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{
		ID:           accountID,
		Email:        "grace.park@example.com",
		PasswordHash: "hashed-password",
	}
	expiresAt := time.Now().Add(time.Hour)

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "grace.park@example.com").
		Return(account, nil)
	fx.hasher.EXPECT().Check("correct horse battery", "hashed-password").Return(true)
	fx.tokenSvc.EXPECT().IssueSession(accountID).Return(&service.IssuedSession{
		Token:       "opaque-session-token",
		ExpiresAt:   expiresAt,
		AccessToken: "access-jwt",
	}, nil)
	fx.tokenSvc.EXPECT().HashToken("opaque-session-token").Return("token-hash")
	fx.sessionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Session")).
		Run(func(ctx context.Context, session *entity.Session) {
			assert.Equal(t, accountID, session.AccountID)
			assert.Equal(t, "token-hash", session.TokenHash)
			assert.Equal(t, expiresAt, session.ExpiresAt)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "Grace.Park@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "opaque-session-token", output.SessionToken)
	assert.Equal(t, "access-jwt", output.AccessToken)
	assert.Equal(t, expiresAt, output.SessionExpiresAt)
	assert.Equal(t, account, output.Account)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrAccountNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:           uuid.New(),
		Email:        "grace.park@example.com",
		PasswordHash: "hashed-password",
	}

	fx.accountRepo.EXPECT().
		FindByEmail(ctx, "grace.park@example.com").
		Return(account, nil)
	fx.hasher.EXPECT().Check("wrong password", "hashed-password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "grace.park@example.com",
		Password: "wrong password",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	// Same error as the unknown-email case.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Logout_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenSvc.EXPECT().HashToken("opaque-session-token").Return("token-hash")
	fx.sessionRepo.EXPECT().DeleteByTokenHash(ctx, "token-hash").Return(nil)

	err := fx.service.Logout(ctx, "opaque-session-token")

	require.NoError(t, err)
}

func TestAuthService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.tokenSvc.EXPECT().HashToken("stale-token").Return("stale-hash")
	fx.sessionRepo.EXPECT().
		DeleteByTokenHash(ctx, "stale-hash").
		Return(repository.ErrSessionNotFound)

	err := fx.service.Logout(ctx, "stale-token")

	require.NoError(t, err)
}

func TestAuthService_ValidateSession_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.tokenSvc.EXPECT().HashToken("opaque-session-token").Return("token-hash")
	fx.sessionRepo.EXPECT().
		FindByTokenHash(ctx, "token-hash").
		Return(&entity.Session{
			ID:        uuid.New(),
			AccountID: accountID,
			TokenHash: "token-hash",
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	got, err := fx.service.ValidateSession(ctx, "opaque-session-token")

	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestAuthService_ValidateSession_ExpiredOrUnknown(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	tests := []struct {
		name    string
		repoErr error
	}{
		{name: "expired", repoErr: repository.ErrSessionExpired},
		{name: "unknown", repoErr: repository.ErrSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx.tokenSvc.EXPECT().HashToken("some-token").Return("some-hash").Once()
			fx.sessionRepo.EXPECT().
				FindByTokenHash(ctx, "some-hash").
				Return(nil, tt.repoErr).Once()

			got, err := fx.service.ValidateSession(ctx, "some-token")

			require.Error(t, err)
			assert.Equal(t, uuid.Nil, got)
			assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
		})
	}
}

func TestAuthService_ValidateSession_EmptyToken(t *testing.T) {
	fx := createTestAuthService(t)

	got, err := fx.service.ValidateSession(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, uuid.Nil, got)
	assert.True(t, errors.Is(err, domainerrors.ErrSessionInvalid))
}

func TestAuthService_GetProfile(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "grace.park@example.com"}

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

	got, err := fx.service.GetProfile(ctx, accountID)

	require.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().
		FindByID(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	got, err := fx.service.GetProfile(ctx, accountID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountNotFound))
}
