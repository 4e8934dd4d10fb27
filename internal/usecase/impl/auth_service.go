// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tracer/internal/delivery/context"
	"tracer/internal/domain/entity"
	domainerrors "tracer/internal/domain/errors"
	"tracer/internal/domain/repository"
	"tracer/internal/domain/service"
	"tracer/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	sessionRepo  repository.SessionRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	SessionRepo  repository.SessionRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		sessionRepo:  params.SessionRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	// Hash before the transaction; bcrypt is slow and needs no DB state.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredAccount *entity.Account

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Fast-path duplicate check for a friendly error. The unique
		// constraint on accounts.email catches the race this check leaves open.
		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check for existing account")
		}

		newAccount := &entity.Account{
			Name:           input.Name,
			Email:          email,
			PasswordHash:   hashedPassword,
			GraduationYear: input.GraduationYear,
			Major:          input.Major,
		}

		if err := accountRepo.Create(ctx, newAccount); err != nil {
			return errors.WithStack(err)
		}
		registeredAccount = newAccount

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.log(ctx).Debug("Account registered successfully", slog.Any("accountID", registeredAccount.ID))

	return &usecase.RegisterOutput{Account: registeredAccount}, nil
}

// Login verifies credentials and mints a new session. Unknown email and
// wrong password both surface as ErrInvalidCredentials so the response
// never reveals whether an email is registered.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	issued, err := srv.tokenService.IssueSession(account.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session")
	}

	newSession := &entity.Session{
		AccountID: account.ID,
		TokenHash: srv.tokenService.HashToken(issued.Token),
		ExpiresAt: issued.ExpiresAt,
	}
	if err := srv.sessionRepo.Create(ctx, newSession); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Debug("Account logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		SessionToken:     issued.Token,
		SessionExpiresAt: issued.ExpiresAt,
		AccessToken:      issued.AccessToken,
		Account:          account,
	}, nil
}

// Logout revokes the session identified by the raw session token.
func (srv *authService) Logout(ctx context.Context, sessionToken string) error {
	tokenHash := srv.tokenService.HashToken(sessionToken)

	if err := srv.sessionRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		// An unknown token means the session is already gone; logout is idempotent.
		if errors.Is(err, repository.ErrSessionNotFound) {
			srv.log(ctx).Debug("Logout for unknown session token")

			return nil
		}

		return errors.Wrap(err, "failed to delete session")
	}
	srv.log(ctx).Debug("Session revoked")

	return nil
}

// ValidateSession resolves a raw session token to the owning account ID.
func (srv *authService) ValidateSession(ctx context.Context, sessionToken string) (uuid.UUID, error) {
	if sessionToken == "" {
		return uuid.Nil, domainerrors.ErrSessionInvalid.WrapMessage("missing session token")
	}

	tokenHash := srv.tokenService.HashToken(sessionToken)

	session, err := srv.sessionRepo.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) || errors.Is(err, repository.ErrSessionExpired) {
			return uuid.Nil, domainerrors.ErrSessionInvalid.WrapMessage("session validation failed")
		}

		return uuid.Nil, errors.Wrap(err, "failed to find session by token hash")
	}

	return session.AccountID, nil
}

// GetProfile returns the account for the given ID.
func (srv *authService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// normalizeEmail lowercases and trims an email so lookups and the unique
// constraint agree on one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
