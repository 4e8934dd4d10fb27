package impl

import (
	"io"
	"log/slog"
	"testing"

	mockRepo "tracer/internal/mocks/repository"
	mockService "tracer/internal/mocks/service"
	"tracer/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service     usecase.AuthUsecase
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	sessionRepo *mockRepo.MockSessionRepository
	hasher      *mockService.MockPasswordHasher
	tokenSvc    *mockService.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenSvc := mockService.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		AccountRepo:  accountRepo,
		SessionRepo:  sessionRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Logger:       newDiscardLogger(),
	})

	return authServiceFixtures{
		service:     service,
		txManager:   txManager,
		accountRepo: accountRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		tokenSvc:    tokenSvc,
	}
}

// boardServiceFixtures holds all test dependencies for board service tests.
type boardServiceFixtures struct {
	service    usecase.BoardUsecase
	jobRepo    *mockRepo.MockJobRepository
	alumniRepo *mockRepo.MockAlumniRepository
}

func createTestBoardService(t *testing.T) boardServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	alumniRepo := mockRepo.NewMockAlumniRepository(t)

	service := NewBoardService(BoardServiceParams{
		JobRepo:    jobRepo,
		AlumniRepo: alumniRepo,
		Logger:     newDiscardLogger(),
	})

	return boardServiceFixtures{
		service:    service,
		jobRepo:    jobRepo,
		alumniRepo: alumniRepo,
	}
}
