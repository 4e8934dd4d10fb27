package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "tracer/internal/delivery/context"
	"tracer/internal/domain/entity"
	"tracer/internal/domain/repository"
	"tracer/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultJobPageSize = 50
	maxJobPageSize     = 200
)

// boardService implements the BoardUsecase interface.
type boardService struct {
	jobRepo    repository.JobRepository
	alumniRepo repository.AlumniRepository
	logger     *slog.Logger
}

// BoardServiceParams holds dependencies for boardService, injected by Fx.
type BoardServiceParams struct {
	fx.In

	JobRepo    repository.JobRepository
	AlumniRepo repository.AlumniRepository
	Logger     *slog.Logger
}

// NewBoardService is the constructor for boardService.
func NewBoardService(params BoardServiceParams) usecase.BoardUsecase {
	return &boardService{
		jobRepo:    params.JobRepo,
		alumniRepo: params.AlumniRepo,
		logger:     params.Logger,
	}
}

func (srv *boardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListJobs returns job postings in stable order, with limit and offset
// clamped to sane bounds.
func (srv *boardService) ListJobs(ctx context.Context, limit, offset int) ([]*entity.JobPosting, error) {
	if limit <= 0 {
		limit = defaultJobPageSize
	}
	if limit > maxJobPageSize {
		limit = maxJobPageSize
	}
	if offset < 0 {
		offset = 0
	}

	jobs, err := srv.jobRepo.List(ctx, limit, offset)
	if err != nil {
		srv.log(ctx).Error("Failed to list job postings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list job postings")
	}

	return jobs, nil
}

// SearchAlumni returns directory records matching the query text.
func (srv *boardService) SearchAlumni(ctx context.Context, queryText string) ([]*entity.AlumniRecord, error) {
	queryText = strings.TrimSpace(queryText)

	records, err := srv.alumniRepo.Search(ctx, queryText)
	if err != nil {
		srv.log(ctx).Error("Failed to search alumni records", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search alumni records")
	}
	srv.log(ctx).Debug("Alumni search completed",
		slog.String("query", queryText), slog.Int("results", len(records)))

	return records, nil
}
