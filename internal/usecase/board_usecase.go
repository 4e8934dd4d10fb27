package usecase

import (
	"context"

	"tracer/internal/domain/entity"
)

// BoardUsecase defines the read operations behind the authenticated pages:
// the job board and the alumni directory.
type BoardUsecase interface {
	// ListJobs returns job postings in stable order. Limit and offset are
	// clamped; a non-positive limit falls back to the default page size.
	ListJobs(ctx context.Context, limit, offset int) ([]*entity.JobPosting, error)

	// SearchAlumni returns directory records matching the query text by name
	// or graduation year. An empty query returns the whole directory.
	SearchAlumni(ctx context.Context, queryText string) ([]*entity.AlumniRecord, error)
}
