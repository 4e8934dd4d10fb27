package repository

import (
	"context"

	"tracer/internal/domain/entity"
)

// JobRepository exposes read access to the job board.
type JobRepository interface {
	// List returns job postings in primary-key order. A non-positive limit
	// returns all postings from offset onward.
	List(ctx context.Context, limit, offset int) ([]*entity.JobPosting, error)
}

// AlumniRepository exposes read access to the alumni directory.
type AlumniRepository interface {
	// Search returns records whose name contains queryText (case-insensitive)
	// or whose graduation year, rendered as text, contains it. An empty
	// queryText matches every record. The query text is always bound as a
	// parameter, never interpolated.
	Search(ctx context.Context, queryText string) ([]*entity.AlumniRecord, error)
}
