package postgres

import (
	"context"
	"strings"

	"tracer/internal/domain/entity"
	"tracer/internal/domain/repository"
	"tracer/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// jobRepository implements the domain.JobRepository interface using GORM.
type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(db *gorm.DB) repository.JobRepository {
	return &jobRepository{db: db}
}

// List returns job postings in primary-key order.
func (repo *jobRepository) List(ctx context.Context, limit, offset int) ([]*entity.JobPosting, error) {
	query := repo.db.WithContext(ctx).Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var jobModels []*model.JobModel
	if err := query.Find(&jobModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list job postings")
	}

	jobs := make([]*entity.JobPosting, 0, len(jobModels))
	for _, jobM := range jobModels {
		jobs = append(jobs, toJobDomain(jobM))
	}

	return jobs, nil
}

// alumniRepository implements the domain.AlumniRepository interface using GORM.
type alumniRepository struct {
	db *gorm.DB
}

// NewAlumniRepository is the constructor for alumniRepository.
func NewAlumniRepository(db *gorm.DB) repository.AlumniRepository {
	return &alumniRepository{db: db}
}

// Search returns records whose name contains queryText (case-insensitive) or
// whose graduation year, rendered as text, contains it. The query text is
// bound as a parameter with LIKE metacharacters escaped, so user input can
// never alter the statement or the match semantics.
func (repo *alumniRepository) Search(ctx context.Context, queryText string) ([]*entity.AlumniRecord, error) {
	query := repo.db.WithContext(ctx).Order("id")

	if queryText != "" {
		pattern := "%" + escapeLikePattern(queryText) + "%"
		query = query.Where(
			`name ILIKE ? ESCAPE '\' OR graduation_year::text LIKE ? ESCAPE '\'`,
			pattern, pattern,
		)
	}

	var alumniModels []*model.AlumniModel
	if err := query.Find(&alumniModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search alumni records")
	}

	records := make([]*entity.AlumniRecord, 0, len(alumniModels))
	for _, alumniM := range alumniModels {
		records = append(records, toAlumniDomain(alumniM))
	}

	return records, nil
}

// escapeLikePattern escapes the LIKE metacharacters so user input matches
// literally inside the surrounding wildcards.
func escapeLikePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}

// --- Mapper Functions ---

func toJobDomain(data *model.JobModel) *entity.JobPosting {
	if data == nil {
		return nil
	}

	return &entity.JobPosting{
		ID:         data.ID,
		Title:      data.Title,
		Company:    data.Company,
		Location:   data.Location,
		PostedDate: data.PostedDate,
	}
}

func toAlumniDomain(data *model.AlumniModel) *entity.AlumniRecord {
	if data == nil {
		return nil
	}

	return &entity.AlumniRecord{
		ID:             data.ID,
		Name:           data.Name,
		GraduationYear: data.GraduationYear,
		Major:          data.Major,
	}
}
