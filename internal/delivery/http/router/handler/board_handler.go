package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"tracer/internal/delivery/http/response"
	"tracer/internal/domain/entity"
	"tracer/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BoardHandler holds dependencies for the job board and alumni directory handlers.
type BoardHandler struct {
	uc     usecase.BoardUsecase
	logger *slog.Logger
}

// NewBoardHandler is the constructor for BoardHandler, injected by Fx.
func NewBoardHandler(uc usecase.BoardUsecase, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		uc:     uc,
		logger: logger,
	}
}

type jobResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location,omitempty"`
	PostedDate string `json:"postedDate,omitempty"`
}

type alumniResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	GraduationYear int    `json:"graduationYear"`
	Major          string `json:"major"`
}

// ListJobs handles the job board listing request.
func (h *BoardHandler) ListJobs(c echo.Context) error {
	limit, err := parseIntParam(c.QueryParam("limit"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit must be an integer")
	}
	offset, err := parseIntParam(c.QueryParam("offset"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "offset must be an integer")
	}

	jobs, err := h.uc.ListJobs(c.Request().Context(), limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toJobResponses(jobs), "Job postings retrieved successfully")
}

// SearchAlumni handles the alumni directory search request.
func (h *BoardHandler) SearchAlumni(c echo.Context) error {
	records, err := h.uc.SearchAlumni(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAlumniResponses(records), "Alumni records retrieved successfully")
}

// parseIntParam parses an optional integer query parameter; empty means zero.
func parseIntParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	return strconv.Atoi(raw)
}

func toJobResponses(jobs []*entity.JobPosting) []jobResponse {
	out := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		resp := jobResponse{
			ID:       job.ID,
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
		}
		if !job.PostedDate.IsZero() {
			resp.PostedDate = job.PostedDate.Format(time.DateOnly)
		}
		out = append(out, resp)
	}

	return out
}

func toAlumniResponses(records []*entity.AlumniRecord) []alumniResponse {
	out := make([]alumniResponse, 0, len(records))
	for _, record := range records {
		out = append(out, alumniResponse{
			ID:             record.ID,
			Name:           record.Name,
			GraduationYear: record.GraduationYear,
			Major:          record.Major,
		})
	}

	return out
}
