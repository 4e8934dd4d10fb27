package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"tracer/internal/domain/entity"
	mockusecase "tracer/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardHandler_ListJobs(t *testing.T) {
	uc := mockusecase.NewMockBoardUsecase(t)
	h := NewBoardHandler(uc, newDiscardLogger())

	posted := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().ListJobs(context.Background(), 10, 5).Return([]*entity.JobPosting{
		{ID: 1, Title: "Backend Engineer", Company: "Acme", Location: "Manila", PostedDate: posted},
		{ID: 2, Title: "Data Analyst", Company: "Globex"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/job-board?limit=10&offset=5", "")

	require.NoError(t, h.ListJobs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Backend Engineer")
	assert.Contains(t, rec.Body.String(), "2026-08-01")
	assert.Contains(t, rec.Body.String(), "Data Analyst")
}

func TestBoardHandler_ListJobs_OmittedParamsDefaultToZero(t *testing.T) {
	uc := mockusecase.NewMockBoardUsecase(t)
	h := NewBoardHandler(uc, newDiscardLogger())

	uc.EXPECT().ListJobs(context.Background(), 0, 0).Return([]*entity.JobPosting{}, nil)

	c, rec := newTestContext(http.MethodGet, "/job-board", "")

	require.NoError(t, h.ListJobs(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBoardHandler_ListJobs_InvalidLimit(t *testing.T) {
	uc := mockusecase.NewMockBoardUsecase(t)
	h := NewBoardHandler(uc, newDiscardLogger())

	c, rec := newTestContext(http.MethodGet, "/job-board?limit=ten", "")

	require.NoError(t, h.ListJobs(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestBoardHandler_ListJobs_UsecaseError(t *testing.T) {
	uc := mockusecase.NewMockBoardUsecase(t)
	h := NewBoardHandler(uc, newDiscardLogger())

	uc.EXPECT().ListJobs(context.Background(), 0, 0).Return(nil, errors.New("connection reset"))

	c, _ := newTestContext(http.MethodGet, "/job-board", "")

	assert.Error(t, h.ListJobs(c))
}

func TestBoardHandler_SearchAlumni(t *testing.T) {
	uc := mockusecase.NewMockBoardUsecase(t)
	h := NewBoardHandler(uc, newDiscardLogger())

	uc.EXPECT().SearchAlumni(context.Background(), "Kim").Return([]*entity.AlumniRecord{
		{ID: 1, Name: "Kim Lee", GraduationYear: 2019, Major: "Computer Science"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/alumni-tracer?query=Kim", "")

	require.NoError(t, h.SearchAlumni(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kim Lee")
	assert.Contains(t, rec.Body.String(), "2019")
}

func TestBoardHandler_SearchAlumni_EmptyQuery(t *testing.T) {
	uc := mockusecase.NewMockBoardUsecase(t)
	h := NewBoardHandler(uc, newDiscardLogger())

	uc.EXPECT().SearchAlumni(context.Background(), "").Return([]*entity.AlumniRecord{
		{ID: 1, Name: "Kim Lee", GraduationYear: 2019, Major: "Computer Science"},
		{ID: 2, Name: "Ana Cruz", GraduationYear: 2021, Major: "Information Systems"},
	}, nil)

	c, rec := newTestContext(http.MethodGet, "/alumni-tracer", "")

	require.NoError(t, h.SearchAlumni(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana Cruz")
}
