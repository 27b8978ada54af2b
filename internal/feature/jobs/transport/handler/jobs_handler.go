// Package handler provides the HTTP handlers for the jobs feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/transport/http/dto"
	"jobboard_backend/internal/feature/jobs/usecase"
	jwtmw "jobboard_backend/internal/platform/jwt"
)

// JobsUsecase defines the job operations the handler depends on.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type JobsUsecase interface {
	Create(ctx context.Context, userID uint, in usecase.CreateJobInput) (*entity.Job, error)
	List(ctx context.Context, userID uint, p usecase.ListParams) (*usecase.JobPage, error)
	Update(ctx context.Context, userID, jobID uint, in usecase.UpdateJobInput) (*entity.Job, error)
	Delete(ctx context.Context, userID, jobID uint) error
}

// StatsUsecase defines the aggregation operation the handler depends on.
type StatsUsecase interface {
	GetStats(ctx context.Context, userID uint) (*usecase.JobStats, error)
}

// JobsHandler handles HTTP requests for job CRUD, listing and stats.
type JobsHandler struct {
	jobs  JobsUsecase
	stats StatsUsecase
}

// NewJobsHandler creates a new instance of JobsHandler.
func NewJobsHandler(jobs JobsUsecase, stats StatsUsecase) *JobsHandler {
	return &JobsHandler{jobs: jobs, stats: stats}
}

// CreateJob handles POST /job/create-job.
// - 400 when company, position or work_location is missing
// - 201 with the created job (company embedded) on success
func (h *JobsHandler) CreateJob(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		return
	}

	var req dto.CreateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create-job validation failed", "error", err, "user_id", userID)
		api.ValidationError(c, err)
		return
	}

	job, err := h.jobs.Create(c.Request.Context(), userID, usecase.CreateJobInput{
		Company:      req.Company,
		Position:     req.Position,
		WorkLocation: req.WorkLocation,
		Status:       req.Status,
		WorkType:     req.WorkType,
		Title:        req.Title,
		Description:  req.Description,
		Salary:       req.Salary,
		Experience:   req.Experience,
	})
	if err != nil {
		api.Error(c, err)
		return
	}

	slog.Info("job created", "job_id", job.ID, "user_id", userID)
	c.JSON(http.StatusCreated, dto.JobResponse{Job: job})
}

// GetJobs handles GET /job/get-jobs. The raw query parameters go through
// the list query builder, which never rejects input, so the only failure
// mode is the store.
func (h *JobsHandler) GetJobs(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		return
	}

	var req dto.ListJobsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		api.ValidationError(c, err)
		return
	}

	page, err := h.jobs.List(c.Request.Context(), userID, usecase.ListParams{
		Status:       req.Status,
		WorkType:     req.WorkType,
		WorkLocation: req.WorkLocation,
		Search:       req.Search,
		Sort:         req.Sort,
		Page:         req.Page,
		Limit:        req.Limit,
	})
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// UpdateJob handles PATCH /job/update-job/:id.
// - 404 when the job does not exist
// - 403 when the caller is not the creator, checked before any mutation
// - 200 with the updated job on success
func (h *JobsHandler) UpdateJob(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		return
	}

	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update-job validation failed", "error", err, "user_id", userID, "job_id", jobID)
		api.ValidationError(c, err)
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), userID, jobID, usecase.UpdateJobInput{
		Company:      req.Company,
		Position:     req.Position,
		WorkLocation: req.WorkLocation,
		Status:       req.Status,
		WorkType:     req.WorkType,
	})
	if err != nil {
		api.Error(c, err)
		return
	}

	slog.Info("job updated", "job_id", jobID, "user_id", userID)
	c.JSON(http.StatusOK, dto.JobResponse{Job: job})
}

// DeleteJob handles DELETE /job/delete-job/:id with the same not-found and
// ownership semantics as UpdateJob.
func (h *JobsHandler) DeleteJob(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		return
	}

	jobID, ok := parseJobID(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), userID, jobID); err != nil {
		api.Error(c, err)
		return
	}

	slog.Info("job deleted", "job_id", jobID, "user_id", userID)
	c.JSON(http.StatusOK, api.MessageResponse{Message: "job deleted successfully"})
}

// JobStats handles GET /job/job-stats.
func (h *JobsHandler) JobStats(c *gin.Context) {
	userID, ok := jwtmw.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		return
	}

	stats, err := h.stats.GetStats(c.Request.Context(), userID)
	if err != nil {
		api.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// parseJobID reads the :id path parameter. A non-numeric ID cannot refer to
// any job, so it reports 404 like an absent one.
func parseJobID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "job not found"})
		return 0, false
	}
	return uint(id), true
}
