// Package adapters provides the repository implementations for the jobs feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/usecase"
)

// jobGorm is the gorm implementation of JobRepository and StatsRepository.
type jobGorm struct {
	db *gorm.DB
}

var (
	_ usecase.JobRepository   = (*jobGorm)(nil)
	_ usecase.StatsRepository = (*jobGorm)(nil)
)

// NewJobRepository creates a new jobGorm backed by the given connection.
func NewJobRepository(db *gorm.DB) *jobGorm {
	return &jobGorm{db: db}
}

// Create inserts a new job.
func (r *jobGorm) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// FindByID retrieves a job with its company by ID.
// It returns usecase.ErrJobNotFound when no job matches.
func (r *jobGorm) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.db.WithContext(ctx).Preload("Company").Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// Update saves the full job record.
func (r *jobGorm) Update(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// Delete removes the job.
func (r *jobGorm) Delete(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Delete(&entity.Job{}, job.ID).Error
}

// List translates a ListQuery into a gorm query: dynamic filter clauses,
// a fixed sort table with id as the tie-break, and offset/limit pagination.
// The total is counted before pagination so callers can compute page counts.
func (r *jobGorm) List(ctx context.Context, q usecase.ListQuery) ([]entity.Job, int64, error) {
	tx := r.db.WithContext(ctx).Model(&entity.Job{}).Where("created_by = ?", q.CreatedBy)

	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}
	if q.WorkType != "" {
		tx = tx.Where("work_type = ?", q.WorkType)
	}
	if q.WorkLocation != "" {
		tx = tx.Where("work_location = ?", q.WorkLocation)
	}
	if q.Search != "" {
		// LOWER + LIKE is case-insensitive on both postgres and sqlite.
		tx = tx.Where("LOWER(position) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []entity.Job
	err := tx.
		Order(orderClause(q.Sort)).
		Offset(q.Offset()).
		Limit(q.Limit).
		Preload("Company").
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// orderClause maps a SortKey onto SQL. The id tie-break keeps pagination
// deterministic when created_at or position values collide.
func orderClause(sort usecase.SortKey) string {
	switch sort {
	case usecase.SortOldest:
		return "created_at ASC, id ASC"
	case usecase.SortPositionAsc:
		return "position ASC, id ASC"
	case usecase.SortPositionDesc:
		return "position DESC, id DESC"
	default:
		return "created_at DESC, id DESC"
	}
}

// StatusCounts groups the user's jobs by status.
func (r *jobGorm) StatusCounts(ctx context.Context, userID uint) ([]usecase.StatusCount, error) {
	var rows []usecase.StatusCount
	err := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Select("status, COUNT(*) AS count").
		Where("created_by = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// MonthlyCounts groups the user's jobs by creation year and month, most
// recent buckets first, at most limit rows.
func (r *jobGorm) MonthlyCounts(ctx context.Context, userID uint, limit int) ([]usecase.MonthCount, error) {
	yearExpr, monthExpr := r.datePartExprs()

	var rows []usecase.MonthCount
	err := r.db.WithContext(ctx).
		Model(&entity.Job{}).
		Select(yearExpr+" AS year, "+monthExpr+" AS month, COUNT(*) AS count").
		Where("created_by = ?", userID).
		Group("year, month").
		Order("year DESC, month DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// datePartExprs returns the year/month extraction SQL for the active
// dialect. gorm has no portable date-part API, and the test suite runs on
// sqlite while production runs on postgres.
func (r *jobGorm) datePartExprs() (yearExpr, monthExpr string) {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', created_at) AS INTEGER)",
			"CAST(strftime('%m', created_at) AS INTEGER)"
	}
	return "CAST(EXTRACT(YEAR FROM created_at) AS INTEGER)",
		"CAST(EXTRACT(MONTH FROM created_at) AS INTEGER)"
}
