package usecase

import (
	"context"
	"time"

	"jobboard_backend/internal/feature/jobs/domain/entity"
)

const (
	// monthlyTrendLimit caps the monthly series at the 12 most recent months
	// that have at least one job. Calendar gaps are not zero-filled.
	monthlyTrendLimit = 12

	// monthLabelLayout renders a bucket as e.g. "Mar 24".
	monthLabelLayout = "Jan 06"
)

// StatusCount is one row of the store's group-by-status aggregation.
type StatusCount struct {
	Status string
	Count  int
}

// MonthCount is one row of the store's group-by-month aggregation.
type MonthCount struct {
	Year  int
	Month int
	Count int
}

// StatsRepository abstracts the store-side aggregations over a user's jobs.
type StatsRepository interface {
	// StatusCounts groups the user's jobs by status. Statuses with no jobs
	// are absent from the result.
	StatusCounts(ctx context.Context, userID uint) ([]StatusCount, error)

	// MonthlyCounts groups the user's jobs by creation year and month,
	// ordered year then month descending, returning at most limit rows.
	MonthlyCounts(ctx context.Context, userID uint, limit int) ([]MonthCount, error)
}

// MonthlyCountView is one display-ready entry of the monthly trend.
type MonthlyCountView struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// JobStats is the aggregate statistics response for one user.
type JobStats struct {
	TotalJobs int                `json:"totalJobs"`
	Stats     map[string]int     `json:"stats"`
	Monthly   []MonthlyCountView `json:"monthlyApplications"`
}

// statsUsecase post-processes store aggregations into display shape.
type statsUsecase struct {
	stats StatsRepository
}

// NewStatsUsecase creates a new instance of statsUsecase.
func NewStatsUsecase(stats StatsRepository) *statsUsecase {
	return &statsUsecase{stats: stats}
}

// GetStats returns per-status counts (zero-filled across the full enum) and
// the monthly creation trend, oldest month first.
func (u *statsUsecase) GetStats(ctx context.Context, userID uint) (*JobStats, error) {
	counts, err := u.stats.StatusCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Merge onto a zero-initialized map so absent statuses report 0.
	byStatus := make(map[string]int, len(entity.AllStatuses()))
	for _, s := range entity.AllStatuses() {
		byStatus[s] = 0
	}
	total := 0
	for _, c := range counts {
		byStatus[c.Status] = c.Count
		total += c.Count
	}

	months, err := u.stats.MonthlyCounts(ctx, userID, monthlyTrendLimit)
	if err != nil {
		return nil, err
	}

	// Rows arrive newest-first; the series is displayed oldest-first.
	monthly := make([]MonthlyCountView, 0, len(months))
	for i := len(months) - 1; i >= 0; i-- {
		m := months[i]
		label := time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC).Format(monthLabelLayout)
		monthly = append(monthly, MonthlyCountView{Date: label, Count: m.Count})
	}

	return &JobStats{
		TotalJobs: total,
		Stats:     byStatus,
		Monthly:   monthly,
	}, nil
}
