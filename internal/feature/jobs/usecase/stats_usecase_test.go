package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStatsRepository is a mock implementation of the StatsRepository interface.
type mockStatsRepository struct {
	statusCountsFn  func(ctx context.Context, userID uint) ([]StatusCount, error)
	monthlyCountsFn func(ctx context.Context, userID uint, limit int) ([]MonthCount, error)
}

func (m *mockStatsRepository) StatusCounts(ctx context.Context, userID uint) ([]StatusCount, error) {
	if m.statusCountsFn != nil {
		return m.statusCountsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockStatsRepository) MonthlyCounts(ctx context.Context, userID uint, limit int) ([]MonthCount, error) {
	if m.monthlyCountsFn != nil {
		return m.monthlyCountsFn(ctx, userID, limit)
	}
	return nil, nil
}

func TestStatsUsecase_GetStats_ZeroFillsStatuses(t *testing.T) {
	t.Parallel()

	uc := NewStatsUsecase(&mockStatsRepository{
		statusCountsFn: func(ctx context.Context, userID uint) ([]StatusCount, error) {
			return []StatusCount{
				{Status: "pending", Count: 2},
				{Status: "interview", Count: 1},
			}, nil
		},
	})

	stats, err := uc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalJobs)
	assert.Equal(t, map[string]int{
		"pending":   2,
		"reject":    0,
		"interview": 1,
	}, stats.Stats)
}

func TestStatsUsecase_GetStats_EmptyDataSet(t *testing.T) {
	t.Parallel()

	uc := NewStatsUsecase(&mockStatsRepository{})

	stats, err := uc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalJobs)
	assert.Equal(t, map[string]int{"pending": 0, "reject": 0, "interview": 0}, stats.Stats)
	assert.Empty(t, stats.Monthly)
}

func TestStatsUsecase_GetStats_SumEqualsTotal(t *testing.T) {
	t.Parallel()

	uc := NewStatsUsecase(&mockStatsRepository{
		statusCountsFn: func(ctx context.Context, userID uint) ([]StatusCount, error) {
			return []StatusCount{
				{Status: "pending", Count: 5},
				{Status: "reject", Count: 3},
				{Status: "interview", Count: 7},
			}, nil
		},
	})

	stats, err := uc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	sum := 0
	for _, c := range stats.Stats {
		sum += c
	}
	assert.Equal(t, stats.TotalJobs, sum)
}

func TestStatsUsecase_GetStats_MonthlySeriesOldestFirst(t *testing.T) {
	t.Parallel()

	uc := NewStatsUsecase(&mockStatsRepository{
		monthlyCountsFn: func(ctx context.Context, userID uint, limit int) ([]MonthCount, error) {
			assert.Equal(t, 12, limit)
			// Repository rows arrive newest-first.
			return []MonthCount{
				{Year: 2024, Month: 3, Count: 1},
				{Year: 2024, Month: 1, Count: 2},
			}, nil
		},
	})

	stats, err := uc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, stats.Monthly, 2)
	assert.Equal(t, MonthlyCountView{Date: "Jan 24", Count: 2}, stats.Monthly[0])
	assert.Equal(t, MonthlyCountView{Date: "Mar 24", Count: 1}, stats.Monthly[1])
}

func TestStatsUsecase_GetStats_MonthLabelFormat(t *testing.T) {
	t.Parallel()

	uc := NewStatsUsecase(&mockStatsRepository{
		monthlyCountsFn: func(ctx context.Context, userID uint, limit int) ([]MonthCount, error) {
			return []MonthCount{
				{Year: 2023, Month: 12, Count: 4},
				{Year: 2023, Month: 9, Count: 1},
			}, nil
		},
	})

	stats, err := uc.GetStats(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, stats.Monthly, 2)
	assert.Equal(t, "Sep 23", stats.Monthly[0].Date)
	assert.Equal(t, "Dec 23", stats.Monthly[1].Date)
}

func TestStatsUsecase_GetStats_RepositoryErrors(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("connection reset")

	t.Run("status counts error", func(t *testing.T) {
		t.Parallel()

		uc := NewStatsUsecase(&mockStatsRepository{
			statusCountsFn: func(ctx context.Context, userID uint) ([]StatusCount, error) {
				return nil, storeErr
			},
		})

		_, err := uc.GetStats(context.Background(), 1)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("monthly counts error", func(t *testing.T) {
		t.Parallel()

		uc := NewStatsUsecase(&mockStatsRepository{
			monthlyCountsFn: func(ctx context.Context, userID uint, limit int) ([]MonthCount, error) {
				return nil, storeErr
			},
		})

		_, err := uc.GetStats(context.Background(), 1)
		assert.ErrorIs(t, err, storeErr)
	})
}
