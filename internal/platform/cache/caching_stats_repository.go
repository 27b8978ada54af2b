// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard_backend/internal/feature/jobs/usecase"
)

// CachingStatsRepository decorates a StatsRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. It also satisfies
// usecase.StatsInvalidator so job mutations can drop a user's entries.
type CachingStatsRepository struct {
	inner     usecase.StatsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingStatsRepository decorates a StatsRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "jobstats". A nil client disables caching entirely.
func NewCachingStatsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StatsRepository, namespace string) *CachingStatsRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "jobstats"
	}
	return &CachingStatsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// StatusCounts retrieves per-status counts, checking cache first then
// falling back to the database.
func (c *CachingStatsRepository) StatusCounts(ctx context.Context, userID uint) ([]usecase.StatusCount, error) {
	if c.rdb == nil {
		return c.inner.StatusCounts(ctx, userID)
	}

	key := c.statusKey(userID)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []usecase.StatusCount
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.StatusCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Best effort: a cache write failure must not fail the request.
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// MonthlyCounts retrieves the monthly buckets, checking cache first then
// falling back to the database.
func (c *CachingStatsRepository) MonthlyCounts(ctx context.Context, userID uint, limit int) ([]usecase.MonthCount, error) {
	if c.rdb == nil {
		return c.inner.MonthlyCounts(ctx, userID, limit)
	}

	key := c.monthlyKey(userID, limit)
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []usecase.MonthCount
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.MonthlyCounts(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops all cached stats for the user. Best effort: the TTL
// bounds staleness if deletion fails.
func (c *CachingStatsRepository) Invalidate(ctx context.Context, userID uint) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.userKeyPrefix(userID)+"*")
}

// statusKey generates the cache key for a user's status counts.
func (c *CachingStatsRepository) statusKey(userID uint) string {
	return fmt.Sprintf("%s:%d:status", c.namespace, userID)
}

// monthlyKey generates the cache key for a user's monthly buckets.
func (c *CachingStatsRepository) monthlyKey(userID uint, limit int) string {
	return fmt.Sprintf("%s:%d:monthly:%d", c.namespace, userID, limit)
}

// userKeyPrefix generates the prefix shared by all of a user's entries.
func (c *CachingStatsRepository) userKeyPrefix(userID uint) string {
	return fmt.Sprintf("%s:%d:", c.namespace, userID)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingStatsRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
