// Package cache provides Redis-backed decorators for repositories.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"college_backend/internal/feature/stats/domain/entity"
	"college_backend/internal/feature/stats/usecase"
)

// CachingStatsRepository decorates a StatsRepository with a Redis cache
// for the overview counts. Per-student attendance summaries are always
// read through, since they change with every recorded attendance.
type CachingStatsRepository struct {
	inner     usecase.StatsRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingStatsRepository decorates inner with a Redis cache.
// ttl falls back to 5 minutes when zero or negative; an empty namespace
// falls back to "stats". A nil client disables caching entirely.
func NewCachingStatsRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StatsRepository, namespace string) *CachingStatsRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "stats"
	}
	return &CachingStatsRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingStatsRepository) overviewKey() string {
	return fmt.Sprintf("%s:overview", c.namespace)
}

// Overview returns the cached counts when present, falling back to the
// inner repository and refilling the cache best-effort.
func (c *CachingStatsRepository) Overview(ctx context.Context) (*entity.Overview, error) {
	if c.rdb == nil {
		return c.inner.Overview(ctx)
	}

	key := c.overviewKey()

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Overview
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Corrupt entry: drop it and fall through to the database.
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.Overview(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// AttendanceSummary always reads through to the inner repository.
func (c *CachingStatsRepository) AttendanceSummary(ctx context.Context, studentID uint) (*entity.AttendanceSummary, error) {
	return c.inner.AttendanceSummary(ctx, studentID)
}
