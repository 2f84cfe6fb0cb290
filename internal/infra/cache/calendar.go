package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"host-pricing/internal/domain/pricing"
	"host-pricing/internal/pkg/errs"
	"host-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "pricing:host:"

type RedisCalendarCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCalendarCache(client *redis.Client, ttl time.Duration) *RedisCalendarCache {
	return &RedisCalendarCache{client: client, ttl: ttl}
}

var _ shared.CalendarCache = (*RedisCalendarCache)(nil)

func revisionKey(hostID uuid.UUID) string {
	return keyPrefix + hostID.String() + ":rev"
}

func gridKey(hostID uuid.UUID, revision int64, year int, month time.Month) string {
	return fmt.Sprintf("%s%s:rev:%d:calendar:%04d-%02d", keyPrefix, hostID, revision, year, int(month))
}

func (c *RedisCalendarCache) revision(ctx context.Context, hostID uuid.UUID) (int64, error) {
	rev, err := c.client.Get(ctx, revisionKey(hostID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "failed to read calendar revision")
	}
	return rev, nil
}

func (c *RedisCalendarCache) Get(ctx context.Context, hostID uuid.UUID, year int, month time.Month) (*pricing.MonthGrid, int64, error) {
	rev, err := c.revision(ctx, hostID)
	if err != nil {
		return nil, 0, err
	}

	raw, err := c.client.Get(ctx, gridKey(hostID, rev, year, month)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, rev, nil
	}
	if err != nil {
		return nil, rev, errs.Wrap(err, "failed to read cached calendar")
	}

	var grid pricing.MonthGrid
	if err := json.Unmarshal(raw, &grid); err != nil {
		slog.Warn("dropping undecodable cached calendar", "host_id", hostID.String(), "error", err.Error())
		return nil, rev, nil
	}
	return &grid, rev, nil
}

func (c *RedisCalendarCache) Put(ctx context.Context, hostID uuid.UUID, revision int64, grid pricing.MonthGrid) error {
	raw, err := json.Marshal(grid)
	if err != nil {
		return errs.Wrap(err, "failed to encode calendar")
	}
	if err := c.client.Set(ctx, gridKey(hostID, revision, grid.Year, grid.Month), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to cache calendar")
	}
	return nil
}

// Invalidate bumps the revision. Grids stored under older revisions are never
// read again and expire with their TTL.
func (c *RedisCalendarCache) Invalidate(ctx context.Context, hostID uuid.UUID) error {
	if err := c.client.Incr(ctx, revisionKey(hostID)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate calendar cache")
	}
	return nil
}

// NoopCalendarCache is used when no Redis address is configured.
type NoopCalendarCache struct{}

func NewNoopCalendarCache() NoopCalendarCache {
	return NoopCalendarCache{}
}

func (NoopCalendarCache) Get(context.Context, uuid.UUID, int, time.Month) (*pricing.MonthGrid, int64, error) {
	return nil, 0, nil
}

func (NoopCalendarCache) Put(context.Context, uuid.UUID, int64, pricing.MonthGrid) error {
	return nil
}

func (NoopCalendarCache) Invalidate(context.Context, uuid.UUID) error {
	return nil
}
