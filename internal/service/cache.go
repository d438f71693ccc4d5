package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	reportCacheKey = "task:report"
	reportCacheTTL = time.Hour
)

// ReportCache stores the serialized task report.
type ReportCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, data []byte, ttl time.Duration) error
	Del(ctx context.Context) error
}

// RedisReportCache keeps the report in Redis under a single key.
type RedisReportCache struct {
	client *redis.Client
}

func NewRedisReportCache(client *redis.Client) *RedisReportCache {
	return &RedisReportCache{client: client}
}

func (c *RedisReportCache) Get(ctx context.Context) ([]byte, error) {
	return c.client.Get(ctx, reportCacheKey).Bytes()
}

func (c *RedisReportCache) Set(ctx context.Context, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, reportCacheKey, data, ttl).Err()
}

func (c *RedisReportCache) Del(ctx context.Context) error {
	return c.client.Del(ctx, reportCacheKey).Err()
}
