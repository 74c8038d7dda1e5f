package cache

import (
	"context"
	"strings"
	"time"

	"github.com/colorhaus/colorhaus/internal/config"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("cache",
	fx.Provide(NewReportCache),
)

// ReportCache stores rendered report payloads in Redis for a short TTL.
// With no Redis address configured every lookup is a miss and writes are
// dropped, so report generation always falls back to a fresh compute.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewReportCache(cfg config.Config, log *zap.Logger) *ReportCache {
	c := &ReportCache{
		ttl: time.Duration(cfg.ReportCacheTTLSeconds) * time.Second,
		log: log.Named("cache.report"),
	}

	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return c
	}

	c.client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
		DB:       cfg.RedisDB,
	})
	return c
}

func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("report cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

func (c *ReportCache) Set(ctx context.Context, key string, payload []byte) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
