package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/service/searchcache"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Cache holds search cache configuration
type Cache struct {
	RedisURL string
	TTL      time.Duration
}

// Flags returns CLI flags for Cache configuration
func (c *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-url",
			Usage:       "Redis URL for the search cache (in-process cache when empty)",
			Category:    "Cache",
			Sources:     cli.EnvVars("FRTALLY_REDIS_URL"),
			Destination: &c.RedisURL,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "How long a registry search is reused; 0 disables the cache",
			Category:    "Cache",
			Value:       10 * time.Minute,
			Sources:     cli.EnvVars("FRTALLY_CACHE_TTL"),
			Destination: &c.TTL,
		},
	}
}

// Configure wraps next with the configured cache. The returned func releases the cache and is
// never nil.
func (c *Cache) Configure(ctx context.Context, next interfaces.Registry, m *metrics.Metrics) (interfaces.Registry, func() error, error) {
	noop := func() error { return nil }
	if c.TTL <= 0 {
		ctxlog.From(ctx).Debug("Search cache disabled")
		return next, noop, nil
	}

	if c.RedisURL == "" {
		return searchcache.New(next, searchcache.NewMemory(c.TTL), searchcache.WithMetrics(m)), noop, nil
	}

	cache, err := searchcache.NewRedis(ctx, c.RedisURL, c.TTL)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to init redis search cache")
	}
	return searchcache.New(next, cache, searchcache.WithMetrics(m)), cache.Close, nil
}

// LogValue returns structured log value
func (c Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_redis_url", c.RedisURL != ""),
		slog.Duration("ttl", c.TTL),
	)
}
