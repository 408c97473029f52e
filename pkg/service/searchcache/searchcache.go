// Package searchcache keeps registry search results so repeated pulls over the same dates and
// conditions do not hit the registry again.
package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
)

// Registry wraps a registry with a search cache. Cache failures are logged and fall through to
// the wrapped registry.
type Registry struct {
	next    interfaces.Registry
	cache   interfaces.SearchCache
	metrics *metrics.Metrics
}

// Option configures a caching Registry
type Option func(*Registry)

// WithMetrics records cache lookups and registry search latency
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Registry) {
		r.metrics = m
	}
}

// New wraps next with cache
func New(next interfaces.Registry, cache interfaces.SearchCache, opts ...Option) *Registry {
	r := &Registry{next: next, cache: cache}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the cache key of a search URL
func Key(searchURL string) string {
	sum := sha256.Sum256([]byte(searchURL))
	return hex.EncodeToString(sum[:])
}

// SearchURL implements interfaces.Registry
func (r *Registry) SearchURL(query *model.Query) string {
	return r.next.SearchURL(query)
}

// Search implements interfaces.Registry
func (r *Registry) Search(ctx context.Context, query *model.Query) (*model.SearchResult, error) {
	logger := ctxlog.From(ctx)
	key := Key(r.next.SearchURL(query))

	cached, err := r.cache.GetSearch(ctx, key)
	switch {
	case err != nil:
		r.metrics.IncrementCacheLookup("error")
		logger.Warn("Search cache lookup failed", "error", err, "key", key)
	case cached != nil:
		r.metrics.IncrementCacheLookup("hit")
		logger.Debug("Search cache hit", "key", key, "records", len(cached.Notices))
		return cached, nil
	default:
		r.metrics.IncrementCacheLookup("miss")
	}

	start := time.Now()
	result, err := r.next.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	r.metrics.ObserveSearch(time.Since(start))

	if err := r.cache.PutSearch(ctx, key, result); err != nil {
		logger.Warn("Failed to store search result in cache", "error", err, "key", key)
	}
	return result, nil
}

var _ interfaces.Registry = (*Registry)(nil)
