package searchcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/interfaces"
	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "frtally:search:"

// Redis is a search cache shared between processes through Redis
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the Redis server at url (redis://...) and verifies the connection
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse redis URL")
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, goerr.Wrap(err, "redis ping failed", goerr.V("addr", opts.Addr))
	}

	return &Redis{client: client, ttl: ttl}, nil
}

// GetSearch implements interfaces.SearchCache
func (r *Redis) GetSearch(ctx context.Context, key string) (*model.SearchResult, error) {
	data, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get cached search", goerr.V("key", key))
	}

	var result model.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode cached search", goerr.V("key", key))
	}
	return &result, nil
}

// PutSearch implements interfaces.SearchCache
func (r *Redis) PutSearch(ctx context.Context, key string, result *model.SearchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return goerr.Wrap(err, "failed to encode search result", goerr.V("key", key))
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, data, r.ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to cache search", goerr.V("key", key))
	}
	return nil
}

// Close closes the Redis connection
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ interfaces.SearchCache = (*Redis)(nil)
