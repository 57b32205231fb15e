package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"scoutahead/internal/model"
)

// bundleKeyPrefix namespaces analytics documents in Redis.
const bundleKeyPrefix = "scout:series:"

// RedisStore is a BundleStore backed by Redis, for deployments where bundles
// are shared between the ingest host and report consumers instead of living
// in a local SQLite file.
type RedisStore struct {
	client *redis.Client
}

// OpenRedis connects to Redis at the given address ("host:port" or a
// redis:// URL) and verifies the connection.
func OpenRedis(ctx context.Context, addr string) (*RedisStore, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		// Plain host:port form.
		opts = &redis.Options{Addr: addr}
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Close releases the connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}

// PutBundle stores the bundle JSON under scout:series:<id>. Implements
// runner.BundleStore.
func (r *RedisStore) PutBundle(ctx context.Context, bundle *model.SeriesAnalytics) error {
	doc, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("encode bundle %s: %w", bundle.SeriesID, err)
	}
	return r.client.Set(ctx, bundleKeyPrefix+bundle.SeriesID, doc, 0).Err()
}

// GetBundle loads a bundle, or nil when the key is absent.
func (r *RedisStore) GetBundle(ctx context.Context, seriesID string) (*model.SeriesAnalytics, error) {
	doc, err := r.client.Get(ctx, bundleKeyPrefix+seriesID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var bundle model.SeriesAnalytics
	if err := json.Unmarshal(doc, &bundle); err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", seriesID, err)
	}
	return &bundle, nil
}
