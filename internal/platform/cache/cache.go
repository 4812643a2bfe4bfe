// Package cache implements a Redis backed response cache with a fixed
// time to live per entry.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

var (
	cacheHitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"prefix"},
	)
	cacheMissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"prefix"},
	)
)

func init() {
	prometheus.MustRegister(cacheHitsTotal)
	prometheus.MustRegister(cacheMissesTotal)
}

// Cache is a Redis backed JSON cache. Entries are written once and
// expire after the configured time to live.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns new Cache writing entries with provided time to live.
func New(client *redis.Client, ttl time.Duration) Cache {
	return Cache{
		client: client,
		ttl:    ttl,
	}
}

// Get reads the cached value under key into dest. It reports whether
// the key was present.
func (c Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		cacheMissesTotal.WithLabelValues(keyPrefix(key)).Inc()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't read cache key %q: %w", key, err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("can't decode cache key %q: %w", key, err)
	}

	cacheHitsTotal.WithLabelValues(keyPrefix(key)).Inc()

	return true, nil
}

// Set stores value under key unless the key already exists. Entries
// expire after the cache time to live and are never overwritten before
// that.
func (c Cache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("can't encode cache key %q: %w", key, err)
	}

	if err := c.client.SetNX(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("can't write cache key %q: %w", key, err)
	}

	return nil
}

func keyPrefix(key string) string {
	prefix, _, found := strings.Cut(key, ":")
	if !found {
		return key
	}
	return prefix
}
