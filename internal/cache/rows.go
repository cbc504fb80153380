// Package cache offers an optional redis-backed cache for raw worksheet rows.
// Only fetched rows are cached, never computed dashboard summaries; with
// caching disabled every operation is a cheap noop.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/arifmahmud/sheetboard/internal/config"
	"github.com/arifmahmud/sheetboard/internal/sheets"
	"github.com/redis/go-redis/v9"
)

const (
	rowsKeyPrefix = "sheet:rows:"
	scanBatchSize = 100
)

// RowCache stores worksheet rows for a short TTL so bursts of page loads do
// not hammer the sheets API.
type RowCache interface {
	Get(ctx context.Context, worksheet string) ([]sheets.Record, bool, error)
	Set(ctx context.Context, worksheet string, rows []sheets.Record) error
	InvalidateAll(ctx context.Context) error
}

type redisRowCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRowCache struct{}

// NewRowCache returns a redis cache when enabled in config, otherwise a noop.
func NewRowCache(cfg config.CacheConfig) (RowCache, error) {
	if !cfg.Enabled {
		return &noopRowCache{}, nil
	}

	client, err := dialRedis(cfg)
	if err != nil {
		return nil, err
	}

	return &redisRowCache{client: client, ttl: rowsTTL(cfg)}, nil
}

func NewNoopRowCache() RowCache {
	return &noopRowCache{}
}

func (c *redisRowCache) Get(ctx context.Context, worksheet string) ([]sheets.Record, bool, error) {
	payload, err := c.client.Get(ctx, buildRowsKey(worksheet)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var rows []sheets.Record
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, false, fmt.Errorf("decode cached rows: %w", err)
	}

	return rows, true, nil
}

func (c *redisRowCache) Set(ctx context.Context, worksheet string, rows []sheets.Record) error {
	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encode rows for cache: %w", err)
	}

	if err := c.client.Set(ctx, buildRowsKey(worksheet), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisRowCache) InvalidateAll(ctx context.Context) error {
	var cursor uint64
	for {
		keys, nextCursor, err := c.client.Scan(ctx, cursor, rowsKeyPrefix+"*", scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("redis scan failed: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis delete failed: %w", err)
			}
		}

		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	return nil
}

func (n *noopRowCache) Get(ctx context.Context, worksheet string) ([]sheets.Record, bool, error) {
	return nil, false, nil
}

func (n *noopRowCache) Set(ctx context.Context, worksheet string, rows []sheets.Record) error {
	return nil
}

func (n *noopRowCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildRowsKey(worksheet string) string {
	sum := sha1.Sum([]byte(worksheet))
	return rowsKeyPrefix + hex.EncodeToString(sum[:])
}
