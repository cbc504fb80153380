package cache

import (
	"cmp"
	"context"
	"fmt"
	"net"
	"time"

	"github.com/arifmahmud/sheetboard/internal/config"
	"github.com/redis/go-redis/v9"
)

const (
	defaultRowsTTL  = time.Minute
	dialPingTimeout = 5 * time.Second
)

// dialRedis connects to the configured redis instance and verifies it is
// reachable before the cache is put in front of the sheets API.
func dialRedis(cfg config.CacheConfig) (*redis.Client, error) {
	var opts *redis.Options
	if cfg.RedisURL != "" {
		parsed, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     net.JoinHostPort(cmp.Or(cfg.RedisHost, "127.0.0.1"), cmp.Or(cfg.RedisPort, "6379")),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), dialPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

// rowsTTL returns the configured row TTL, guarding against zero and negative
// values.
func rowsTTL(cfg config.CacheConfig) time.Duration {
	if cfg.RowsTTLSeconds > 0 {
		return time.Duration(cfg.RowsTTLSeconds) * time.Second
	}
	return defaultRowsTTL
}
