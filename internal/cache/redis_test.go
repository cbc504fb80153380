package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arifmahmud/sheetboard/internal/config"
)

func TestRowsTTL(t *testing.T) {
	assert.Equal(t, 30*time.Second, rowsTTL(config.CacheConfig{RowsTTLSeconds: 30}))
	assert.Equal(t, defaultRowsTTL, rowsTTL(config.CacheConfig{}))
	assert.Equal(t, defaultRowsTTL, rowsTTL(config.CacheConfig{RowsTTLSeconds: -5}))
}

func TestDialRedis_RejectsBadURL(t *testing.T) {
	_, err := dialRedis(config.CacheConfig{RedisURL: "not-a-redis-url"})
	assert.Error(t, err)
}

func TestNewRowCache_DisabledIsNoop(t *testing.T) {
	c, err := NewRowCache(config.CacheConfig{Enabled: false})
	assert.NoError(t, err)
	assert.IsType(t, &noopRowCache{}, c)
}
