package config

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("HTTP_APP_METRICS_HOST", ":9090")
}

func TestFromEnv_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := fromEnv()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, ":6060", cfg.PprofHost)
	assert.Equal(t, runtime.NumCPU(), cfg.BatchWorkers)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ImageFetchTimeout)
	assert.Equal(t, int64(20*1024*1024), cfg.ImageFetchMaxBytes)
	assert.False(t, cfg.ImageFetchAllowPrivate)
	assert.Equal(t, Savings{}, cfg.Savings)
}

func TestFromEnv_Overrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("APP_ENABLE_DEBUG", "true")
	t.Setenv("ANALYZER_BATCH_WORKERS", "3")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CACHE_TTL_DURATION", "90s")
	t.Setenv("SAVINGS_BYTES_PER_TABLE", "250")
	t.Setenv("IMAGE_FETCH_ALLOW_PRIVATE", "true")

	cfg, err := fromEnv()

	require.NoError(t, err)
	assert.True(t, cfg.DebugMode)
	assert.Equal(t, 3, cfg.BatchWorkers)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, uint64(250), cfg.Savings.Table)
	assert.True(t, cfg.ImageFetchAllowPrivate)
}

func TestFromEnv_AggregatesErrors(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "loud")
	t.Setenv("HTTP_APP_METRICS_HOST", "")
	t.Setenv("ANALYZER_BATCH_WORKERS", "many")
	t.Setenv("CACHE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("CACHE_TTL_DURATION", "soon")

	cfg, err := fromEnv()

	assert.Nil(t, cfg)
	require.Error(t, err)
	for _, want := range []string{
		`log level "loud" is not supported`,
		`metrics host is empty`,
		`ANALYZER_BATCH_WORKERS`,
		`redis address is empty`,
		`CACHE_TTL_DURATION`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestFromEnv_UnknownCacheBackend(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("CACHE_BACKEND", "memcached")

	_, err := fromEnv()

	assert.ErrorContains(t, err, `cache backend "memcached" is not supported`)
}
