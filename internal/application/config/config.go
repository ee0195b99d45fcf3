package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"email_size_analyzer/internal/domain/adaptors"

	"github.com/joho/godotenv"
)

type CacheBackend string

const (
	CacheNone   CacheBackend = "none"
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
)

// Savings overrides the per-unit byte estimates attached to suggestions.
// Zero keeps the built-in default.
type Savings struct {
	Table        uint64
	InlineStyle  uint64
	NestingLevel uint64
	EmptySpan    uint64
	Comment      uint64
	Nbsp         uint64
	Word         uint64
}

type AppConfig struct {
	LogLevel    string
	DebugMode   bool
	MetricsHost string
	PprofHost   string

	BatchWorkers int

	CacheBackend    CacheBackend
	CacheTTL        time.Duration
	CacheMaxEntries int
	RedisAddr       string
	RedisPassword   string
	RedisDB         int

	ImageFetchTimeout      time.Duration
	ImageFetchMaxBytes     int64
	ImageFetchAllowPrivate bool

	Savings Savings
}

func NewAppConfig() (*AppConfig, error) {
	err := godotenv.Load(`config.env`)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return fromEnv()
}

func fromEnv() (*AppConfig, error) {
	var errMsg []string
	cfg := AppConfig{}
	cfg.LogLevel = os.Getenv("APP_LOG_LEVEL")
	cfg.DebugMode = os.Getenv("APP_ENABLE_DEBUG") == "true"
	cfg.MetricsHost = os.Getenv("HTTP_APP_METRICS_HOST")
	cfg.PprofHost = envOr("HTTP_APP_PPROF_HOST", ":6060")
	cfg.CacheBackend = CacheBackend(envOr("CACHE_BACKEND", string(CacheMemory)))
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.ImageFetchAllowPrivate = os.Getenv("IMAGE_FETCH_ALLOW_PRIVATE") == "true"

	parseInt := func(envVar string, def int) int {
		value := os.Getenv(envVar)
		if value == "" {
			return def
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			errMsg = append(errMsg, fmt.Sprintf("%s: invalid integer %q", envVar, value))
			return def
		}
		return n
	}

	parseUint := func(envVar string) uint64 {
		value := os.Getenv(envVar)
		if value == "" {
			return 0
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			errMsg = append(errMsg, fmt.Sprintf("%s: invalid unsigned integer %q", envVar, value))
			return 0
		}
		return n
	}

	parseDuration := func(envVar string, def time.Duration) time.Duration {
		value := os.Getenv(envVar)
		if value == "" {
			return def
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			errMsg = append(errMsg, fmt.Sprintf("%s: invalid duration format: %v", envVar, err))
			return def
		}
		return d
	}

	cfg.BatchWorkers = parseInt("ANALYZER_BATCH_WORKERS", runtime.NumCPU())
	cfg.CacheTTL = parseDuration("CACHE_TTL_DURATION", 10*time.Minute)
	cfg.CacheMaxEntries = parseInt("CACHE_MAX_ENTRIES", 1024)
	cfg.RedisDB = parseInt("REDIS_DB", 0)
	cfg.ImageFetchTimeout = parseDuration("IMAGE_FETCH_TIMEOUT_DURATION", 10*time.Second)
	cfg.ImageFetchMaxBytes = int64(parseInt("IMAGE_FETCH_MAX_BYTES", 20*1024*1024))

	cfg.Savings = Savings{
		Table:        parseUint("SAVINGS_BYTES_PER_TABLE"),
		InlineStyle:  parseUint("SAVINGS_BYTES_PER_INLINE_STYLE"),
		NestingLevel: parseUint("SAVINGS_BYTES_PER_NESTING_LEVEL"),
		EmptySpan:    parseUint("SAVINGS_BYTES_PER_EMPTY_SPAN"),
		Comment:      parseUint("SAVINGS_BYTES_PER_COMMENT"),
		Nbsp:         parseUint("SAVINGS_BYTES_PER_NBSP"),
		Word:         parseUint("SAVINGS_BYTES_PER_WORD"),
	}

	errMsg = append(errMsg, validate(&cfg)...)
	if len(errMsg) != 0 {
		return nil, fmt.Errorf(`validation failed: %s`, strings.Join(errMsg, "\n"))
	}

	return &cfg, nil
}

func validate(cfg *AppConfig) []string {
	var errMsg []string
	if cfg.LogLevel == "" {
		errMsg = append(errMsg, `log level is empty`)
	} else if !adaptors.LogLevel(strings.ToLower(cfg.LogLevel)).Valid() {
		errMsg = append(errMsg, fmt.Sprintf(`log level %q is not supported`, cfg.LogLevel))
	}

	if cfg.MetricsHost == "" {
		errMsg = append(errMsg, `metrics host is empty`)
	}

	if cfg.BatchWorkers < 1 {
		errMsg = append(errMsg, `batch workers must be at least 1`)
	}

	switch cfg.CacheBackend {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if cfg.RedisAddr == "" {
			errMsg = append(errMsg, `redis address is empty`)
		}
	default:
		errMsg = append(errMsg, fmt.Sprintf(`cache backend %q is not supported`, cfg.CacheBackend))
	}

	if cfg.ImageFetchMaxBytes <= 0 {
		errMsg = append(errMsg, `image fetch max bytes must be positive`)
	}

	return errMsg
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
