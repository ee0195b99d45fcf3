package adaptors

import (
	"context"
	"encoding/json"
	"time"

	"email_size_analyzer/internal/domain/models"
	"email_size_analyzer/internal/pkg/errors"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const defaultVerdictPrefix = "email-size:verdict:"

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

type RedisVerdictCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	log    *log.Logger
}

func NewRedisVerdictCache(ctx context.Context, cfg RedisConfig, log *log.Logger) (*RedisVerdictCache, error) {
	if cfg.Addr == "" {
		return nil, errors.New(`redis address required`)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, `redis ping failed`)
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultVerdictPrefix
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}

	return &RedisVerdictCache{
		client: client,
		ttl:    ttl,
		prefix: prefix,
		log:    log,
	}, nil
}

func (c *RedisVerdictCache) Get(ctx context.Context, key string) (*models.SizeVerdict, bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, `failed to read cached verdict`)
	}

	var verdict models.SizeVerdict
	if err := json.Unmarshal(raw, &verdict); err != nil {
		c.log.WithError(err).Warn(`dropping undecodable cached verdict`)
		_ = c.client.Del(ctx, c.prefix+key).Err()
		return nil, false, nil
	}
	return &verdict, true, nil
}

func (c *RedisVerdictCache) Set(ctx context.Context, key string, verdict *models.SizeVerdict) error {
	data, err := json.Marshal(verdict)
	if err != nil {
		return errors.Wrap(err, `failed to encode verdict`)
	}
	if err := c.client.Set(ctx, c.prefix+key, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, `failed to store verdict`)
	}
	return nil
}

func (c *RedisVerdictCache) Close() error {
	return c.client.Close()
}
