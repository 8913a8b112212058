package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const pingTimeout = 5 * time.Second

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// RedisCache keeps offer bodies verbatim so a hit is byte-identical to the
// upstream response it replaces.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects and pings the server; an unreachable server is an
// error rather than a silently disabled cache.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}

	return NewRedisCacheWithClient(client, cfg.TTL), nil
}

func NewRedisCacheWithClient(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, params url.Values) ([]byte, bool) {
	key := Key(params)

	body, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return body, true
	case errors.Is(err, redis.Nil):
	default:
		logrus.WithError(err).WithField("key", key).Warn("Redis read failed, treating as miss")
	}
	return nil, false
}

func (c *RedisCache) Set(ctx context.Context, params url.Values, body []byte) error {
	return c.client.Set(ctx, Key(params), body, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}
