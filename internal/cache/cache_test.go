package cache

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	a := url.Values{}
	a.Set("originLocationCode", "JFK")
	a.Set("destinationLocationCode", "LHR")
	a.Set("max", "50")

	b := url.Values{}
	b.Set("max", "50")
	b.Set("destinationLocationCode", "LHR")
	b.Set("originLocationCode", "JFK")

	c := url.Values{}
	c.Set("originLocationCode", "JFK")
	c.Set("destinationLocationCode", "LGW")
	c.Set("max", "50")

	t.Run("insertion order does not matter", func(t *testing.T) {
		assert.Equal(t, Key(a), Key(b))
	})

	t.Run("different queries differ", func(t *testing.T) {
		assert.NotEqual(t, Key(a), Key(c))
	})

	t.Run("namespaced sha256", func(t *testing.T) {
		key := Key(a)
		assert.True(t, strings.HasPrefix(key, "flight-offers:"))
		assert.Len(t, strings.TrimPrefix(key, "flight-offers:"), 64)
	})
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	params := url.Values{"originLocationCode": {"JFK"}}

	require.NoError(t, c.Set(context.Background(), params, []byte(`{"data":[]}`)))

	body, found := c.Get(context.Background(), params)
	assert.False(t, found)
	assert.Nil(t, body)
	assert.NoError(t, c.Close())
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewRedisCacheWithClient(client, time.Minute)
	defer c.Close()

	params := url.Values{"originLocationCode": {"JFK"}}

	body, found := c.Get(context.Background(), params)
	assert.False(t, found)
	assert.Nil(t, body)
	assert.Error(t, c.Set(context.Background(), params, []byte(`{"data":[]}`)))
}

func TestNewRedisCache_PingFailure(t *testing.T) {
	_, err := NewRedisCache(RedisConfig{Addr: "127.0.0.1:1", TTL: time.Minute})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping 127.0.0.1:1")
}
