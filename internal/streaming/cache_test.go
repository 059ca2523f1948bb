package streaming

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCache_GetSet(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	cache := NewRedisCache(client, 10*time.Minute)
	ctx := context.Background()

	rmock.ExpectGet("streaming_cache:k1").RedisNil()
	rmock.ExpectSet("streaming_cache:k1", []byte(`{"id":"1"}`), 10*time.Minute).SetVal("OK")
	rmock.ExpectGet("streaming_cache:k1").SetVal(`{"id":"1"}`)

	_, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k1", []byte(`{"id":"1"}`)))

	body, ok, err := cache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `{"id":"1"}`, string(body))

	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRedisCache_GetError(t *testing.T) {
	client, rmock := redismock.NewClientMock()
	cache := NewRedisCache(client, time.Minute)

	rmock.ExpectGet("streaming_cache:k1").SetErr(errors.New("connection refused"))

	_, ok, err := cache.Get(context.Background(), "k1")

	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCacheKey(t *testing.T) {
	a := CacheKey("https://api/me", "token-1")

	assert.Equal(t, a, CacheKey("https://api/me", "token-1"))
	assert.NotEqual(t, a, CacheKey("https://api/me", "token-2"))
	assert.NotContains(t, a, "token-1")
	assert.Len(t, a, 64)
}
