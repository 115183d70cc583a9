package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisKV {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedis(client, nil)
}

func TestRedisKVSetGet(t *testing.T) {
	kv := newTestRedis(t)
	ctx := context.Background()

	kv.Set(ctx, "coach:goals:1", `{"dailyContacts":5}`)

	v, ok := kv.Get(ctx, "coach:goals:1")
	require.True(t, ok)
	assert.Equal(t, `{"dailyContacts":5}`, v)
}

func TestRedisKVGetMissing(t *testing.T) {
	kv := newTestRedis(t)

	v, ok := kv.Get(context.Background(), "coach:goals:999")
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestRedisKVOverwrite(t *testing.T) {
	kv := newTestRedis(t)
	ctx := context.Background()

	kv.Set(ctx, "k", "one")
	kv.Set(ctx, "k", "two")

	v, ok := kv.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, "two", v)
}
