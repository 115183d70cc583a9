package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const opTimeout = 2 * time.Second

// RedisKV persists values in Redis without expiry; coach state has no TTL.
type RedisKV struct {
	client *redis.Client
	log    *zap.SugaredLogger
}

// NewRedis wraps an existing Redis client. The logger may be nil.
func NewRedis(client *redis.Client, log *zap.SugaredLogger) *RedisKV {
	return &RedisKV{client: client, log: log}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	v, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		if r.log != nil {
			r.log.Warnf("kv get failed key=%s err=%v", key, err)
		}
		return "", false
	}
	return v, true
}

func (r *RedisKV) Set(ctx context.Context, key, value string) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		if r.log != nil {
			r.log.Warnf("kv set failed key=%s err=%v", key, err)
		}
	}
}
