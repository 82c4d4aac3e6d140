package storage

import (
	"context"
	"errors"
	"time"

	"github.com/recicla365/app-ecopontos/internal/redisclient"
	"github.com/redis/go-redis/v9"
)

// RedisBackend stores each key as a Redis string
type RedisBackend struct {
	client *redisclient.Client
	prefix string
}

// NewRedisBackend creates a RedisBackend. Keys are stored as prefix+key.
func NewRedisBackend(client *redisclient.Client, prefix string) *RedisBackend {
	return &RedisBackend{client: client, prefix: prefix}
}

func (r *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, r.prefix+key, value, ttl).Err()
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefix+key).Err()
}

func (r *RedisBackend) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
