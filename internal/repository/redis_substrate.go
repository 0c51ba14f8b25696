package repository

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisSubstrate 将进度文档存为 redis 字符串，TTL 为 0 表示永不过期
type RedisSubstrate struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSubstrate(rdb *redis.Client, ttl time.Duration) *RedisSubstrate {
	return &RedisSubstrate{Client: rdb, TTL: ttl}
}

func (r *RedisSubstrate) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisSubstrate) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, key, value, r.TTL).Err()
}
