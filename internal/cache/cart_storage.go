package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisDisabled Redis 未启用
var ErrRedisDisabled = errors.New("redis is not enabled")

// RedisCartStorage 基于 Redis 的购物车持久化后端，每次写入刷新过期时间
type RedisCartStorage struct {
	ttl time.Duration
}

// NewCartStorage 创建 Redis 购物车存储，ttl <= 0 表示不过期
func NewCartStorage(ttl time.Duration) (*RedisCartStorage, error) {
	if !Enabled() {
		return nil, ErrRedisDisabled
	}
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCartStorage{ttl: ttl}, nil
}

// Get 读取持久化文档
func (s *RedisCartStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	client := Client()
	if client == nil {
		return nil, false, ErrRedisDisabled
	}
	val, err := client.Get(ctx, Key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set 写入持久化文档
func (s *RedisCartStorage) Set(ctx context.Context, key string, value []byte) error {
	client := Client()
	if client == nil {
		return ErrRedisDisabled
	}
	return client.Set(ctx, Key(key), value, s.ttl).Err()
}

// Remove 删除持久化文档
func (s *RedisCartStorage) Remove(ctx context.Context, key string) error {
	client := Client()
	if client == nil {
		return ErrRedisDisabled
	}
	return client.Del(ctx, Key(key)).Err()
}
