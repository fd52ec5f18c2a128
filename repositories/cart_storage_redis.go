package repositories

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisCartStorage persists cart payloads as plain string keys in Redis.
type RedisCartStorage struct {
	client *redis.Client
}

func NewRedisCartStorage(client *redis.Client) *RedisCartStorage {
	return &RedisCartStorage{client: client}
}

func (s *RedisCartStorage) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "read", Err: err}
	}
	return value, true, nil
}

func (s *RedisCartStorage) Write(ctx context.Context, key, value string) error {
	// No TTL: the cart survives until explicitly cleared.
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return &StorageError{Op: "write", Err: err}
	}
	return nil
}

func (s *RedisCartStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}
