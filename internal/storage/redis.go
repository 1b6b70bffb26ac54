package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores each blob as a plain Redis string.  Keys are namespaced
// with an optional prefix so several deployments can share one Redis
// database.  Values never expire; the stores own their keys for the life
// of the application.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV returns a RedisKV backed by the given client.  The client
// must be non-nil and already connected; use config.NewRedisClient to
// construct one.
func NewRedisKV(client *redis.Client, prefix string) *RedisKV {
	if client == nil {
		panic("nil redis client passed to NewRedisKV")
	}
	return &RedisKV{client: client, prefix: prefix}
}

func (s *RedisKV) key(k string) string {
	if s.prefix == "" {
		return k
	}
	return s.prefix + ":" + k
}

// Get fetches the blob stored under key.  A Redis nil reply maps to
// ErrKeyNotFound.
func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

// Set writes the blob under key with no expiration.
func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
