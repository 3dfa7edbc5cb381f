package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore returns a Store that keeps each slot in a Redis string
// key, for deployments that prefer Redis over the embedded SQLite file.
func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func (s *redisStore) slotKey(key string) string {
	return fmt.Sprintf("slot:%s", key)
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.rdb.Get(ctx, s.slotKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("could not read slot %q: %w", key, err)
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.slotKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("could not write slot %q: %w", key, err)
	}
	return nil
}
