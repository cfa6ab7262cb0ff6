package kv

import (
	"context"
	"log/slog"

	"placebook/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps values as plain Redis strings without expiry
type redisStore struct {
	client *redis.Client
	prefix string
	logger *slog.Logger
}

// NewRedisStore connects to Redis and verifies the connection with PING
func NewRedisStore(ctx context.Context, opts *redis.Options, prefix string, logger *slog.Logger) (repository.KeyValueStore, error) {
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "ping redis %s", opts.Addr)
	}

	return &redisStore{client: client, prefix: prefix, logger: logger}, nil
}

func (s *redisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "redis get %s", key)
	}

	return value, nil
}

func (s *redisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return errors.Wrapf(err, "redis set %s", key)
	}

	return nil
}

func (s *redisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Wrapf(err, "redis del %s", key)
	}

	return nil
}

func (s *redisStore) Close() error {
	s.logger.Debug("[RedisStore] Closing client")

	return errors.WithStack(s.client.Close())
}
