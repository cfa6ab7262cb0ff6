package kv

import (
	"context"
	"log/slog"

	"placebook/config"
	"placebook/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Open builds the store selected by storage.provider
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.KeyValueStore, error) {
	storage := cfg.Storage

	switch storage.Provider {
	case "", config.StorageProviderMemory:
		logger.Info("Using in-memory key-value store")

		return NewMemoryStore(), nil

	case config.StorageProviderBlob:
		if storage.BlobURL == "" {
			return nil, errors.New("blob url is required for blob provider")
		}
		logger.Info("Using blob key-value store", slog.String("url", storage.BlobURL))

		return NewBlobStore(ctx, storage.BlobURL, storage.KeyPrefix, logger)

	case config.StorageProviderRedis:
		if storage.Redis.Addr == "" {
			return nil, errors.New("redis addr is required for redis provider")
		}
		logger.Info("Using redis key-value store",
			slog.String("addr", storage.Redis.Addr),
			slog.Int("db", storage.Redis.DB),
		)

		return NewRedisStore(ctx, &redis.Options{
			Addr:     storage.Redis.Addr,
			Password: storage.Redis.Password,
			DB:       storage.Redis.DB,
		}, storage.KeyPrefix, logger)

	default:
		return nil, errors.Errorf("unknown storage provider: %s", storage.Provider)
	}
}

// StoreParams holds dependencies for the key-value store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore opens the configured store and closes it on shutdown
func NewStore(params StoreParams) (repository.KeyValueStore, error) {
	store, err := Open(context.Background(), params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing key-value store")

			return store.Close()
		},
	})

	return store, nil
}

// Module provides the key-value store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
