package di

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	repoimpl "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository/impl"
)

// RedisConnection wraps the Redis client. Client is nil when Redis is disabled.
type RedisConnection struct {
	Client *redis.Client
}

// CacheModule provides the Redis connection and the document cache
var CacheModule = fx.Module("cache",
	fx.Provide(
		provideRedisClient,
		provideCache,
		provideCacheOptions,
	),
)

func provideRedisClient(lc fx.Lifecycle, cfg *config.RedisConfig, logger *zap.Logger) (*RedisConnection, error) {
	if !cfg.Enabled {
		logger.Info("Redis disabled, using in-process cache")
		return &RedisConnection{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing Redis connection")
			return client.Close()
		},
	})

	return &RedisConnection{Client: client}, nil
}

func provideCache(conn *RedisConnection) cache.Cache {
	if conn.Client == nil {
		return cache.NewMemoryCache()
	}
	return cache.NewRedisCache(conn.Client)
}

func provideCacheOptions(cfg *config.CacheConfig) repoimpl.CacheOptions {
	return repoimpl.CacheOptions{Prefix: cfg.Prefix, TTL: cfg.TTL}
}
