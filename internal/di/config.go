package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/logger"
)

// ConfigModule provides configuration dependencies
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.Load,
		provideAppConfig,
		provideLogConfig,
		provideServerConfig,
		provideDatabaseConfig,
		provideRedisConfig,
		provideCacheConfig,
		provideJWTConfig,
		provideAdminConfig,
		provideCORSConfig,
		provideWebSocketConfig,
		provideSnapshotConfig,
		provideSeedConfig,
		provideRateLimitConfig,
		provideMetricsConfig,
	),
	fx.Invoke(watchConfig),
)

func provideAppConfig(cfg *config.Config) *config.AppConfig {
	return &cfg.App
}

func provideLogConfig(cfg *config.Config) *config.LogConfig {
	return &cfg.Log
}

func provideServerConfig(cfg *config.Config) *config.ServerConfig {
	return &cfg.Server
}

func provideDatabaseConfig(cfg *config.Config) *config.DatabaseConfig {
	return &cfg.Database
}

func provideRedisConfig(cfg *config.Config) *config.RedisConfig {
	return &cfg.Redis
}

func provideCacheConfig(cfg *config.Config) *config.CacheConfig {
	return &cfg.Cache
}

func provideJWTConfig(cfg *config.Config) *config.JWTConfig {
	return &cfg.JWT
}

func provideAdminConfig(cfg *config.Config) *config.AdminConfig {
	return &cfg.Admin
}

func provideCORSConfig(cfg *config.Config) *config.CORSConfig {
	return &cfg.CORS
}

func provideWebSocketConfig(cfg *config.Config) *config.WebSocketConfig {
	return &cfg.WebSocket
}

func provideSnapshotConfig(cfg *config.Config) *config.SnapshotConfig {
	return &cfg.Snapshot
}

func provideSeedConfig(cfg *config.Config) *config.SeedConfig {
	return &cfg.Seed
}

func provideRateLimitConfig(cfg *config.Config) *config.RateLimitConfig {
	return &cfg.RateLimit
}

func provideMetricsConfig() *observability.MetricsConfig {
	return observability.DefaultMetricsConfig()
}

// watchConfig re-applies the log level when the config file changes.
// Every other setting needs a restart.
func watchConfig(cfg *config.Config, level zap.AtomicLevel, log *zap.Logger) {
	cfg.OnChange(func(next *config.Config) {
		newLevel := logger.ParseLevel(next.Log.Level)
		if newLevel == level.Level() {
			return
		}
		level.SetLevel(newLevel)
		log.Info("Log level changed", zap.Stringer("level", newLevel))
	}, func(err error) {
		log.Warn("Ignoring invalid config reload", zap.Error(err))
	})
}
