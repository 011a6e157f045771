package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
)

// AppModule aggregates all application modules
var AppModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	DAOModule,        // DAO layer (between Database and Repository)
	CacheModule,      // Redis or in-process document cache
	RepositoryModule, // Repository layer (delegates to DAO)
	SecurityModule,
	MiddlewareModule,
	WebSocketModule,
	ServiceModule,
	ControllerModule,
	JobsModule,
	HTTPServerModule,
)

// PrintBanner prints the application startup banner
func PrintBanner(cfg *config.Config, logger *zap.Logger) {
	logger.Info("===========================================")
	logger.Info("        Refer Me Group - Content API       ")
	logger.Info("===========================================")
	logger.Info("Application Info",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	logger.Info("Storage Config",
		zap.String("driver", cfg.Database.Driver),
		zap.Bool("redis", cfg.Redis.Enabled),
		zap.Bool("websocket", cfg.WebSocket.Enabled),
		zap.Bool("snapshots", cfg.Snapshot.Enabled),
	)
	logger.Info("===========================================")
}
