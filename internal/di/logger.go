package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/pkg/logger"
)

// LoggerModule provides logging dependencies
var LoggerModule = fx.Module("logger",
	fx.Provide(provideLogger),
)

// provideLogger builds the process logger. The returned level stays
// adjustable for config reloads.
func provideLogger(app *config.AppConfig, cfg *config.LogConfig) (*zap.Logger, zap.AtomicLevel, error) {
	return logger.NewWithLevel(logger.Config{
		Level:       cfg.Level,
		Development: app.Debug,
		Encoding:    cfg.Encoding,
	})
}
