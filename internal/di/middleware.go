package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/resilience"
)

// MiddlewareModule provides middleware and metrics dependencies
var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		provideAuthMiddleware,
		provideMetricsProvider,
		provideRateLimiter,
	),
)

func provideAuthMiddleware(authService service.AuthService) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(authService)
}

func provideMetricsProvider(cfg *observability.MetricsConfig, logger *zap.Logger) *observability.MetricsProvider {
	return observability.NewMetricsProvider(cfg, logger)
}

func provideRateLimiter(cfg *config.RateLimitConfig) *resilience.KeyedLimiter {
	return resilience.NewKeyedLimiter(cfg)
}
