package di

import (
	"context"
	"fmt"

	"go.uber.org/fx"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	httpctrl "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/controller/http"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/middleware"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
)

// ControllerModule provides HTTP controller dependencies
var ControllerModule = fx.Module("controller",
	fx.Provide(
		provideReadinessChecks,
		provideAuthController,
		provideContentController,
		provideAboutController,
		provideHomeController,
		provideBlogController,
		provideEventController,
		provideContactController,
		provideSystemController,
	),
)

// provideReadinessChecks pings the configured stores
func provideReadinessChecks(sqlDB *SQLDatabase, mongoDB *MongoDatabase, redisConn *RedisConnection) []httpctrl.ReadinessCheck {
	var checks []httpctrl.ReadinessCheck
	if sqlDB.DB != nil {
		checks = append(checks, httpctrl.ReadinessCheck{
			Name: "database",
			Check: func(ctx context.Context) error {
				db, err := sqlDB.DB.DB()
				if err != nil {
					return err
				}
				return db.PingContext(ctx)
			},
		})
	}
	if mongoDB.Client != nil {
		checks = append(checks, httpctrl.ReadinessCheck{
			Name: "database",
			Check: func(ctx context.Context) error {
				return mongoDB.Client.Ping(ctx, nil)
			},
		})
	}
	if redisConn.Client != nil {
		checks = append(checks, httpctrl.ReadinessCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				if err := redisConn.Client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("redis ping: %w", err)
				}
				return nil
			},
		})
	}
	return checks
}

func provideAuthController(authService service.AuthService) *httpctrl.AuthController {
	return httpctrl.NewAuthController(authService)
}

func provideContentController(
	contentService service.ContentService,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.ServerConfig,
) *httpctrl.ContentController {
	return httpctrl.NewContentController(contentService, authMiddleware, cfg.MaxBodyBytes)
}

func provideAboutController(aboutService service.AboutService, authMiddleware *middleware.AuthMiddleware) *httpctrl.AboutController {
	return httpctrl.NewAboutController(aboutService, authMiddleware)
}

func provideHomeController(homeService service.HomeService, authMiddleware *middleware.AuthMiddleware) *httpctrl.HomeController {
	return httpctrl.NewHomeController(homeService, authMiddleware)
}

func provideBlogController(blogService service.BlogService, authMiddleware *middleware.AuthMiddleware) *httpctrl.BlogController {
	return httpctrl.NewBlogController(blogService, authMiddleware)
}

func provideEventController(eventService service.EventService, authMiddleware *middleware.AuthMiddleware) *httpctrl.EventController {
	return httpctrl.NewEventController(eventService, authMiddleware)
}

func provideContactController(contactService service.ContactService, authMiddleware *middleware.AuthMiddleware) *httpctrl.ContactController {
	return httpctrl.NewContactController(contactService, authMiddleware)
}

func provideSystemController(
	app *config.AppConfig,
	checks []httpctrl.ReadinessCheck,
	metrics *observability.MetricsProvider,
	snapshots service.SnapshotService,
	seeder service.Seeder,
	authMiddleware *middleware.AuthMiddleware,
) *httpctrl.SystemController {
	return httpctrl.NewSystemController(app.Version, checks, metrics, snapshots, seeder, authMiddleware)
}
