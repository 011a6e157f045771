package di

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service"
	serviceimpl "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/service/impl"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/observability"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/security"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/websocket"
)

// ServiceModule provides service layer dependencies
var ServiceModule = fx.Module("service",
	fx.Provide(
		provideChangePublisher,
		provideContentService,
		provideAboutService,
		provideHomeService,
		provideBlogService,
		provideEventService,
		provideContactService,
		provideAuthService,
		provideSnapshotService,
		provideSeeder,
	),
	fx.Invoke(seedContent),
)

// provideChangePublisher fans content changes out to live renderers and metrics
func provideChangePublisher(hub *websocket.Hub, metrics *observability.MetricsProvider) service.ChangePublisher {
	return service.Publishers{hub, metrics}
}

func provideContentService(repo repository.ContentRepository, pub service.ChangePublisher, logger *zap.Logger) service.ContentService {
	return serviceimpl.NewContentService(repo, pub, logger)
}

func provideAboutService(repo repository.ContentRepository, pub service.ChangePublisher, logger *zap.Logger) service.AboutService {
	return serviceimpl.NewAboutService(repo, pub, logger)
}

func provideHomeService(repo repository.ContentRepository, pub service.ChangePublisher, logger *zap.Logger) service.HomeService {
	return serviceimpl.NewHomeService(repo, pub, logger)
}

func provideBlogService(repo repository.BlogRepository, pub service.ChangePublisher, logger *zap.Logger) service.BlogService {
	return serviceimpl.NewBlogService(repo, pub, logger)
}

func provideEventService(repo repository.EventRepository, pub service.ChangePublisher, logger *zap.Logger) service.EventService {
	return serviceimpl.NewEventService(repo, pub, logger)
}

func provideContactService(repo repository.ContactRepository, logger *zap.Logger) service.ContactService {
	return serviceimpl.NewContactService(repo, logger)
}

func provideAuthService(
	admin *config.AdminConfig,
	jwtProvider *security.JWTProvider,
	passwordHasher *security.PasswordHasher,
	denylist *security.TokenDenylist,
	logger *zap.Logger,
) service.AuthService {
	return serviceimpl.NewAuthService(*admin, jwtProvider, passwordHasher, denylist, logger)
}

func provideSnapshotService(contentService service.ContentService, cfg *config.SnapshotConfig, logger *zap.Logger) service.SnapshotService {
	return serviceimpl.NewSnapshotService(contentService, *cfg, logger)
}

func provideSeeder(
	documents repository.ContentRepository,
	blogRepo repository.BlogRepository,
	eventRepo repository.EventRepository,
	contacts repository.ContactRepository,
	blogs service.BlogService,
	events service.EventService,
	logger *zap.Logger,
) service.Seeder {
	return serviceimpl.NewSeeder(documents, blogRepo, eventRepo, contacts, blogs, events, logger)
}

// seedContent loads the bundled content into an empty store on start
func seedContent(lc fx.Lifecycle, cfg *config.SeedConfig, seeder service.Seeder, logger *zap.Logger) {
	if !cfg.Enabled {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			result, err := seeder.Seed(ctx)
			if err != nil {
				return err
			}
			logger.Info("Seed complete",
				zap.Strings("documents", result.Documents),
				zap.Int("blogs", result.Blogs),
				zap.Int("events", result.Events),
				zap.Int("contacts", result.Contacts),
			)
			return nil
		},
	})
}
