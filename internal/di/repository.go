package di

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/cache"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/repository/impl"
)

// RepositoryModule provides repository dependencies.
// Repositories delegate to the DAO layer for database operations.
var RepositoryModule = fx.Module("repository",
	fx.Provide(
		provideContentRepository,
		provideBlogRepository,
		provideEventRepository,
		provideContactRepository,
	),
)

// provideContentRepository creates a ContentRepository with the document cache in front of the DAO.
func provideContentRepository(d dao.ContentDocumentDAO, c cache.Cache, opts impl.CacheOptions, logger *zap.Logger) repository.ContentRepository {
	return impl.NewContentRepository(d, c, opts, logger)
}

func provideBlogRepository(d dao.BlogPostDAO) repository.BlogRepository {
	return impl.NewBlogRepository(d)
}

func provideEventRepository(d dao.EventDAO) repository.EventRepository {
	return impl.NewEventRepository(d)
}

func provideContactRepository(d dao.ContactDAO) repository.ContactRepository {
	return impl.NewContactRepository(d)
}
