package di

import (
	"go.uber.org/fx"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao"
	gormdao "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/gorm"
	mongodao "github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/mongo"
)

// DAOModule provides DAO dependencies, selecting the GORM or MongoDB
// implementation from the configured database driver.
var DAOModule = fx.Module("dao",
	fx.Provide(
		provideMongoIDCounter,
		provideContentDocumentDAO,
		provideBlogPostDAO,
		provideEventDAO,
		provideContactDAO,
	),
)

// provideMongoIDCounter creates an ID counter for MongoDB.
// Returns nil if SQL database is configured.
func provideMongoIDCounter(mongoDB *MongoDatabase) *mongodao.IDCounter {
	if mongoDB.DB == nil {
		return nil
	}
	return mongodao.NewIDCounter(mongoDB.DB)
}

func provideContentDocumentDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase) dao.ContentDocumentDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewContentDocumentDAO(mongoDB.DB)
	}
	return gormdao.NewContentDocumentDAO(sqlDB.DB)
}

func provideBlogPostDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase) dao.BlogPostDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewBlogPostDAO(mongoDB.DB)
	}
	return gormdao.NewBlogPostDAO(sqlDB.DB)
}

func provideEventDAO(cfg *config.DatabaseConfig, sqlDB *SQLDatabase, mongoDB *MongoDatabase) dao.EventDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewEventDAO(mongoDB.DB)
	}
	return gormdao.NewEventDAO(sqlDB.DB)
}

// provideContactDAO creates a ContactDAO. Mongo contacts keep numeric ids
// through the shared counter.
func provideContactDAO(
	cfg *config.DatabaseConfig,
	sqlDB *SQLDatabase,
	mongoDB *MongoDatabase,
	idCounter *mongodao.IDCounter,
) dao.ContactDAO {
	if cfg.IsMongoDB() {
		return mongodao.NewContactDAO(mongoDB.DB, idCounter)
	}
	return gormdao.NewContactDAO(sqlDB.DB)
}
