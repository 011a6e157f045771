package di

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/config"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/dao/mongo/document"
	"github.com/Sourabh-Bhakar5228/referme-updated-sub000/internal/domain/entity"
)

// SQLDatabase wraps *gorm.DB for SQL databases (MySQL, PostgreSQL, SQLite).
// DB is nil if MongoDB is configured.
type SQLDatabase struct {
	DB *gorm.DB
}

// MongoDatabase wraps *mongo.Database for MongoDB.
// DB is nil if a SQL database is configured.
type MongoDatabase struct {
	DB     *mongo.Database
	Client *mongo.Client
}

// DatabaseModule provides database dependencies based on config
var DatabaseModule = fx.Module("database",
	fx.Provide(
		provideSQLDatabase,
		provideMongoDatabase,
	),
	fx.Invoke(runMigrations),
)

func sqlDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch config.DatabaseDriver(cfg.Driver) {
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported SQL driver: %s", cfg.Driver)
	}
}

// provideSQLDatabase creates a GORM database connection for SQL databases.
func provideSQLDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, app *config.AppConfig, logger *zap.Logger) (*SQLDatabase, error) {
	if cfg.IsMongoDB() {
		logger.Info("MongoDB configured, skipping SQL database")
		return &SQLDatabase{DB: nil}, nil
	}

	dialector, err := sqlDialector(cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Connecting to SQL database",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
	)

	logLevel := gormlogger.Warn
	if app.Debug {
		logLevel = gormlogger.Info
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(logLevel)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing SQL database connection")
			return sqlDB.Close()
		},
	})

	return &SQLDatabase{DB: db}, nil
}

// provideMongoDatabase creates a MongoDB database connection.
func provideMongoDatabase(lc fx.Lifecycle, cfg *config.DatabaseConfig, logger *zap.Logger) (*MongoDatabase, error) {
	if !cfg.IsMongoDB() {
		logger.Info("SQL database configured, skipping MongoDB")
		return &MongoDatabase{DB: nil, Client: nil}, nil
	}

	logger.Info("Connecting to MongoDB",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Name),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MongoDB connection")
			return client.Disconnect(ctx)
		},
	})

	return &MongoDatabase{DB: client.Database(cfg.Name), Client: client}, nil
}

// runMigrations runs database migrations based on the configured driver.
func runMigrations(sqlDB *SQLDatabase, mongoDB *MongoDatabase, logger *zap.Logger) error {
	if sqlDB.DB != nil {
		logger.Info("Running SQL database migrations")
		return sqlDB.DB.AutoMigrate(entity.Models()...)
	}

	if mongoDB.DB != nil {
		logger.Info("Creating MongoDB indexes")
		return createMongoIndexes(mongoDB.DB, logger)
	}

	return nil
}

// mongoIndexes lists the indexes each collection needs. The content key and
// blog slug are unique so concurrent creators race on the index, not in code.
func mongoIndexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		document.ContentDocumentDoc{}.CollectionName(): {
			{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		document.BlogPostDocument{}.CollectionName(): {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "published", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		document.EventDocument{}.CollectionName(): {
			{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "date", Value: 1}}},
		},
		document.ContactDocument{}.CollectionName(): {
			{Keys: bson.D{{Key: "numeric_id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
	}
}

// createMongoIndexes creates necessary indexes for MongoDB collections.
func createMongoIndexes(db *mongo.Database, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for collection, indexes := range mongoIndexes() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes); err != nil {
			logger.Error("Failed to create indexes",
				zap.String("collection", collection),
				zap.Error(err),
			)
			return err
		}
	}

	logger.Info("MongoDB indexes created successfully")
	return nil
}
