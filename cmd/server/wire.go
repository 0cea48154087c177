//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"supportchat/internal/config"
	domain "supportchat/internal/domain/chat"
	"supportchat/internal/infrastructure/database"
	"supportchat/internal/infrastructure/llmprovider"
	"supportchat/internal/infrastructure/logger"
	repo "supportchat/internal/infrastructure/repository/chat"
	"supportchat/internal/interfaces/httpserver"
)

var chatSet = wire.NewSet(
	repo.NewRepository,
	wire.Bind(new(domain.TranscriptStore), new(*repo.Repository)),
	llmprovider.New,
	domain.NewService,
)

// BuildApplication assembles the support chat service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		newDatabaseConfig,
		newGormDB,
		chatSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newDatabaseConfig(cfg *config.Config) database.Config {
	return database.Config{
		DSN:             cfg.GetDatabaseWriteDSN(),
		MaxIdleConns:    cfg.DBMaxIdleConns,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
		LogLevel:        gormlogger.Warn,
	}
}

func newGormDB(ctx context.Context, cfg database.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(ctx, db, log); err != nil {
		return nil, err
	}
	return db, nil
}
