package cmd

import (
	"fmt"

	"movie-manager/core/catalog"
	"movie-manager/core/config"
	"movie-manager/core/database"
	"movie-manager/core/logger"
	"movie-manager/core/remote"
	"movie-manager/core/storage"
	"movie-manager/feature/movies"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application holds the dependencies shared by every command.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	storage storage.Client
	movies  *movies.Service
}

// bootstrap loads the configuration and wires the movie service.
// The storage client is optional: when it cannot be created, storage stays nil.
func bootstrap() (*application, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logg = logg.With(zap.String("driver", db.Dialector.Name()))

	store, err := movies.NewStore(db)
	if err != nil {
		return nil, err
	}

	searcher := catalog.NewClient(cfg.Catalog, nil, logg)

	rc, err := remote.NewClient(cfg.Remote, nil, logg)
	if err != nil {
		return nil, err
	}
	dispatcher := remote.NewDispatcher(cfg.Remote.Workers, logg)

	objects, err := storage.NewClient(cfg.Storage)
	if err != nil {
		logg.Warn("Storage client unavailable, backups disabled", zap.Error(err))
	}

	return &application{
		cfg:     cfg,
		logger:  logg,
		db:      db,
		storage: objects,
		movies:  movies.NewService(store, searcher, rc, dispatcher, logg),
	}, nil
}

// Close waits for background remote calls and releases the database.
func (a *application) Close() {
	a.movies.Close()
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}
