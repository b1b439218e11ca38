package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FactoryPlanner_Go/internal/config"
	"github.com/osse101/FactoryPlanner_Go/internal/database"
	"github.com/osse101/FactoryPlanner_Go/internal/database/postgres"
	"github.com/osse101/FactoryPlanner_Go/internal/linestore"
	"github.com/osse101/FactoryPlanner_Go/internal/repository"
)

// LineStorage is a production line repository that can report its health
type LineStorage interface {
	repository.ProductionLine
	Ping(ctx context.Context) error
}

// Storage holds the configured persistence backend
type Storage struct {
	Lines   LineStorage
	Backend string

	pool *pgxpool.Pool
}

// InitializeStorage opens the backend selected by cfg.StorageBackend. The
// postgres backend applies pending migrations before connecting.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageBackend {
	case config.StorageBackendFile:
		slog.Info(LogMsgStorageReady, "backend", cfg.StorageBackend, "path", cfg.DataFile)
		return &Storage{
			Lines:   linestore.New(cfg.DataFile),
			Backend: cfg.StorageBackend,
		}, nil

	case config.StorageBackendPostgres:
		connString := cfg.GetDBConnString()
		if err := database.Migrate(ctx, connString); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
		}
		slog.Info(LogMsgMigrationsApplied)

		pool, err := database.NewPool(ctx, connString, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		slog.Info(LogMsgStorageReady, "backend", cfg.StorageBackend, "host", cfg.DBHost, "database", cfg.DBName)
		return &Storage{
			Lines:   postgres.NewProductionLineRepository(pool),
			Backend: cfg.StorageBackend,
			pool:    pool,
		}, nil

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorageBackend, cfg.StorageBackend)
	}
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
		s.pool = nil
	}
	slog.Info(LogMsgStorageClosed, "backend", s.Backend)
}
