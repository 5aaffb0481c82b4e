package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/PrizeDraw_Go/internal/config"
	"github.com/osse101/PrizeDraw_Go/internal/database"
	"github.com/osse101/PrizeDraw_Go/internal/database/mongodb"
	"github.com/osse101/PrizeDraw_Go/internal/database/postgres"
	"github.com/osse101/PrizeDraw_Go/internal/handler"
	"github.com/osse101/PrizeDraw_Go/internal/logger"
	"github.com/osse101/PrizeDraw_Go/internal/snapshot"
)

// Storage is the snapshot store selected by STORAGE_BACKEND together with
// the connections it holds open
type Storage struct {
	Store    snapshot.Store
	Backends map[string]handler.Pinger
	closers  []func(context.Context) error
}

// OpenStorage connects the configured backend. Database backends are
// migrated or pinged before the store is handed out.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	s := &Storage{Backends: make(map[string]handler.Pinger)}

	switch cfg.StorageBackend {
	case config.StorageBackendFile:
		s.Store = snapshot.NewFileStore(cfg.SnapshotPath)

	case config.StorageBackendPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, StorageConnectTimeout)
		defer cancel()

		pool, err := database.NewPool(connectCtx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
		}
		if err := database.Migrate(connectCtx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}

		s.Store = postgres.NewSnapshotStore(pool, cfg.SessionKey)
		s.Backends[BackendNamePostgres] = pool
		s.closers = append(s.closers, func(context.Context) error {
			pool.Close()
			return nil
		})

	case config.StorageBackendMongo:
		client, err := mongodb.NewClient(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectMongo, err)
		}

		s.Store = mongodb.NewSnapshotStore(client.Database(), cfg.SessionKey)
		s.Backends[BackendNameMongo] = client
		s.closers = append(s.closers, client.Disconnect)

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownBackend, cfg.StorageBackend)
	}

	logger.Info(LogMsgStorageReady, "backend", cfg.StorageBackend, "session_key", cfg.SessionKey)
	return s, nil
}

// Close releases every connection in reverse order of opening
func (s *Storage) Close(ctx context.Context) error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
