package pos

import (
	"context"

	"github.com/cockroachdb/errors"

	"kitchen-pos/internal/common/db"
	"kitchen-pos/internal/common/logger"
	"kitchen-pos/internal/config"
	"kitchen-pos/internal/domain"
	"kitchen-pos/internal/repository/memory"
	"kitchen-pos/internal/repository/postgres"
)

// OpenStore returns the transactor for the configured storage driver and a
// function releasing it. Postgres storage is migrated before use.
func OpenStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (domain.Transactor, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Info("storage_selected", map[string]any{"driver": config.StorageMemory})
		return memory.New(), func() {}, nil
	case config.StoragePostgres:
		conn, err := db.Connect(ctx, cfg.DatabaseURL(), db.Options{MaxConns: cfg.Database.MaxConns, Retries: 5}, log)
		if err != nil {
			return nil, nil, err
		}
		if err := conn.Migrate(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		log.Info("storage_selected", map[string]any{"driver": config.StoragePostgres})
		return postgres.New(conn.Pool), conn.Close, nil
	default:
		return nil, nil, errors.Newf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
