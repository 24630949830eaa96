package blobstore

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/config"
)

// Open constructs the driver named by the configuration.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case config.DriverBadger:
		return NewBadgerStore(cfg, logger)
	case config.DriverRedis:
		return NewRedisStore(cfg, logger)
	case config.DriverPostgres:
		return NewPostgresStore(ctx, cfg, logger)
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %q", cfg.Driver)
	}
}
