package blobstore

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/config"
)

// PostgresStore keeps blobs in a single key-value table, for deployments
// that already run Postgres and want the dashboard state alongside it.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore establishes a connection pool and bootstraps the kv table.
func NewPostgresStore(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (*PostgresStore, error) {
	if cfg.PostgresDSN == "" {
		return nil, errors.New("POSTGRES_DSN is required for the postgres store driver")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if cfg.PostgresMaxConns > 0 {
		poolCfg.MaxConns = cfg.PostgresMaxConns
	}
	if cfg.PostgresMinConns > 0 {
		poolCfg.MinConns = cfg.PostgresMinConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	const bootstrap = `
        CREATE TABLE IF NOT EXISTS dashboard_kv (
            key   TEXT PRIMARY KEY,
            value BYTEA NOT NULL
        )`
	if _, err := pool.Exec(ctx, bootstrap); err != nil {
		pool.Close()
		return nil, err
	}

	if logger != nil {
		logger.Info("connected to postgres")
	}
	return &PostgresStore{pool: pool}, nil
}

// Get returns the value for key, or ErrKeyNotFound.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `SELECT value FROM dashboard_kv WHERE key=$1`

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set upserts the value under key.
func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	const query = `
        INSERT INTO dashboard_kv (key, value) VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := s.pool.Exec(ctx, query, key, value)
	return err
}

// Remove deletes key; absent keys are a no-op.
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM dashboard_kv WHERE key=$1`, key)
	return err
}

// Close releases pool resources.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
