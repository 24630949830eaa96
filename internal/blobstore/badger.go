package blobstore

import (
	"context"
	"errors"

	badger "github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/config"
)

// BadgerStore is the default embedded driver. It keeps all collections in a
// local BadgerDB directory so data survives restarts without any external
// dependency.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (or creates) the BadgerDB at the configured path.
// In-memory mode is supported for tests.
func NewBadgerStore(cfg config.StoreConfig, logger *zap.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(cfg.BadgerPath)
	if cfg.BadgerInMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		logger.Info("opened badger store",
			zap.String("path", cfg.BadgerPath),
			zap.Bool("in_memory", cfg.BadgerInMemory))
	}
	return &BadgerStore{db: db}, nil
}

// Get returns the value for key, or ErrKeyNotFound.
func (s *BadgerStore) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes value under key.
func (s *BadgerStore) Set(_ context.Context, key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Remove deletes key; absent keys are a no-op.
func (s *BadgerStore) Remove(_ context.Context, key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close flushes and closes the database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
