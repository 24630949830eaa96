package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/spec-kit/admin-dashboard/internal/blobstore"
	"github.com/spec-kit/admin-dashboard/internal/config"
	"github.com/spec-kit/admin-dashboard/internal/observability"
	apperrors "github.com/spec-kit/admin-dashboard/pkg/util/errorutil"
)

// Record is any entity carrying a unique string identifier.
type Record interface {
	RecordID() string
}

// Patch applies a partial update onto a record. Fields left nil in the
// patch must not change the record.
type Patch[T any] interface {
	Apply(*T)
}

// Collection persists all records of one type as a single JSON blob under a
// fixed key. Every operation is a whole-collection read-modify-write guarded
// by a per-collection mutex.
type Collection[T Record] struct {
	name    string
	key     string
	blobs   blobstore.Store
	logger  *zap.Logger
	latency time.Duration

	mu sync.Mutex
}

// NewCollection binds a record type to its blob store key.
func NewCollection[T Record](name string, cfg config.StoreConfig, blobs blobstore.Store, logger *zap.Logger) *Collection[T] {
	return &Collection[T]{
		name:    name,
		key:     cfg.KeyPrefix + name,
		blobs:   blobs,
		logger:  logger,
		latency: cfg.Latency(),
	}
}

// Name returns the collection name.
func (c *Collection[T]) Name() string { return c.name }

// Seed writes the initial dataset exactly once, only when the key has never
// been written. A collection emptied by deletes is not re-seeded.
func (c *Collection[T]) Seed(ctx context.Context, records []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.blobs.Get(ctx, c.key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, blobstore.ErrKeyNotFound) {
		return err
	}
	if err := c.save(ctx, records); err != nil {
		return err
	}
	observability.CollectionsSeededTotal.WithLabelValues(c.name).Inc()
	c.logger.Info("seeded collection",
		zap.String("collection", c.name),
		zap.Int("records", len(records)))
	return nil
}

// List returns all records in storage order. An absent key yields an empty
// slice, never an error.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	defer c.instrument("list")()
	c.simulateLatency()

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// Get returns the record with the given id. Absence is reported through the
// boolean, not an error.
func (c *Collection[T]) Get(ctx context.Context, id string) (T, bool, error) {
	defer c.instrument("get")()
	c.simulateLatency()

	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, record := range records {
		if record.RecordID() == id {
			return record, true, nil
		}
	}
	return zero, false, nil
}

// Create appends the record and persists the collection. A duplicate id is
// rejected with a conflict error so identifiers stay unique.
func (c *Collection[T]) Create(ctx context.Context, item T) (T, error) {
	defer c.instrument("create")()
	c.simulateLatency()

	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, record := range records {
		if record.RecordID() == item.RecordID() {
			return zero, apperrors.NewConflict("duplicate id", map[string]any{
				"collection": c.name,
				"id":         item.RecordID(),
			})
		}
	}
	records = append(records, item)
	if err := c.save(ctx, records); err != nil {
		return zero, err
	}
	return item, nil
}

// Update applies the patch to the record with the given id and persists the
// collection. Fields the patch leaves nil keep their prior values.
func (c *Collection[T]) Update(ctx context.Context, id string, patch Patch[T]) (T, error) {
	return c.mutate(ctx, "update", id, patch.Apply)
}

// Mutate runs fn against the record with the given id under the collection
// lock and persists the result. Used for append-only sub-sequences (ticket
// comments, order status history) that a field patch cannot express.
func (c *Collection[T]) Mutate(ctx context.Context, id string, fn func(*T)) (T, error) {
	return c.mutate(ctx, "mutate", id, fn)
}

func (c *Collection[T]) mutate(ctx context.Context, op, id string, fn func(*T)) (T, error) {
	defer c.instrument(op)()
	c.simulateLatency()

	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	records, err := c.load(ctx)
	if err != nil {
		return zero, err
	}
	for i := range records {
		if records[i].RecordID() != id {
			continue
		}
		fn(&records[i])
		if err := c.save(ctx, records); err != nil {
			return zero, err
		}
		return records[i], nil
	}
	return zero, apperrors.NewNotFound(c.name, map[string]any{"id": id})
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op and leaves the stored collection untouched.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	defer c.instrument("delete")()
	c.simulateLatency()

	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := records[:0]
	for _, record := range records {
		if record.RecordID() != id {
			kept = append(kept, record)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return c.save(ctx, kept)
}

// load reads and decodes the whole collection. Missing keys and malformed
// payloads both resolve to an empty collection; parse failures never reach
// the caller.
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	blob, err := c.blobs.Get(ctx, c.key)
	if errors.Is(err, blobstore.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		observability.StoreOperationErrors.WithLabelValues(c.name, "load").Inc()
		return nil, apperrors.NewInternalError(err)
	}

	var records []T
	if err := json.Unmarshal(blob, &records); err != nil {
		c.logger.Warn("malformed collection payload, treating as empty",
			zap.String("collection", c.name),
			zap.Error(err))
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c *Collection[T]) save(ctx context.Context, records []T) error {
	blob, err := json.Marshal(records)
	if err != nil {
		return apperrors.NewInternalError(err)
	}
	if err := c.blobs.Set(ctx, c.key, blob); err != nil {
		observability.StoreOperationErrors.WithLabelValues(c.name, "save").Inc()
		return apperrors.NewInternalError(err)
	}
	return nil
}

func (c *Collection[T]) instrument(op string) func() {
	observability.StoreOperationsTotal.WithLabelValues(c.name, op).Inc()
	timer := prometheus.NewTimer(observability.StoreOperationDuration.WithLabelValues(c.name, op))
	return func() { timer.ObserveDuration() }
}

// simulateLatency reproduces the fixed per-call delay of the mock backend
// this service replaces. Disabled (zero) by default.
func (c *Collection[T]) simulateLatency() {
	if c.latency > 0 {
		time.Sleep(c.latency)
	}
}
