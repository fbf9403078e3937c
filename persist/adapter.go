package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kbukum/apistate/callstate"
	"github.com/kbukum/apistate/logger"
	"github.com/kbukum/apistate/storage"
)

// Adapter mirrors a Store's persistent subset to a storage backend.
type Adapter struct {
	store     *callstate.Store
	backend   storage.Storage
	namespace string
	log       *logger.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithNamespace overrides the storage key snapshots are written under.
func WithNamespace(namespace string) Option {
	return func(a *Adapter) {
		if namespace != "" {
			a.namespace = namespace
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *logger.Logger) Option {
	return func(a *Adapter) {
		if log != nil {
			a.log = log.WithComponent("persist")
		}
	}
}

// New creates an Adapter for store backed by backend.
func New(store *callstate.Store, backend storage.Storage, opts ...Option) *Adapter {
	a := &Adapter{
		store:     store,
		backend:   backend,
		namespace: DefaultNamespace,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Restore reads the namespaced snapshot from storage and merges it into the
// store. A missing snapshot is a no-op. A corrupt snapshot or a failed read
// is logged and leaves the store untouched; the error is surfaced for
// callers that want it but is safe to ignore.
func (a *Adapter) Restore(ctx context.Context) error {
	data, err := a.backend.Get(ctx, a.namespace)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		a.log.Warn("restore failed, starting empty",
			logger.Fields(logger.FieldNamespace, a.namespace, logger.FieldError, err.Error()))
		return fmt.Errorf("persist: restore: %w", err)
	}

	var snap callstate.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		a.log.Warn("snapshot is corrupt, starting empty",
			logger.Fields(logger.FieldNamespace, a.namespace, logger.FieldError, err.Error()))
		return fmt.Errorf("persist: decode snapshot: %w", err)
	}

	a.store.Import(snap)
	a.log.Debug("state restored",
		logger.Fields(logger.FieldNamespace, a.namespace, "keys", len(snap.PersistentKeys)))
	return nil
}

// Attach starts mirroring store mutations to storage until ctx is done.
// Each mutation replaces the pending snapshot, so a burst of writes
// collapses into one storage write of the latest view.
func (a *Adapter) Attach(ctx context.Context) {
	pending := make(chan callstate.Snapshot, 1)

	a.store.Watch(func(c callstate.Change) {
		for {
			select {
			case pending <- c.Persistent:
				return
			default:
				select {
				case <-pending:
				default:
				}
			}
		}
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case snap := <-pending:
				a.write(ctx, snap)
			}
		}
	}()
}

// Flush synchronously writes the current persistent view to storage.
func (a *Adapter) Flush(ctx context.Context) error {
	return a.write(ctx, a.store.PersistentSnapshot())
}

func (a *Adapter) write(ctx context.Context, snap callstate.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		a.log.Warn("snapshot encode failed",
			logger.Fields(logger.FieldNamespace, a.namespace, logger.FieldError, err.Error()))
		return fmt.Errorf("persist: encode snapshot: %w", err)
	}
	if err := a.backend.Set(ctx, a.namespace, data); err != nil {
		a.log.Warn("snapshot write failed",
			logger.Fields(logger.FieldNamespace, a.namespace, logger.FieldError, err.Error()))
		return fmt.Errorf("persist: write snapshot: %w", err)
	}
	return nil
}
