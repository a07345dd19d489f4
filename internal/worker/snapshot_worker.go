package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/persistence"
	"github.com/vex-labs/vex-backend/internal/store"
)

// SnapshotWorker periodically persists the store when its revision has
// advanced, and writes a final snapshot on Stop.
type SnapshotWorker struct {
	store     *store.Store
	snapshots *persistence.SnapshotStore
	logger    *zap.Logger
	interval  time.Duration
	stop      chan struct{}
	done      chan struct{}
	lastSaved uint64
}

// NewSnapshotWorker constructs the worker.
func NewSnapshotWorker(st *store.Store, snapshots *persistence.SnapshotStore, logger *zap.Logger, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		store:     st,
		snapshots: snapshots,
		logger:    logger,
		interval:  interval,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the background loop.
func (w *SnapshotWorker) Start() {
	go w.run()
}

// Stop persists a final snapshot and waits for the loop to exit.
func (w *SnapshotWorker) Stop() {
	close(w.stop)
	<-w.done
}

func (w *SnapshotWorker) run() {
	defer close(w.done)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.persist(context.Background())
		case <-w.stop:
			w.persist(context.Background())
			return
		}
	}
}

func (w *SnapshotWorker) persist(ctx context.Context) {
	snap := w.store.Export()
	if snap.Revision == w.lastSaved {
		return
	}
	if err := w.snapshots.Save(ctx, snap); err != nil {
		w.logger.Error("snapshot save failed", zap.Error(err))
		return
	}
	w.lastSaved = snap.Revision
	w.logger.Debug("snapshot persisted",
		zap.Uint64("revision", snap.Revision),
		zap.Int("users", len(snap.Users)),
		zap.Int("tickets", len(snap.Tickets)))
}
