package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/vex-labs/vex-backend/internal/domain"
	"github.com/vex-labs/vex-backend/internal/persistence"
	"github.com/vex-labs/vex-backend/internal/store"
)

func newWorkerFixture() (*store.Store, *SnapshotWorker) {
	st := store.New(nil)
	snapshots := persistence.NewSnapshotStore(nil, zap.NewNop())
	return st, NewSnapshotWorker(st, snapshots, zap.NewNop(), time.Hour)
}

func TestSnapshotWorker_SkipsCleanStore(t *testing.T) {
	_, w := newWorkerFixture()

	w.persist(context.Background())
	assert.Equal(t, uint64(0), w.lastSaved)
}

func TestSnapshotWorker_PersistsOnlyWhenRevisionAdvances(t *testing.T) {
	st, w := newWorkerFixture()

	st.Lock()
	st.Users.Put(&domain.User{ID: st.UserSeq.Next(), Name: "Alice"})
	st.MarkDirty()
	st.Unlock()

	w.persist(context.Background())
	assert.Equal(t, uint64(1), w.lastSaved)

	// no further writes, the next tick is a no-op
	w.persist(context.Background())
	assert.Equal(t, uint64(1), w.lastSaved)

	st.Lock()
	st.MarkDirty()
	st.Unlock()

	w.persist(context.Background())
	assert.Equal(t, uint64(2), w.lastSaved)
}

func TestSnapshotWorker_StopWritesFinalSnapshot(t *testing.T) {
	st, w := newWorkerFixture()
	w.Start()

	st.Lock()
	st.Users.Put(&domain.User{ID: st.UserSeq.Next(), Name: "Alice"})
	st.MarkDirty()
	st.Unlock()

	w.Stop()
	assert.Equal(t, uint64(1), w.lastSaved)
}
