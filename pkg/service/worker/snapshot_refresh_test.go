package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/repository/memory"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/service/worker"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/usecase"
)

// mockSource is a SnapshotSource returning a configurable snapshot
type mockSource struct {
	mu       sync.Mutex
	snapshot *model.Snapshot
	err      error
	calls    int
}

func (m *mockSource) set(snapshot *model.Snapshot, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshot = snapshot
	m.err = err
}

func (m *mockSource) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockSource) Load(ctx context.Context, location string) (*model.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.err != nil {
		return nil, m.err
	}

	// Return a copy so the importer may assign IDs freely
	copied := *m.snapshot
	copied.Deadlines = append([]model.Deadline{}, m.snapshot.Deadlines...)
	return &copied, nil
}

func snapshotWithDeadlines(titles ...string) *model.Snapshot {
	s := &model.Snapshot{}
	for i, title := range titles {
		s.Deadlines = append(s.Deadlines, model.Deadline{
			ID:      title,
			Title:   title,
			DueDate: time.Date(2025, 3, 1+i, 0, 0, 0, 0, time.UTC),
		})
	}
	return s
}

func TestSnapshotRefreshWorker_Refresh(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	source := &mockSource{}
	source.set(snapshotWithDeadlines("audit", "review"), nil)

	w := worker.NewSnapshotRefreshWorker(repo, source, uc.Snapshot, "testdata/snapshot.toml", time.Hour)
	gt.NoError(t, w.Refresh(ctx)).Required()

	deadlines, err := repo.Deadline().GetAll(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, deadlines).Length(2)

	metadata, err := repo.GetRefreshMetadata(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, metadata.RecordCount).Equal(2)
	gt.Value(t, metadata.Source).Equal("testdata/snapshot.toml")
	gt.Bool(t, metadata.LastRefreshSuccess.IsZero()).False()

	// Replace, not merge
	source.set(snapshotWithDeadlines("renewal"), nil)
	gt.NoError(t, w.Refresh(ctx)).Required()

	deadlines, err = repo.Deadline().GetAll(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, deadlines).Length(1)
	gt.Value(t, deadlines[0].Title).Equal("renewal")
}

func TestSnapshotRefreshWorker_FailureKeepsRecords(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	source := &mockSource{}
	source.set(snapshotWithDeadlines("audit"), nil)

	w := worker.NewSnapshotRefreshWorker(repo, source, uc.Snapshot, "gs://bucket/snapshot.toml", time.Hour)
	gt.NoError(t, w.Refresh(ctx)).Required()

	first, err := repo.GetRefreshMetadata(ctx)
	gt.NoError(t, err).Required()

	source.set(nil, errors.New("object not found"))
	gt.Value(t, w.Refresh(ctx)).NotNil()

	deadlines, err := repo.Deadline().GetAll(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, deadlines).Length(1)

	metadata, err := repo.GetRefreshMetadata(ctx)
	gt.NoError(t, err).Required()
	gt.Value(t, metadata.LastRefreshSuccess).Equal(first.LastRefreshSuccess)
	gt.Value(t, metadata.RecordCount).Equal(1)
	gt.Bool(t, metadata.LastRefreshAttempt.After(first.LastRefreshAttempt) ||
		metadata.LastRefreshAttempt.Equal(first.LastRefreshAttempt)).True()
}

func TestSnapshotRefreshWorker_StartStop(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	uc := usecase.New(repo)
	source := &mockSource{}
	source.set(snapshotWithDeadlines("audit"), nil)

	w := worker.NewSnapshotRefreshWorker(repo, source, uc.Snapshot, "snapshot.toml", 20*time.Millisecond)
	gt.NoError(t, w.Start(ctx)).Required()

	// Wait for the initial load and at least one periodic refresh
	deadline := time.Now().Add(5 * time.Second)
	for source.callCount() < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	w.Stop()

	gt.Bool(t, source.callCount() >= 2).True()

	deadlines, err := repo.Deadline().GetAll(ctx)
	gt.NoError(t, err).Required()
	gt.A(t, deadlines).Length(1)
}

func TestSnapshotRefreshWorker_InvalidInterval(t *testing.T) {
	repo := memory.New()
	w := worker.NewSnapshotRefreshWorker(repo, &mockSource{}, usecase.New(repo).Snapshot, "snapshot.toml", 0)
	gt.Value(t, w.Start(context.Background())).NotNil()
}
