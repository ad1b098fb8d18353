package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/interfaces"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/domain/model"
	"github.com/alschell/hmnzd-ai-compliance-suite-sub002/pkg/utils/logging"
)

// SnapshotSource loads a complete snapshot from a location
type SnapshotSource interface {
	Load(ctx context.Context, location string) (*model.Snapshot, error)
}

// SnapshotImporter replaces the stored records with a snapshot
type SnapshotImporter interface {
	Import(ctx context.Context, snapshot *model.Snapshot) (int, error)
}

// SnapshotRefreshWorker periodically reloads the snapshot file and replaces
// the stored records with it
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - A failed load or import keeps the previously imported records, since
//   the importer replaces all record sets as one unit
type SnapshotRefreshWorker struct {
	repo     interfaces.Repository
	source   SnapshotSource
	importer SnapshotImporter
	location string
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

func NewSnapshotRefreshWorker(repo interfaces.Repository, source SnapshotSource, importer SnapshotImporter, location string, interval time.Duration) *SnapshotRefreshWorker {
	return &SnapshotRefreshWorker{
		repo:     repo,
		source:   source,
		importer: importer,
		location: location,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background refresh loop. The initial load also runs in the
// background and does not block server startup.
func (w *SnapshotRefreshWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return goerr.New("refresh interval must be positive", goerr.V("interval", w.interval))
	}

	logging.Default().Info("Snapshot refresh worker starting",
		"location", w.location,
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *SnapshotRefreshWorker) Stop() {
	logging.Default().Info("Snapshot refresh worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Snapshot refresh worker stopped")
}

func (w *SnapshotRefreshWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.Refresh(ctx); err != nil {
		logging.Default().Error("Initial snapshot refresh failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Refresh(ctx); err != nil {
				logging.Default().Error("Snapshot refresh failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Snapshot refresh worker context cancelled")
			return
		}
	}
}

// Refresh performs a single refresh cycle
func (w *SnapshotRefreshWorker) Refresh(ctx context.Context) error {
	startTime := time.Now()

	// Get existing metadata to preserve values on failure
	existing, err := w.repo.GetRefreshMetadata(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get existing refresh metadata")
	}

	attempt := *existing
	attempt.LastRefreshAttempt = startTime
	if err := w.repo.SaveRefreshMetadata(ctx, &attempt); err != nil {
		return goerr.Wrap(err, "failed to save refresh attempt metadata")
	}

	snapshot, err := w.source.Load(ctx, w.location)
	if err != nil {
		// Previously imported records stay in place
		return goerr.Wrap(err, "failed to load snapshot", goerr.V("location", w.location))
	}

	count, err := w.importer.Import(ctx, snapshot)
	if err != nil {
		return goerr.Wrap(err, "failed to import snapshot", goerr.V("location", w.location))
	}

	success := &model.RefreshMetadata{
		LastRefreshSuccess: startTime,
		LastRefreshAttempt: startTime,
		Source:             w.location,
		RecordCount:        count,
	}
	if err := w.repo.SaveRefreshMetadata(ctx, success); err != nil {
		return goerr.Wrap(err, "failed to save refresh success metadata")
	}

	logging.Default().Info("Snapshot refresh completed",
		"records", count,
		"duration", time.Since(startTime).String())

	return nil
}
