// Package pipeline drives periodic re-invocation of the acquisition core and
// holds the latest record snapshot for serving.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
	"github.com/lukeponga-dev/Smart-cameras/internal/observability"
)

// Acquirer runs one acquisition pass. Implementations never fail: the result
// is always a non-empty record set.
type Acquirer interface {
	Acquire(ctx context.Context) []domain.Camera
}

// BatchLoader forwards a cycle's records to a downstream sink.
type BatchLoader interface {
	LoadBatch(ctx context.Context, cams []domain.Camera) error
}

// snapshot is one cycle's output.
type snapshot struct {
	cameras []domain.Camera
	takenAt time.Time
}

// Refresher re-invokes the acquirer on a fixed interval and retains the
// latest snapshot. There is no retry backoff and no deduplication of
// overlapping cycles; the acquisition core absorbs its own failures.
type Refresher struct {
	acquirer Acquirer
	loader   BatchLoader // nil disables publishing
	logger   *slog.Logger
	metrics  *observability.Metrics
	interval time.Duration
	ready    atomic.Bool
	latest   atomic.Pointer[snapshot]
}

// New creates a Refresher. Pass a nil loader to disable sink publishing.
func New(acquirer Acquirer, loader BatchLoader, logger *slog.Logger,
	metrics *observability.Metrics, interval time.Duration) *Refresher {
	return &Refresher{
		acquirer: acquirer,
		loader:   loader,
		logger:   logger,
		metrics:  metrics,
		interval: interval,
	}
}

// CheckReadiness returns nil once at least one refresh cycle has completed.
func (r *Refresher) CheckReadiness(_ context.Context) error {
	if !r.ready.Load() {
		return errors.New("no refresh cycle has completed yet")
	}
	return nil
}

// Latest returns the most recent record set, or nil before the first cycle.
// The returned records are immutable; callers must not modify them.
func (r *Refresher) Latest() []domain.Camera {
	snap := r.latest.Load()
	if snap == nil {
		return nil
	}
	return snap.cameras
}

// Run refreshes immediately, then on every interval tick until the context is
// cancelled. It always returns nil; shutdown is not an error.
func (r *Refresher) Run(ctx context.Context) error {
	r.logger.Info("refresh loop started", "interval", r.interval)
	r.metrics.RefreshRunning.Set(1)
	defer r.metrics.RefreshRunning.Set(0)

	r.refresh(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("refresh loop stopping", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

// refresh runs one cycle: acquire, store, publish.
func (r *Refresher) refresh(ctx context.Context) {
	cams := r.acquirer.Acquire(ctx)
	if ctx.Err() != nil {
		return
	}

	r.latest.Store(&snapshot{cameras: cams, takenAt: time.Now()})
	r.metrics.RefreshCycles.Inc()
	r.ready.Store(true)
	r.logger.Info("refresh cycle complete", "records", len(cams), "source", cams[0].Source)

	if r.loader == nil {
		return
	}
	if err := r.loader.LoadBatch(ctx, cams); err != nil {
		// Publishing is best-effort; the snapshot is already being served.
		r.logger.Warn("publish batch failed", "error", err, "records", len(cams))
		r.metrics.PublishErrors.Inc()
		return
	}
	r.metrics.RecordsPublished.Add(float64(len(cams)))
}
