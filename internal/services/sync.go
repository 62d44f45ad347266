package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"weddingplanner/internal/metrics"
)

// syncDispatcher runs remote persistence calls in the background after the local change
// has been applied. Results only reach logs and metrics; nothing is retried or rolled back.
type syncDispatcher struct {
	wg      sync.WaitGroup
	logger  *slog.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

func newSyncDispatcher(logger *slog.Logger, m *metrics.Metrics, timeout time.Duration) *syncDispatcher {
	return &syncDispatcher{logger: logger, metrics: m, timeout: timeout}
}

// dispatch starts call on its own goroutine. The request context is detached so the sync
// outlives the HTTP request that triggered it.
func (d *syncDispatcher) dispatch(ctx context.Context, action, eventID, entityID string, call func(ctx context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		if err := call(ctx); err != nil {
			d.metrics.RemoteSync(action, metrics.OutcomeFailed)
			d.logger.WarnContext(ctx, "remote sync failed",
				"action", action,
				"event_id", eventID,
				"entity_id", entityID,
				"err", err,
			)
			return
		}
		d.metrics.RemoteSync(action, metrics.OutcomeOK)
		d.logger.DebugContext(ctx, "remote sync done", "action", action, "event_id", eventID, "entity_id", entityID)
	}()
}

// wait blocks until every dispatched call has returned.
func (d *syncDispatcher) wait() {
	d.wg.Wait()
}
