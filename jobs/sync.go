package jobs

import (
	"context"
	"log/slog"
	"time"

	"crm-assistant/observability"
)

// SyncFunc pushes one batch of assistant activity to the external CRM.
type SyncFunc func(ctx context.Context) error

// CRMSyncWorker periodically flushes conversation outcomes to the CRM
// backend. Transient failures are retried with exponential backoff; a
// fully exhausted batch is logged and dropped rather than blocking the
// next cycle.
type CRMSyncWorker struct {
	log         *slog.Logger
	stats       *observability.StatsManager
	sync        SyncFunc
	interval    time.Duration
	maxAttempts int
	baseDelay   time.Duration
}

func NewCRMSyncWorker(
	log *slog.Logger,
	stats *observability.StatsManager,
	sync SyncFunc,
	interval time.Duration,
	maxAttempts int,
	baseDelay time.Duration,
) *CRMSyncWorker {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	return &CRMSyncWorker{
		log:         log,
		stats:       stats,
		sync:        sync,
		interval:    interval,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
	}
}

func (w *CRMSyncWorker) Run(ctx context.Context) error {
	w.log.Info("Starting CRM sync worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err := Retry(ctx, w.log, "crm-sync", w.maxAttempts, w.baseDelay, w.sync)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				w.log.Error("CRM sync batch dropped", "error", err)
				w.stats.IncrErrorCount()
				continue
			}
			w.stats.IncrJobRuns()
		}
	}
}
