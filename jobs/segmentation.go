package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crm-assistant/cluster"
	"crm-assistant/errors"
	"crm-assistant/leads"
	"crm-assistant/observability"
)

// FeatureSource yields the lead feature rows to segment. In production
// this is backed by the CRM; tests inject a static slice.
type FeatureSource interface {
	LeadFeatures(ctx context.Context) ([]leads.Features, error)
}

// SegmentationWorker refits the K-Means lead segments on a fixed
// interval and keeps the latest model available for scoring lookups.
type SegmentationWorker struct {
	log      *slog.Logger
	source   FeatureSource
	stats    *observability.StatsManager
	interval time.Duration
	k        int

	mu    sync.RWMutex
	model *cluster.Model
}

func NewSegmentationWorker(
	log *slog.Logger,
	source FeatureSource,
	stats *observability.StatsManager,
	interval time.Duration,
	k int,
) *SegmentationWorker {
	return &SegmentationWorker{
		log:      log,
		source:   source,
		stats:    stats,
		interval: interval,
		k:        k,
	}
}

func (w *SegmentationWorker) Run(ctx context.Context) error {
	w.log.Info("Starting lead segmentation worker", "interval", w.interval, "k", w.k)

	// First fit happens immediately, then on every tick.
	if err := w.refit(ctx); err != nil {
		w.log.Warn("Initial segmentation skipped", "error", err)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.refit(ctx); err != nil {
				w.log.Warn("Segmentation run failed", "error", err)
				w.stats.IncrErrorCount()
			}
		}
	}
}

func (w *SegmentationWorker) refit(ctx context.Context) error {
	features, err := w.source.LeadFeatures(ctx)
	if err != nil {
		return err
	}
	if len(features) < w.k {
		return errors.ErrNotEnoughPoints
	}

	points := make([][]float64, len(features))
	for i, f := range features {
		points[i] = f.Vector()
	}

	model, err := cluster.Fit(points, cluster.Config{
		K:         w.k,
		Seeding:   cluster.SeedFurthestPoint,
		Normalize: true,
	}, w.log)
	if err != nil {
		return err
	}

	w.mu.Lock()
	w.model = &model
	w.mu.Unlock()

	w.stats.IncrJobRuns()
	w.log.Info("Lead segments refreshed",
		"leads", len(features),
		"iterations", model.Iterations,
		"converged", model.Converged,
	)
	return nil
}

// LatestModel returns the most recent fit, or false before the first
// successful run.
func (w *SegmentationWorker) LatestModel() (cluster.Model, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.model == nil {
		return cluster.Model{}, false
	}
	return *w.model, true
}
