package jobs

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"crm-assistant/leads"
	"crm-assistant/observability"

	"github.com/stretchr/testify/require"
)

type staticFeatureSource struct {
	features []leads.Features
}

func (s staticFeatureSource) LeadFeatures(_ context.Context) ([]leads.Features, error) {
	return s.features, nil
}

func TestSegmentationWorker_FitsOnStart(t *testing.T) {
	req := require.New(t)
	stats := observability.NewStatsManager(slog.Default())

	source := staticFeatureSource{features: []leads.Features{
		{Engagement: 90, CompanySize: 5, BudgetFit: 85, Authority: 80, NeedUrgency: 90, Timeline: 85},
		{Engagement: 88, CompanySize: 4, BudgetFit: 80, Authority: 75, NeedUrgency: 85, Timeline: 80},
		{Engagement: 10, CompanySize: 1, BudgetFit: 15, Authority: 10, NeedUrgency: 5, Timeline: 10},
		{Engagement: 12, CompanySize: 1, BudgetFit: 10, Authority: 15, NeedUrgency: 10, Timeline: 15},
	}}

	worker := NewSegmentationWorker(slog.Default(), source, stats, time.Hour, 2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = worker.Run(ctx)
		close(done)
	}()

	req.Eventually(func() bool {
		_, ok := worker.LatestModel()
		return ok
	}, time.Second, 10*time.Millisecond)

	model, ok := worker.LatestModel()
	req.True(ok)
	req.Equal(2, model.K)
	req.Len(model.Assignments, 4)

	// Engaged leads land together, idle ones together.
	req.Equal(model.Assignments[0], model.Assignments[1])
	req.Equal(model.Assignments[2], model.Assignments[3])
	req.NotEqual(model.Assignments[0], model.Assignments[2])

	cancel()
	<-done
}

func TestSegmentationWorker_TooFewLeads(t *testing.T) {
	req := require.New(t)
	stats := observability.NewStatsManager(slog.Default())

	source := staticFeatureSource{features: []leads.Features{
		{Engagement: 50, CompanySize: 2},
	}}
	worker := NewSegmentationWorker(slog.Default(), source, stats, time.Hour, 3)

	err := worker.refit(context.Background())
	req.Error(err)

	_, ok := worker.LatestModel()
	req.False(ok)
}
