package jobs

import (
	"context"
	"log/slog"
	"os"
	"time"

	"crm-assistant/observability"

	"github.com/shirou/gopsutil/process"
)

// MonitorWorker samples the assistant's own process health (CPU, RSS)
// every few seconds and feeds the stats manager.
type MonitorWorker struct {
	log      *slog.Logger
	stats    *observability.StatsManager
	interval time.Duration
}

func NewMonitorWorker(log *slog.Logger, stats *observability.StatsManager, interval time.Duration) *MonitorWorker {
	return &MonitorWorker{log: log, stats: stats, interval: interval}
}

func (w *MonitorWorker) Run(ctx context.Context) error {
	w.log.Info("Starting process monitor worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			w.stats.SetProcessStats(cpu, rss)
			w.log.Debug("Process stats sampled", "cpu_percent", cpu, "rss_mb", rss/1024/1024)
		}
	}
}

// getSelfStats retrieves memory and CPU readings for the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
