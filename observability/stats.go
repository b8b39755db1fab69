package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// RecentExchange is one chat turn kept for the live activity feed.
type RecentExchange struct {
	SessionID string `json:"session_id"`
	Intent    string `json:"intent"`
	Timestamp string `json:"timestamp"`
}

// AssistantStats aggregates the counters exposed to operators.
type AssistantStats struct {
	MessagesProcessed uint64  `json:"messages_processed"`
	OverridesFired    uint64  `json:"overrides_fired"`
	Fallbacks         uint64  `json:"fallbacks"`
	KBQueries         uint64  `json:"kb_queries"`
	JobRuns           uint64  `json:"job_runs"`
	ErrorCount        uint64  `json:"error_count"`
	MessagesPerSecond float64 `json:"messages_per_second"`

	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	CPUPercent float64 `json:"cpu_percent"`
	RSSBytes   uint64  `json:"rss_bytes"`

	RecentExchanges []RecentExchange `json:"recent_exchanges"`
}

// StatsManager collects real-time telemetry. Counters are atomic so hot
// paths never contend on the mutex; the mutex only guards the snapshot.
type StatsManager struct {
	log         *slog.Logger
	mu          sync.RWMutex
	latestStats AssistantStats

	messagesProcessed uint64
	overridesFired    uint64
	fallbacks         uint64
	kbQueries         uint64
	jobRuns           uint64
	errorCount        uint64
	windowMessages    uint64
	lastCheck         time.Time
}

func NewStatsManager(log *slog.Logger) *StatsManager {
	return &StatsManager{
		log:       log,
		lastCheck: time.Now(),
		latestStats: AssistantStats{
			RecentExchanges: make([]RecentExchange, 0),
		},
	}
}

func (sm *StatsManager) IncrMessagesProcessed() {
	atomic.AddUint64(&sm.messagesProcessed, 1)
	atomic.AddUint64(&sm.windowMessages, 1)
}

func (sm *StatsManager) IncrOverridesFired() {
	atomic.AddUint64(&sm.overridesFired, 1)
}

func (sm *StatsManager) IncrFallbacks() {
	atomic.AddUint64(&sm.fallbacks, 1)
}

func (sm *StatsManager) IncrKBQueries() {
	atomic.AddUint64(&sm.kbQueries, 1)
}

func (sm *StatsManager) IncrJobRuns() {
	atomic.AddUint64(&sm.jobRuns, 1)
}

func (sm *StatsManager) IncrErrorCount() {
	atomic.AddUint64(&sm.errorCount, 1)
}

// AddExchange records a chat turn in the activity feed, newest first,
// capped at the last 20.
func (sm *StatsManager) AddExchange(sessionID, intent string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	exchange := RecentExchange{
		SessionID: sessionID,
		Intent:    intent,
		Timestamp: time.Now().Format("15:04:05"),
	}
	sm.latestStats.RecentExchanges = append([]RecentExchange{exchange}, sm.latestStats.RecentExchanges...)
	if len(sm.latestStats.RecentExchanges) > 20 {
		sm.latestStats.RecentExchanges = sm.latestStats.RecentExchanges[:20]
	}
}

// SetProcessStats stores CPU and memory readings collected by the monitor
// worker.
func (sm *StatsManager) SetProcessStats(cpuPercent float64, rssBytes uint64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.latestStats.CPUPercent = cpuPercent
	sm.latestStats.RSSBytes = rssBytes
}

// Listen refreshes the snapshot every second until the context is done.
func (sm *StatsManager) Listen(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			sm.log.Info("Stats manager stopped")
			return
		case <-ticker.C:
			sm.updateStats()
		}
	}
}

func (sm *StatsManager) updateStats() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	duration := now.Sub(sm.lastCheck).Seconds()
	if duration > 0 {
		window := atomic.SwapUint64(&sm.windowMessages, 0)
		sm.latestStats.MessagesPerSecond = float64(window) / duration
	}
	sm.lastCheck = now

	sm.latestStats.MessagesProcessed = atomic.LoadUint64(&sm.messagesProcessed)
	sm.latestStats.OverridesFired = atomic.LoadUint64(&sm.overridesFired)
	sm.latestStats.Fallbacks = atomic.LoadUint64(&sm.fallbacks)
	sm.latestStats.KBQueries = atomic.LoadUint64(&sm.kbQueries)
	sm.latestStats.JobRuns = atomic.LoadUint64(&sm.jobRuns)
	sm.latestStats.ErrorCount = atomic.LoadUint64(&sm.errorCount)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	sm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	sm.latestStats.NumGC = m.NumGC

	sm.log.Debug("Stats updated",
		"messages", sm.latestStats.MessagesProcessed,
		"fallbacks", sm.latestStats.Fallbacks,
		"mem_mb", sm.latestStats.AllocMemMb,
	)
}

func (sm *StatsManager) GetLatest() AssistantStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.latestStats
}
