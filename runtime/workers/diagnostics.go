package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Gauges exposes the in-memory state worth watching on a running broker.
type Gauges interface {
	Size() int
	GroupCount() int
	QueueDepth() int
	QueueCapacity() int
	PendingTimers() int
}

type DiagnosticsWorker struct {
	log      *slog.Logger
	gauges   Gauges
	interval time.Duration
}

func NewDiagnosticsWorker(log *slog.Logger, gauges Gauges, interval time.Duration) *DiagnosticsWorker {
	return &DiagnosticsWorker{log: log, gauges: gauges, interval: interval}
}

// Run logs connection counts, queue pressure and process stats every interval.
func (w *DiagnosticsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		w.log.Warn("Process stats unavailable", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			attrs := []any{
				"connections", w.gauges.Size(),
				"groups", w.gauges.GroupCount(),
				"queue_depth", w.gauges.QueueDepth(),
				"queue_capacity", w.gauges.QueueCapacity(),
				"timers", w.gauges.PendingTimers(),
			}
			if p != nil {
				if rss, cpu, err := selfStats(p); err == nil {
					attrs = append(attrs, "rss_bytes", rss, "cpu_percent", cpu)
				} else {
					w.log.Debug("Failed to collect self stats", "error", err)
				}
			}
			w.log.Info("Broker diagnostics", attrs...)
		}
	}
}

func selfStats(p *process.Process) (uint64, float64, error) {
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
