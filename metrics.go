package qstate

import (
	"sync"
	"time"
)

// Metrics tracks grid-scan throughput for a Sampler.
type Metrics struct {
	mu sync.RWMutex

	CellCount          int64
	TotalSampleTime    time.Duration
	AverageCellLatency time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordCell(startTime time.Time) {
	duration := time.Since(startTime)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.CellCount++
	m.TotalSampleTime += duration
	m.AverageCellLatency = m.TotalSampleTime / time.Duration(m.CellCount)
}

// ExportMetrics returns a snapshot suitable for logging or scraping.
func (m *Metrics) ExportMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"cell_count":       m.CellCount,
		"total_time_ms":    m.TotalSampleTime.Milliseconds(),
		"avg_cell_latency": m.AverageCellLatency.String(),
	}
}
