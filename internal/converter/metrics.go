package converter

import (
	"fmt"
	"sync"
	"time"
)

// Monitor accumulates conversion statistics across a Converter's lifetime.
type Monitor struct {
	mu          sync.Mutex
	conversions int
	cacheHits   int
	cacheMisses int
	totalTime   time.Duration
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// Record notes one completed conversion and its wall time.
func (m *Monitor) Record(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversions++
	m.totalTime += elapsed
}

func (m *Monitor) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheHits++
}

func (m *Monitor) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cacheMisses++
}

// Metrics is a point-in-time snapshot of the monitor.
type Metrics struct {
	Conversions int           `json:"conversions"`
	CacheHits   int           `json:"cache_hits"`
	CacheMisses int           `json:"cache_misses"`
	TotalTime   time.Duration `json:"total_time"`
	AverageTime time.Duration `json:"average_time"`
}

// Snapshot returns the current statistics.
func (m *Monitor) Snapshot() Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := Metrics{
		Conversions: m.conversions,
		CacheHits:   m.cacheHits,
		CacheMisses: m.cacheMisses,
		TotalTime:   m.totalTime,
	}
	if m.conversions > 0 {
		snap.AverageTime = m.totalTime / time.Duration(m.conversions)
	}
	return snap
}

// Reset clears all statistics.
func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.conversions = 0
	m.cacheHits = 0
	m.cacheMisses = 0
	m.totalTime = 0
}

// Report renders the statistics as a short human-readable text block.
func (m *Monitor) Report() string {
	s := m.Snapshot()
	return fmt.Sprintf(
		"conversions: %d\ncache hits: %d\ncache misses: %d\ntotal time: %s\naverage time: %s",
		s.Conversions, s.CacheHits, s.CacheMisses, s.TotalTime, s.AverageTime,
	)
}
