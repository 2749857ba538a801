package monitoring

import (
	"sync"
	"time"
)

// Monitor collects runtime stats about the display service for the
// /api/stats endpoint.
type Monitor struct {
	mu           sync.RWMutex
	stats        map[string]interface{}
	startTime    time.Time
	refreshes    int64
	refreshFails int64
}

// NewMonitor creates a new monitoring instance.
func NewMonitor() *Monitor {
	return &Monitor{
		stats:     make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordRefresh notes a completed refresh and how many orders it
// brought back.
func (m *Monitor) RecordRefresh(orderCount int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshes++
	m.stats["orders_mirrored"] = orderCount
	m.stats["last_refresh"] = time.Now().Format(time.RFC3339)
}

// RecordRefreshError notes a failed refresh.
func (m *Monitor) RecordRefreshError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshFails++
	m.stats["last_refresh_error"] = err.Error()
}

// Set records an arbitrary stat value.
func (m *Monitor) Set(name string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats[name] = value
}

// Snapshot returns all current stats plus uptime and refresh counters.
func (m *Monitor) Snapshot() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Copy to avoid concurrent map access by the caller.
	out := make(map[string]interface{}, len(m.stats)+3)
	for k, v := range m.stats {
		out[k] = v
	}
	out["uptime_seconds"] = time.Since(m.startTime).Seconds()
	out["refreshes"] = m.refreshes
	out["refresh_errors"] = m.refreshFails
	return out
}
