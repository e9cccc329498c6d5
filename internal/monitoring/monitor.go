package monitoring

import (
	"fmt"
	"log"
	"sync"
	"time"
)

// Monitor tracks analysis outcomes for the health endpoints. Requests run
// concurrently, so all counters are mutex-guarded.
type Monitor struct {
	mu             sync.Mutex
	analyses       int64
	clientErrors   int64
	serverErrors   int64
	lastRunSuccess bool
	lastRunTime    time.Time
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

func (m *Monitor) RecordSuccess(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analyses++
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()

	log.Printf("Analysis completed successfully (took %v)", duration)
}

// RecordClientError counts rejected input. It does not affect health: a bad
// URL says nothing about the service.
func (m *Monitor) RecordClientError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clientErrors++
}

func (m *Monitor) RecordServerError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.serverErrors++
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()
}

func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastRunTime.IsZero() {
		return true // No runs yet, assume healthy
	}
	return m.lastRunSuccess
}

func (m *Monitor) GetStatusSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.lastRunTime.IsZero() {
		return "No analyses yet"
	}

	outcome := "succeeded"
	if !m.lastRunSuccess {
		outcome = "failed"
	}
	return fmt.Sprintf("%d analyses, %d client errors, %d server errors; last analysis %s at %s",
		m.analyses, m.clientErrors, m.serverErrors, outcome, m.lastRunTime.Format("Jan 2 15:04"))
}
