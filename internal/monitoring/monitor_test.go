package monitoring

import (
	"strings"
	"testing"
	"time"
)

func TestMonitorHealth(t *testing.T) {
	m := NewMonitor()

	if !m.IsHealthy() {
		t.Error("fresh monitor should be healthy")
	}
	if m.GetStatusSummary() != "No analyses yet" {
		t.Errorf("summary = %q", m.GetStatusSummary())
	}

	m.RecordSuccess(time.Second)
	if !m.IsHealthy() {
		t.Error("monitor should be healthy after a success")
	}

	m.RecordServerError()
	if m.IsHealthy() {
		t.Error("monitor should be unhealthy after a server error")
	}

	// Client errors are not health signals.
	m.RecordSuccess(time.Second)
	m.RecordClientError()
	if !m.IsHealthy() {
		t.Error("client errors must not flip health")
	}

	summary := m.GetStatusSummary()
	if !strings.Contains(summary, "2 analyses") || !strings.Contains(summary, "1 client errors") {
		t.Errorf("summary = %q", summary)
	}
}
