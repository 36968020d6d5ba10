package debug

import (
	"testing"
	"time"
)

func TestGetTrend(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{600, "up"},
		{100, "down"},
		{300, "stable"},
	}
	for _, tc := range tests {
		if got := getTrend(tc.value, 512); got != tc.want {
			t.Errorf("getTrend(%.0f) = %q, expected %q", tc.value, got, tc.want)
		}
	}
}

func TestSendWithoutClientsIsNoop(t *testing.T) {
	if Hub.ClientCount() != 0 {
		t.Fatalf("Expected no dashboard clients, got %d", Hub.ClientCount())
	}

	// Sin clientes conectados nada se encola
	SendLog("backend", "info", "hello", nil)
	SendMetrics([]Metric{{Name: "x", Value: 1}})
	SendEnrichmentStatus(EnrichmentStatus{Provider: "llm", Status: "completed", LastRun: time.Now().UnixMilli()})

	if n := len(Hub.broadcast); n != 0 {
		t.Errorf("Expected empty broadcast queue, got %d messages", n)
	}
}

func TestPublishDropsWhenFull(t *testing.T) {
	h := &WebSocketHub{broadcast: make(chan []byte, 1)}

	h.publish(LogMessage{Type: "log", Message: "first"})
	h.publish(LogMessage{Type: "log", Message: "second"})

	if n := len(h.broadcast); n != 1 {
		t.Errorf("Expected 1 queued message, got %d", n)
	}
}
