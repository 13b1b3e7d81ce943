package observability

import (
	"testing"
	"time"
)

func TestMetricsImportTotals(t *testing.T) {
	m := NewMetrics()

	m.RecordImportRows(100, 3)
	m.RecordImportRows(50, 0)
	m.RecordChunkPersisted()
	m.RecordChunkPersisted()
	m.RecordChunkPersisted()

	parsed, dropped, chunks := m.ImportTotals()
	if parsed != 150 || dropped != 3 || chunks != 3 {
		t.Fatalf("totals = %d/%d/%d, want 150/3/3", parsed, dropped, chunks)
	}
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/records", "GET", 200, time.Millisecond)
	m.RecordError("/records", "GET", "INTERNAL_ERROR")
	m.RecordImportRows(1, 1)
	m.RecordChunkPersisted()

	parsed, dropped, chunks := m.ImportTotals()
	if parsed != 0 || dropped != 0 || chunks != 0 {
		t.Fatalf("nil metrics accumulated counts: %d/%d/%d", parsed, dropped, chunks)
	}
}
