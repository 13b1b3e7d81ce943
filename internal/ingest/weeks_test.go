package ingest

import (
	"testing"
	"time"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

func recordAt(day int) domain.TicketRecord {
	return domain.TicketRecord{
		RequestTime: time.Date(2025, time.March, day, 10, 30, 0, 0, time.UTC),
	}
}

func TestAssignWeeksTenDaySpan(t *testing.T) {
	records := []domain.TicketRecord{
		recordAt(1), recordAt(3), recordAt(7), recordAt(8), recordAt(10),
	}

	records = AssignWeeks(records)

	wantWeeks := []int{1, 1, 1, 2, 2}
	for i, rec := range records {
		if rec.WeekNumber != wantWeeks[i] {
			t.Errorf("record %d: week %d, want %d", i, rec.WeekNumber, wantWeeks[i])
		}
	}
	if records[0].WeekLabel != "Week 1" || records[4].WeekLabel != "Week 2" {
		t.Errorf("labels = %q, %q", records[0].WeekLabel, records[4].WeekLabel)
	}
}

func TestAssignWeeksAnchorsToDayStart(t *testing.T) {
	// The earliest record is at 23:00; a record 8 hours later is the same
	// relative day only if the anchor floors to midnight.
	records := []domain.TicketRecord{
		{RequestTime: time.Date(2025, time.March, 1, 23, 0, 0, 0, time.UTC)},
		{RequestTime: time.Date(2025, time.March, 8, 7, 0, 0, 0, time.UTC)},
	}

	records = AssignWeeks(records)

	if records[0].WeekNumber != 1 {
		t.Errorf("first record week = %d, want 1", records[0].WeekNumber)
	}
	if records[1].WeekNumber != 2 {
		t.Errorf("second record week = %d, want 2", records[1].WeekNumber)
	}
}

func TestAssignWeeksIdempotent(t *testing.T) {
	records := AssignWeeks([]domain.TicketRecord{recordAt(1), recordAt(9)})

	first := make([]domain.TicketRecord, len(records))
	copy(first, records)

	// A second pass with a different minimum must not relabel anything.
	again := append([]domain.TicketRecord{recordAt(20)}, records...)
	again = AssignWeeks(again)

	for i, rec := range again[1:] {
		if rec.WeekNumber != first[i].WeekNumber || rec.WeekLabel != first[i].WeekLabel {
			t.Errorf("record %d changed on second pass: %+v vs %+v", i, rec, first[i])
		}
	}
}

func TestAssignWeeksEmptyBatch(t *testing.T) {
	if got := AssignWeeks(nil); len(got) != 0 {
		t.Fatalf("AssignWeeks(nil) = %v", got)
	}

	records := AssignWeeks([]domain.TicketRecord{{}})
	if records[0].WeekNumber != 0 || records[0].WeekLabel != "" {
		t.Fatalf("zero-time record was labeled: %+v", records[0])
	}
}
