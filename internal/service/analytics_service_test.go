package service

import (
	"testing"
	"time"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

func TestBucketTrendWeekly(t *testing.T) {
	records := []domain.TicketRecord{
		{WeekNumber: 2},
		{WeekNumber: 1},
		{WeekNumber: 2},
		{WeekNumber: 5},
		{WeekNumber: 0}, // unassigned, excluded
	}

	got := bucketTrend(records, GranularityWeekly)

	want := []domain.TrendPoint{
		{Period: "Week 1", Count: 1},
		{Period: "Week 2", Count: 2},
		{Period: "Week 5", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBucketTrendMonthly(t *testing.T) {
	at := func(month time.Month, day int) domain.TicketRecord {
		return domain.TicketRecord{RequestTime: time.Date(2025, month, day, 9, 0, 0, 0, time.UTC)}
	}
	records := []domain.TicketRecord{
		at(time.March, 1), at(time.January, 5), at(time.March, 20), at(time.February, 10),
	}

	got := bucketTrend(records, GranularityMonthly)

	want := []domain.TrendPoint{
		{Period: "2025-01", Count: 1},
		{Period: "2025-02", Count: 1},
		{Period: "2025-03", Count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestServiceKeyPart(t *testing.T) {
	if got := serviceKeyPart(nil); got != "all" {
		t.Errorf("serviceKeyPart(nil) = %q", got)
	}
	key := domain.ServiceCards
	if got := serviceKeyPart(&key); got != "cards" {
		t.Errorf("serviceKeyPart(cards) = %q", got)
	}
}
