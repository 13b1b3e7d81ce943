package ingest

import (
	"fmt"
	"time"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// AssignWeeks buckets records into relative week numbers anchored to the
// earliest request time across the entire batch, floored to the start of its
// day. Records that already carry a week label are left untouched, so
// re-running over labeled data is a no-op. An empty batch, or one with no
// parseable dates, is returned unchanged.
func AssignWeeks(records []domain.TicketRecord) []domain.TicketRecord {
	var minDate time.Time
	for _, rec := range records {
		if rec.RequestTime.IsZero() {
			continue
		}
		if minDate.IsZero() || rec.RequestTime.Before(minDate) {
			minDate = rec.RequestTime
		}
	}
	if minDate.IsZero() {
		return records
	}

	anchor := time.Date(minDate.Year(), minDate.Month(), minDate.Day(), 0, 0, 0, 0, minDate.Location())

	for i := range records {
		if records[i].WeekLabel != "" || records[i].RequestTime.IsZero() {
			continue
		}
		days := int(records[i].RequestTime.Sub(anchor) / (24 * time.Hour))
		week := days/7 + 1
		records[i].WeekNumber = week
		records[i].WeekLabel = fmt.Sprintf("Week %d", week)
	}
	return records
}
