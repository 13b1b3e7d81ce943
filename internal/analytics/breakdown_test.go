package analytics

import (
	"fmt"
	"math"
	"testing"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

func recordsWithCategories(labels ...string) []domain.TicketRecord {
	out := make([]domain.TicketRecord, len(labels))
	for i, label := range labels {
		out[i] = domain.TicketRecord{Category: label}
	}
	return out
}

func TestBreakdownCountsAndPercentages(t *testing.T) {
	records := recordsWithCategories("A", "B", "A", "C", "A", "B")

	got, err := Breakdown(records, DimensionCategory)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	want := []domain.CategoryBreakdown{
		{Category: "A", Count: 3, Percentage: 50},
		{Category: "B", Count: 2, Percentage: 100.0 / 3},
		{Category: "C", Count: 1, Percentage: 100.0 / 6},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, want %d: %v", len(got), len(want), got)
	}
	var pctSum float64
	for i := range want {
		if got[i].Category != want[i].Category || got[i].Count != want[i].Count {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
		if math.Abs(got[i].Percentage-want[i].Percentage) > 1e-9 {
			t.Errorf("entry %d percentage = %f, want %f", i, got[i].Percentage, want[i].Percentage)
		}
		pctSum += got[i].Percentage
	}
	if math.Abs(pctSum-100) > 1e-9 {
		t.Errorf("percentages sum to %f, want 100", pctSum)
	}
}

func TestBreakdownTieBreakFirstSeen(t *testing.T) {
	records := recordsWithCategories("X", "Y", "Y", "X")

	got, err := Breakdown(records, DimensionCategory)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if got[0].Category != "X" || got[1].Category != "Y" {
		t.Fatalf("tie order = %v, want first-seen X then Y", got)
	}
}

func TestBreakdownMissingLabel(t *testing.T) {
	records := recordsWithCategories("A", "", "")

	got, err := Breakdown(records, DimensionCategory)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if got[0].Category != "Uncategorized" || got[0].Count != 2 {
		t.Fatalf("got %v, want Uncategorized first with count 2", got)
	}
}

func TestBreakdownPriorityFixedOrder(t *testing.T) {
	records := []domain.TicketRecord{
		{Priority: domain.PriorityP4},
		{Priority: domain.PriorityP4},
		{Priority: domain.PriorityP4},
		{Priority: domain.PriorityP1},
		{},
	}

	got, err := Breakdown(records, DimensionPriority)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}

	wantOrder := []string{"P1", "P4", "Unassigned"}
	if len(got) != len(wantOrder) {
		t.Fatalf("got %v, want %v", got, wantOrder)
	}
	for i, label := range wantOrder {
		if got[i].Category != label {
			t.Errorf("position %d = %q, want %q (fixed severity order, not count order)", i, got[i].Category, label)
		}
	}
}

func TestBreakdownTopNTruncation(t *testing.T) {
	var records []domain.TicketRecord
	for i := 0; i < 12; i++ {
		records = append(records, domain.TicketRecord{SupportGroup: fmt.Sprintf("Group %d", i)})
	}

	got, err := Breakdown(records, DimensionSupportGroup)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("support_group breakdown has %d entries, want top 10", len(got))
	}
}

func TestBreakdownUnknownDimension(t *testing.T) {
	if _, err := Breakdown(nil, Dimension("nope")); err == nil {
		t.Fatal("expected error for unknown dimension")
	}
}

func TestBreakdownEmptyRecords(t *testing.T) {
	got, err := Breakdown(nil, DimensionCategory)
	if err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want empty", got)
	}
}

func TestDimensionsSorted(t *testing.T) {
	dims := Dimensions()
	if len(dims) != 10 {
		t.Fatalf("got %d dimensions, want 10", len(dims))
	}
	for i := 1; i < len(dims); i++ {
		if dims[i-1] >= dims[i] {
			t.Fatalf("dimensions not sorted: %v", dims)
		}
	}
}
