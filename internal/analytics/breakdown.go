package analytics

import (
	"fmt"
	"sort"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// Dimension names a grouping axis for breakdowns.
type Dimension string

const (
	DimensionCategory     Dimension = "category"
	DimensionSubCategory  Dimension = "sub_category"
	DimensionPriority     Dimension = "priority"
	DimensionStatus       Dimension = "status"
	DimensionCluster      Dimension = "cluster"
	DimensionAffiliate    Dimension = "affiliate"
	DimensionService      Dimension = "service"
	DimensionSupportGroup Dimension = "support_group"
	DimensionInitiator    Dimension = "initiator"
	DimensionRecordType   Dimension = "record_type"
)

// dimensionSpec describes how one dimension is extracted and presented.
type dimensionSpec struct {
	extract      func(*domain.TicketRecord) string
	missingLabel string
	topN         int      // 0 means no truncation
	fixedOrder   []string // overrides count ordering when set
}

var dimensionSpecs = map[Dimension]dimensionSpec{
	DimensionCategory: {
		extract:      func(r *domain.TicketRecord) string { return r.Category },
		missingLabel: "Uncategorized",
	},
	DimensionSubCategory: {
		extract:      func(r *domain.TicketRecord) string { return r.SubCategory },
		missingLabel: "Uncategorized",
	},
	DimensionPriority: {
		extract:      func(r *domain.TicketRecord) string { return string(r.Priority) },
		missingLabel: "Unassigned",
		fixedOrder:   []string{"P1", "P2", "P3", "P4", "Unassigned"},
	},
	DimensionStatus: {
		extract:      func(r *domain.TicketRecord) string { return r.Status },
		missingLabel: "Unknown",
	},
	DimensionCluster: {
		extract:      func(r *domain.TicketRecord) string { return r.Cluster },
		missingLabel: "Unknown",
	},
	DimensionAffiliate: {
		extract:      func(r *domain.TicketRecord) string { return r.Affiliate },
		missingLabel: "Unknown",
		topN:         15,
	},
	DimensionService: {
		extract:      func(r *domain.TicketRecord) string { return r.Service },
		missingLabel: "Unknown",
	},
	DimensionSupportGroup: {
		extract:      func(r *domain.TicketRecord) string { return r.SupportGroup },
		missingLabel: "Unassigned",
		topN:         10,
	},
	DimensionInitiator: {
		extract:      func(r *domain.TicketRecord) string { return r.Initiator },
		missingLabel: "Unknown",
		topN:         10,
	},
	DimensionRecordType: {
		extract:      func(r *domain.TicketRecord) string { return r.Process },
		missingLabel: "Unknown",
		topN:         15,
	},
}

// Dimensions lists the supported breakdown dimensions.
func Dimensions() []Dimension {
	names := make([]Dimension, 0, len(dimensionSpecs))
	for d := range dimensionSpecs {
		names = append(names, d)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

// Breakdown groups records along the named dimension and computes counts and
// percentages. Results are sorted by descending count with ties broken by
// first occurrence, except for priority which uses a fixed order. Some
// dimensions are truncated to a top-N after sorting.
func Breakdown(records []domain.TicketRecord, dim Dimension) ([]domain.CategoryBreakdown, error) {
	spec, ok := dimensionSpecs[dim]
	if !ok {
		return nil, fmt.Errorf("unknown dimension %q", dim)
	}
	return BreakdownBy(records, spec.extract, spec.missingLabel, spec.topN, spec.fixedOrder), nil
}

// BreakdownBy is the generic aggregation behind Breakdown, exposed for
// callers with ad-hoc extractors.
func BreakdownBy(records []domain.TicketRecord, extract func(*domain.TicketRecord) string, missingLabel string, topN int, fixedOrder []string) []domain.CategoryBreakdown {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := range records {
		label := extract(&records[i])
		if label == "" {
			label = missingLabel
		}
		if _, seen := counts[label]; !seen {
			order = append(order, label)
		}
		counts[label]++
	}

	total := len(records)
	out := make([]domain.CategoryBreakdown, 0, len(order))

	if len(fixedOrder) > 0 {
		for _, label := range fixedOrder {
			if count, ok := counts[label]; ok {
				out = append(out, breakdownEntry(label, count, total))
			}
		}
		return out
	}

	for _, label := range order {
		out = append(out, breakdownEntry(label, counts[label], total))
	}
	// Stable sort keeps first-occurrence order for equal counts.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func breakdownEntry(label string, count, total int) domain.CategoryBreakdown {
	pct := 0.0
	if total > 0 {
		pct = float64(count) / float64(total) * 100
	}
	return domain.CategoryBreakdown{Category: label, Count: count, Percentage: pct}
}
