package dto

import "github.com/spec-kit/ticket-analytics/internal/domain"

// BreakdownResponse wraps a dimension breakdown.
type BreakdownResponse struct {
	Dimension string                     `json:"dimension"`
	Total     int                        `json:"total"`
	Items     []domain.CategoryBreakdown `json:"items"`
}

// TrendResponse wraps a trend series.
type TrendResponse struct {
	Granularity string              `json:"granularity"`
	Points      []domain.TrendPoint `json:"points"`
}

// InsightsResponse wraps generated insights.
type InsightsResponse struct {
	Granularity string                `json:"granularity"`
	Insights    []domain.TrendInsight `json:"insights"`
}
