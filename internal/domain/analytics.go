package domain

// CategoryBreakdown is one slice of a dimension breakdown.
type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// TrendPoint is one period in a time-ordered count series.
type TrendPoint struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// InsightSeverity tags generated insights for dashboard styling.
type InsightSeverity string

const (
	SeverityCritical InsightSeverity = "critical"
	SeverityWarning  InsightSeverity = "warning"
	SeverityPositive InsightSeverity = "positive"
	SeverityNeutral  InsightSeverity = "neutral"
)

// TrendInsight is a human-readable observation derived from a trend series.
type TrendInsight struct {
	Message       string          `json:"message"`
	Severity      InsightSeverity `json:"severity"`
	Icon          string          `json:"icon"`
	PercentChange float64         `json:"percent_change,omitempty"`
}
