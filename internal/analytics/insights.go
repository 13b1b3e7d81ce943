package analytics

import (
	"fmt"
	"math"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

const maxInsights = 3

const (
	iconTrendUp      = "fa-arrow-trend-up"
	iconTrendDown    = "fa-arrow-trend-down"
	iconVolatility   = "fa-wave-square"
	iconAcceleration = "fa-gauge-high"
	iconDeviation    = "fa-scale-unbalanced"
	iconSteady       = "fa-equals"
)

// WeeklyInsights generates up to three insights for a weekly trend series.
func WeeklyInsights(points []domain.TrendPoint, stats TrendStats) []domain.TrendInsight {
	return generateInsights(points, stats, "week")
}

// MonthlyInsights generates up to three insights for a monthly trend series.
func MonthlyInsights(points []domain.TrendPoint, stats TrendStats) []domain.TrendInsight {
	return generateInsights(points, stats, "month")
}

// generateInsights applies the insight rules in priority order and returns
// at most three results. The cap limits annotation verbosity on the
// dashboard; it is not a completeness guarantee.
func generateInsights(points []domain.TrendPoint, stats TrendStats, period string) []domain.TrendInsight {
	if len(points) < 2 {
		return nil
	}

	var insights []domain.TrendInsight
	add := func(in domain.TrendInsight) {
		if len(insights) < maxInsights {
			insights = append(insights, in)
		}
	}

	add(latestChangeInsight(points, period))

	if stats.IsVolatile && len(points) >= 4 {
		add(domain.TrendInsight{
			Message: fmt.Sprintf("Ticket volume is volatile: %s-over-%s swings average %.0f%% of typical volume.",
				period, period, stats.VolatilityRatio*100),
			Severity: domain.SeverityWarning,
			Icon:     iconVolatility,
		})
	}

	if stats.Momentum == MomentumAccelerating && stats.IsIncreasing {
		add(domain.TrendInsight{
			Message:  fmt.Sprintf("Growth is accelerating: recent %sly increases are outpacing the earlier trend.", period),
			Severity: domain.SeverityCritical,
			Icon:     iconAcceleration,
		})
	}

	if stats.Average > 0 {
		latest := float64(points[len(points)-1].Count)
		deviation := (latest - stats.Average) / stats.Average * 100
		if math.Abs(deviation) > 30 {
			severity := domain.SeverityWarning
			direction := "above"
			if deviation < 0 {
				severity = domain.SeverityPositive
				direction = "below"
			}
			add(domain.TrendInsight{
				Message: fmt.Sprintf("Latest %s is %.0f%% %s the period average of %.1f tickets.",
					period, math.Abs(deviation), direction, stats.Average),
				Severity:      severity,
				Icon:          iconDeviation,
				PercentChange: deviation,
			})
		}
	}

	if len(points) >= 3 {
		if overall, ok := percentChange(points[0].Count, points[len(points)-1].Count); ok && math.Abs(overall) > 25 {
			severity := domain.SeverityWarning
			icon := iconTrendUp
			verb := "risen"
			if overall < 0 {
				severity = domain.SeverityPositive
				icon = iconTrendDown
				verb = "fallen"
			}
			add(domain.TrendInsight{
				Message: fmt.Sprintf("Over the full range ticket volume has %s %.0f%% (%d → %d).",
					verb, math.Abs(overall), points[0].Count, points[len(points)-1].Count),
				Severity:      severity,
				Icon:          icon,
				PercentChange: overall,
			})
		}
	}

	return insights
}

// latestChangeInsight compares the latest period against the previous one.
// Increases are framed as bad, decreases as good; 20% and 50% magnitude
// thresholds pick the wording and severity.
func latestChangeInsight(points []domain.TrendPoint, period string) domain.TrendInsight {
	prev := points[len(points)-2].Count
	latest := points[len(points)-1].Count

	change, ok := percentChange(prev, latest)
	if !ok || math.Abs(change) < 20 {
		return domain.TrendInsight{
			Message:       fmt.Sprintf("Ticket volume is steady versus the previous %s (%d → %d).", period, prev, latest),
			Severity:      domain.SeverityNeutral,
			Icon:          iconSteady,
			PercentChange: change,
		}
	}

	magnitude := math.Abs(change)
	if change > 0 {
		severity := domain.SeverityWarning
		qualifier := "noticeably"
		if magnitude > 50 {
			severity = domain.SeverityCritical
			qualifier = "sharply"
		}
		return domain.TrendInsight{
			Message: fmt.Sprintf("Ticket volume increased %s: up %.0f%% versus the previous %s (%d → %d).",
				qualifier, magnitude, period, prev, latest),
			Severity:      severity,
			Icon:          iconTrendUp,
			PercentChange: change,
		}
	}

	severity := domain.SeverityPositive
	qualifier := "down"
	if magnitude > 50 {
		qualifier = "sharply down"
	}
	return domain.TrendInsight{
		Message: fmt.Sprintf("Ticket volume is %s %.0f%% versus the previous %s (%d → %d).",
			qualifier, magnitude, period, prev, latest),
		Severity:      severity,
		Icon:          iconTrendDown,
		PercentChange: change,
	}
}

// percentChange returns the relative change from a to b in percent. A zero
// baseline with a non-zero latest value cannot produce a meaningful ratio
// and reports not-ok.
func percentChange(a, b int) (float64, bool) {
	if a == 0 {
		if b == 0 {
			return 0, true
		}
		return 0, false
	}
	return float64(b-a) / float64(a) * 100, true
}
