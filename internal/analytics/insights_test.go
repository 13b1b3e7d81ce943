package analytics

import (
	"math"
	"testing"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

func TestWeeklyInsightsSharpIncrease(t *testing.T) {
	pts := points(10, 25)
	insights := WeeklyInsights(pts, AnalyzeTrend(pts))

	if len(insights) == 0 {
		t.Fatal("no insights for a 150% jump")
	}
	first := insights[0]
	if first.Severity != domain.SeverityCritical {
		t.Errorf("severity = %q, want critical for a >50%% increase", first.Severity)
	}
	if first.Icon != iconTrendUp {
		t.Errorf("icon = %q, want %q", first.Icon, iconTrendUp)
	}
	if math.Abs(first.PercentChange-150) > 1e-9 {
		t.Errorf("percent change = %f, want 150", first.PercentChange)
	}
}

func TestWeeklyInsightsModerateIncrease(t *testing.T) {
	pts := points(100, 130)
	insights := WeeklyInsights(pts, AnalyzeTrend(pts))

	if insights[0].Severity != domain.SeverityWarning {
		t.Errorf("severity = %q, want warning for a 30%% increase", insights[0].Severity)
	}
}

func TestWeeklyInsightsDecreaseIsPositive(t *testing.T) {
	pts := points(100, 60)
	insights := WeeklyInsights(pts, AnalyzeTrend(pts))

	if insights[0].Severity != domain.SeverityPositive {
		t.Errorf("severity = %q, want positive for a decrease", insights[0].Severity)
	}
	if insights[0].Icon != iconTrendDown {
		t.Errorf("icon = %q, want %q", insights[0].Icon, iconTrendDown)
	}
	if insights[0].PercentChange >= 0 {
		t.Errorf("percent change = %f, want negative", insights[0].PercentChange)
	}
}

func TestWeeklyInsightsSteady(t *testing.T) {
	pts := points(100, 100, 100, 100)
	insights := WeeklyInsights(pts, AnalyzeTrend(pts))

	if len(insights) != 1 {
		t.Fatalf("got %d insights, want only the steady one: %v", len(insights), insights)
	}
	if insights[0].Severity != domain.SeverityNeutral || insights[0].Icon != iconSteady {
		t.Errorf("steady insight = %+v", insights[0])
	}
	for _, in := range insights {
		if in.Icon == iconVolatility {
			t.Errorf("stable series produced a volatility insight: %+v", in)
		}
	}
}

func TestWeeklyInsightsVolatilityNeedsFourPoints(t *testing.T) {
	// Three wildly swinging points: volatile per stats, but too short for
	// the volatility insight.
	pts := points(10, 60, 5)
	stats := AnalyzeTrend(pts)
	if !stats.IsVolatile {
		t.Fatalf("precondition failed, series not volatile: %+v", stats)
	}

	for _, in := range WeeklyInsights(pts, stats) {
		if in.Icon == iconVolatility {
			t.Fatalf("volatility insight emitted for a 3-point series: %+v", in)
		}
	}

	pts = points(10, 60, 5, 70)
	found := false
	for _, in := range WeeklyInsights(pts, AnalyzeTrend(pts)) {
		if in.Icon == iconVolatility {
			found = true
		}
	}
	if !found {
		t.Error("no volatility insight for a 4-point swinging series")
	}
}

func TestInsightsCappedAtThree(t *testing.T) {
	// A volatile, accelerating, sharply rising series trips more than three
	// rules; only three insights come back.
	pts := points(10, 12, 11, 13, 40, 5, 120)
	insights := WeeklyInsights(pts, AnalyzeTrend(pts))

	if len(insights) > 3 {
		t.Fatalf("got %d insights, want at most 3", len(insights))
	}
}

func TestInsightsFewerThanTwoPoints(t *testing.T) {
	if got := WeeklyInsights(points(5), AnalyzeTrend(points(5))); got != nil {
		t.Fatalf("single point produced insights: %v", got)
	}
	if got := MonthlyInsights(nil, AnalyzeTrend(nil)); got != nil {
		t.Fatalf("empty series produced insights: %v", got)
	}
}

func TestInsightsZeroBaseline(t *testing.T) {
	pts := points(0, 50)
	insights := WeeklyInsights(pts, AnalyzeTrend(pts))

	// No meaningful ratio from a zero baseline: the latest-change rule falls
	// back to the steady wording.
	if insights[0].Severity != domain.SeverityNeutral {
		t.Errorf("severity = %q, want neutral", insights[0].Severity)
	}
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		a, b int
		want float64
		ok   bool
	}{
		{10, 25, 150, true},
		{100, 60, -40, true},
		{50, 50, 0, true},
		{0, 0, 0, true},
		{0, 10, 0, false},
	}
	for _, tc := range tests {
		got, ok := percentChange(tc.a, tc.b)
		if ok != tc.ok || math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("percentChange(%d, %d) = (%f, %v), want (%f, %v)", tc.a, tc.b, got, ok, tc.want, tc.ok)
		}
	}
}
