package analytics

import (
	"math"
	"testing"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

func points(counts ...int) []domain.TrendPoint {
	out := make([]domain.TrendPoint, len(counts))
	for i, c := range counts {
		out[i] = domain.TrendPoint{Period: "p", Count: c}
	}
	return out
}

func TestAnalyzeTrendFlatSeries(t *testing.T) {
	stats := AnalyzeTrend(points(100, 100, 100, 100))

	if !stats.IsStable {
		t.Error("flat series must be stable")
	}
	if stats.IsVolatile {
		t.Error("flat series must not be volatile")
	}
	if stats.IsIncreasing || stats.IsDecreasing {
		t.Errorf("flat series has direction: %+v", stats)
	}
	if stats.Average != 100 {
		t.Errorf("average = %f, want 100", stats.Average)
	}
	if stats.VolatilityRatio != 0 {
		t.Errorf("volatility = %f, want 0", stats.VolatilityRatio)
	}
}

func TestAnalyzeTrendDirection(t *testing.T) {
	up := AnalyzeTrend(points(10, 20, 30, 40))
	if !up.IsIncreasing || up.IsDecreasing {
		t.Errorf("rising series: %+v", up)
	}

	down := AnalyzeTrend(points(40, 30, 20, 10))
	if !down.IsDecreasing || down.IsIncreasing {
		t.Errorf("falling series: %+v", down)
	}
}

func TestAnalyzeTrendVolatile(t *testing.T) {
	stats := AnalyzeTrend(points(10, 50, 5, 60))
	if !stats.IsVolatile {
		t.Errorf("swinging series not volatile: %+v", stats)
	}
	if stats.IsStable {
		t.Errorf("swinging series marked stable: %+v", stats)
	}
}

func TestAnalyzeTrendShortSeries(t *testing.T) {
	empty := AnalyzeTrend(nil)
	if !empty.IsStable || empty.IsVolatile || empty.Average != 0 {
		t.Errorf("empty series: %+v", empty)
	}

	single := AnalyzeTrend(points(42))
	if !single.IsStable || single.Average != 42 || len(single.Deltas) != 0 {
		t.Errorf("single point: %+v", single)
	}
	if single.Momentum != "" {
		t.Errorf("single point momentum = %q, want none", single.Momentum)
	}

	pair := AnalyzeTrend(points(10, 20))
	if pair.Momentum != "" {
		t.Errorf("two points momentum = %q, want none (needs three deltas)", pair.Momentum)
	}
}

func TestAnalyzeTrendMomentum(t *testing.T) {
	accel := AnalyzeTrend(points(10, 11, 12, 13, 23, 33, 43))
	if accel.Momentum != MomentumAccelerating {
		t.Errorf("momentum = %q, want accelerating", accel.Momentum)
	}

	decel := AnalyzeTrend(points(10, 20, 30, 40, 41, 42, 43))
	if decel.Momentum != MomentumDecelerating {
		t.Errorf("momentum = %q, want decelerating", decel.Momentum)
	}

	steady := AnalyzeTrend(points(10, 20, 30, 40, 50, 60, 70))
	if steady.Momentum != MomentumSteady {
		t.Errorf("momentum = %q, want steady", steady.Momentum)
	}
}

func TestAnalyzeTrendMomentumThreeDeltas(t *testing.T) {
	// With exactly three deltas the recent window is compared against the
	// mean of all deltas, so a uniform series reads steady.
	stats := AnalyzeTrend(points(10, 20, 30, 40))
	if stats.Momentum != MomentumSteady {
		t.Errorf("momentum = %q, want steady", stats.Momentum)
	}
}

func TestStddev(t *testing.T) {
	if got := stddev(nil); got != 0 {
		t.Errorf("stddev(nil) = %f", got)
	}
	if got := stddev([]float64{5, 5, 5}); got != 0 {
		t.Errorf("stddev of constants = %f", got)
	}
	// Population stddev of {2, 4, 4, 4, 5, 5, 7, 9} is exactly 2.
	if got := stddev([]float64{2, 4, 4, 4, 5, 5, 7, 9}); math.Abs(got-2) > 1e-9 {
		t.Errorf("stddev = %f, want 2", got)
	}
}
