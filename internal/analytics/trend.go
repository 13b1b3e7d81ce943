package analytics

import (
	"math"

	"github.com/spec-kit/ticket-analytics/internal/domain"
)

// Momentum classifies whether period-over-period change magnitude is growing.
type Momentum string

const (
	MomentumAccelerating Momentum = "accelerating"
	MomentumDecelerating Momentum = "decelerating"
	MomentumSteady       Momentum = "steady"
)

const (
	volatileThreshold = 0.3
	stableThreshold   = 0.15
	momentumThreshold = 0.3
)

// TrendStats summarizes direction, volatility and momentum of a count series.
type TrendStats struct {
	Deltas          []float64
	Average         float64
	IsIncreasing    bool
	IsDecreasing    bool
	VolatilityRatio float64
	IsVolatile      bool
	IsStable        bool
	Momentum        Momentum // empty when fewer than 3 deltas exist
}

// AnalyzeTrend computes trend statistics over a time-ordered count series.
// With fewer than two points it returns a neutral, stable default with no
// momentum classification.
func AnalyzeTrend(points []domain.TrendPoint) TrendStats {
	stats := TrendStats{IsStable: true}
	if len(points) == 0 {
		return stats
	}

	var sum float64
	for _, p := range points {
		sum += float64(p.Count)
	}
	stats.Average = sum / float64(len(points))

	if len(points) < 2 {
		return stats
	}

	deltas := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		deltas = append(deltas, float64(points[i].Count-points[i-1].Count))
	}
	stats.Deltas = deltas

	var positive, negative int
	var deltaSum float64
	for _, d := range deltas {
		deltaSum += d
		switch {
		case d > 0:
			positive++
		case d < 0:
			negative++
		}
	}
	avgDelta := deltaSum / float64(len(deltas))
	stats.IsIncreasing = positive > negative && avgDelta > 0
	stats.IsDecreasing = negative > positive && avgDelta < 0

	if stats.Average > 0 {
		stats.VolatilityRatio = stddev(deltas) / stats.Average
	}
	stats.IsVolatile = stats.VolatilityRatio > volatileThreshold
	stats.IsStable = stats.VolatilityRatio < stableThreshold

	if len(deltas) >= 3 {
		stats.Momentum = classifyMomentum(deltas)
	}
	return stats
}

// classifyMomentum compares the mean magnitude of the last three deltas
// against the mean magnitude of all earlier ones, calling a direction change
// only beyond a 30% margin.
func classifyMomentum(deltas []float64) Momentum {
	recent := meanAbs(deltas[len(deltas)-3:])
	earlier := meanAbs(deltas[:len(deltas)-3])
	if len(deltas) == 3 {
		earlier = meanAbs(deltas)
	}

	if earlier == 0 {
		if recent > 0 {
			return MomentumAccelerating
		}
		return MomentumSteady
	}

	switch {
	case recent > earlier*(1+momentumThreshold):
		return MomentumAccelerating
	case recent < earlier*(1-momentumThreshold):
		return MomentumDecelerating
	default:
		return MomentumSteady
	}
}

func meanAbs(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += math.Abs(v)
	}
	return sum / float64(len(values))
}

func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}
