// ABOUTME: Per-metric summary statistics over a reading subset.
// ABOUTME: Metrics with zero observations are absent, never zeroed.
package report

import (
	"github.com/harperreed/teampulse/internal/models"
)

// MetricSummary is the aggregate of one metric over some subset.
type MetricSummary struct {
	Avg   float64 `json:"avg"`
	Max   float64 `json:"max"`
	Min   float64 `json:"min"`
	Count int     `json:"count"`
}

// Summarize computes mean, max, min, and count for each tracked
// metric over the subset. A present zero counts as a valid
// observation here. Metrics with no observations have no entry in
// the result.
func Summarize(readings []models.Reading) map[models.MetricType]MetricSummary {
	out := make(map[models.MetricType]MetricSummary)
	for _, mt := range models.AllMetricTypes {
		var sum, max, min float64
		count := 0
		for _, r := range readings {
			v, ok := r.Metric(mt)
			if !ok {
				continue
			}
			if count == 0 || v > max {
				max = v
			}
			if count == 0 || v < min {
				min = v
			}
			sum += v
			count++
		}
		if count == 0 {
			continue
		}
		out[mt] = MetricSummary{
			Avg:   sum / float64(count),
			Max:   max,
			Min:   min,
			Count: count,
		}
	}
	return out
}

// mean averages a value list, returning nil for an empty list so a
// missing metric stays distinguishable from zero.
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	m := sum / float64(len(values))
	return &m
}
