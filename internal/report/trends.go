// ABOUTME: Daily trend series: per-date averages of recovery, strain, HRV.
// ABOUTME: Groups by exact date-key equality, orders by parsed date.
package report

import (
	"sort"
	"time"

	"github.com/harperreed/teampulse/internal/models"
)

// TrendPoint carries the per-date averages for one distinct date in
// a subset. Each average is nil when no reading that date carried
// the metric.
type TrendPoint struct {
	Date     string    `json:"date"`
	Day      time.Time `json:"day"`
	Recovery *float64  `json:"recovery"`
	Strain   *float64  `json:"strain"`
	HRV      *float64  `json:"hrv"`
}

// DailyTrends groups the subset by exact date key and averages
// recovery, strain, and HRV independently within each group. A
// present zero counts as an observation. The result is sorted
// ascending by date; each distinct date key appears exactly once.
func DailyTrends(readings []models.Reading) []TrendPoint {
	type group struct {
		day      time.Time
		recovery []float64
		strain   []float64
		hrv      []float64
	}
	groups := make(map[string]*group)
	var order []string
	for _, r := range readings {
		g, ok := groups[r.DateKey]
		if !ok {
			g = &group{day: r.Date}
			groups[r.DateKey] = g
			order = append(order, r.DateKey)
		}
		if v, ok := r.Metric(models.MetricRecovery); ok {
			g.recovery = append(g.recovery, v)
		}
		if v, ok := r.Metric(models.MetricStrain); ok {
			g.strain = append(g.strain, v)
		}
		if v, ok := r.Metric(models.MetricHRV); ok {
			g.hrv = append(g.hrv, v)
		}
	}

	points := make([]TrendPoint, 0, len(order))
	for _, key := range order {
		g := groups[key]
		points = append(points, TrendPoint{
			Date:     key,
			Day:      g.day,
			Recovery: mean(g.recovery),
			Strain:   mean(g.strain),
			HRV:      mean(g.hrv),
		})
	}
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Day.Before(points[j].Day)
	})
	return points
}
