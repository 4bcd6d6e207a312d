// ABOUTME: Week-over-week HRV trend classifier anchored to an athlete's latest reading.
// ABOUTME: Six 7-day buckets, five labels, +/-2 ms dead band.
package report

import (
	"sort"
	"time"

	"github.com/harperreed/teampulse/internal/models"
)

// TrendWeeks is the fixed number of trend labels per athlete,
// regardless of how much history exists.
const TrendWeeks = 5

// trendBuckets is the number of consecutive 7-day windows compared
// pairwise to produce TrendWeeks labels.
const trendBuckets = TrendWeeks + 1

// trendDeadBand is the week-over-week HRV delta, in the same units
// as the metric, below which a change counts as flat.
const trendDeadBand = 2.0

// HRVWeeklyTrend classifies an athlete's week-over-week HRV movement
// from their full reading history, in any order. Only readings with
// an HRV present and greater than zero qualify. The six buckets are
// half-open 7-day intervals (anchor-(w+1)*7d, anchor-w*7d] ending at
// the timestamp of the latest qualifying reading, so a roster with
// stale data is classified against its own recency rather than
// calendar today. Labels are oldest week first; a comparison with an
// empty bucket on either side is no_data.
func HRVWeeklyTrend(history []models.Reading) [TrendWeeks]models.TrendLabel {
	labels := [TrendWeeks]models.TrendLabel{}
	for i := range labels {
		labels[i] = models.TrendNoData
	}

	var qualified []models.Reading
	for _, r := range history {
		if r.HasPositive(models.MetricHRV) {
			qualified = append(qualified, r)
		}
	}
	if len(qualified) == 0 {
		return labels
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Date.Before(qualified[j].Date)
	})

	anchor := qualified[len(qualified)-1].Date

	// weekAvgs is ordered oldest to newest: index 0 is the bucket six
	// weeks back, index trendBuckets-1 ends at the anchor.
	var sums [trendBuckets]float64
	var counts [trendBuckets]int
	for _, r := range qualified {
		for w := 0; w < trendBuckets; w++ {
			lo := anchor.Add(-time.Duration(w+1) * 7 * 24 * time.Hour)
			hi := anchor.Add(-time.Duration(w) * 7 * 24 * time.Hour)
			if r.Date.After(lo) && !r.Date.After(hi) {
				idx := trendBuckets - 1 - w
				sums[idx] += r.Metrics[models.MetricHRV]
				counts[idx]++
				break
			}
		}
	}

	weekAvgs := [trendBuckets]*float64{}
	for i := range sums {
		if counts[i] > 0 {
			avg := sums[i] / float64(counts[i])
			weekAvgs[i] = &avg
		}
	}

	for i := 1; i < trendBuckets; i++ {
		prev, cur := weekAvgs[i-1], weekAvgs[i]
		if prev == nil || cur == nil {
			continue
		}
		diff := *cur - *prev
		switch {
		case diff > trendDeadBand:
			labels[i-1] = models.TrendRising
		case diff < -trendDeadBand:
			labels[i-1] = models.TrendDeclining
		default:
			labels[i-1] = models.TrendFlat
		}
	}
	return labels
}
