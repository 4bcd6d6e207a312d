// ABOUTME: Per-athlete rollups: session counts, coverage days, metric averages.
// ABOUTME: The HRV trend is computed from the athlete's full unwindowed history.
package report

import (
	"sort"

	"github.com/harperreed/teampulse/internal/models"
)

// AthleteRollup summarizes one athlete over a window subset. The
// rollup owns no readings; averages are nil when the window carries
// no values for that metric.
type AthleteRollup struct {
	AthleteID string `json:"athlete_id"`
	// Sessions is the number of readings for the athlete in the
	// window subset.
	Sessions int `json:"sessions"`
	// DaysWithData counts distinct dates in the window on which the
	// athlete has at least one metric present and greater than zero.
	DaysWithData int      `json:"days_with_data"`
	Recovery     *float64 `json:"recovery"`
	Strain       *float64 `json:"strain"`
	HRV          *float64 `json:"hrv"`
	Sleep        *float64 `json:"sleep"`
	// HRVTrend is the fixed five-label week-over-week trend, oldest
	// week first, computed over the athlete's full history.
	HRVTrend [TrendWeeks]models.TrendLabel `json:"hrv_trend"`
}

// BuildRollups groups the window subset by athlete and summarizes
// each group. The full, unwindowed readings are passed separately so
// the weekly HRV trend has real history even when the window is
// short. Rollups are sorted by average recovery descending; an
// athlete with no recovery average sorts as zero but keeps a nil
// displayed average. Ties break on athlete ID ascending.
func BuildRollups(window []models.Reading, full []models.Reading) []AthleteRollup {
	type group struct {
		sessions int
		days     map[string]bool
		recovery []float64
		strain   []float64
		hrv      []float64
		sleep    []float64
	}
	groups := make(map[string]*group)
	var order []string
	for _, r := range window {
		g, ok := groups[r.AthleteID]
		if !ok {
			g = &group{days: make(map[string]bool)}
			groups[r.AthleteID] = g
			order = append(order, r.AthleteID)
		}
		g.sessions++
		for _, mt := range models.AllMetricTypes {
			if r.HasPositive(mt) {
				g.days[r.DateKey] = true
				break
			}
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
		if v, ok := r.Metric(models.MetricSleepPerformance); ok {
			g.sleep = append(g.sleep, v)
		}
	}

	history := make(map[string][]models.Reading)
	for _, r := range full {
		if _, ok := groups[r.AthleteID]; ok {
			history[r.AthleteID] = append(history[r.AthleteID], r)
		}
	}

	rollups := make([]AthleteRollup, 0, len(order))
	for _, id := range order {
		g := groups[id]
		rollups = append(rollups, AthleteRollup{
			AthleteID:    id,
			Sessions:     g.sessions,
			DaysWithData: len(g.days),
			Recovery:     mean(g.recovery),
			Strain:       mean(g.strain),
			HRV:          mean(g.hrv),
			Sleep:        mean(g.sleep),
			HRVTrend:     HRVWeeklyTrend(history[id]),
		})
	}

	sort.SliceStable(rollups, func(i, j int) bool {
		ri, rj := sortRecovery(rollups[i]), sortRecovery(rollups[j])
		if ri != rj {
			return ri > rj
		}
		return rollups[i].AthleteID < rollups[j].AthleteID
	})
	return rollups
}

// sortRecovery treats a missing average as zero for ordering only.
func sortRecovery(r AthleteRollup) float64 {
	if r.Recovery == nil {
		return 0
	}
	return *r.Recovery
}
