// ABOUTME: Session configuration and one-shot report building.
// ABOUTME: Every derived view is a pure function of (dataset, session).
package report

import (
	"github.com/harperreed/teampulse/internal/models"
)

// AthleteAll selects every athlete (no athlete filtering).
const AthleteAll = "all"

// DateRange selects how far back from the dataset's latest date a
// view reaches. Days == 0 means all time.
type DateRange struct {
	Days int
}

// AllTime is the unconstrained date range.
func AllTime() DateRange { return DateRange{} }

// LastNDays keeps readings dated within the final n days of the
// dataset, anchored at its latest date (never wall-clock now).
func LastNDays(n int) DateRange { return DateRange{Days: n} }

// All reports whether the range is unconstrained.
func (d DateRange) All() bool { return d.Days <= 0 }

// Session is the explicit, immutable configuration for one report
// computation: the athlete filter, the date range, and the length of
// the secondary report window used for athlete comparison.
type Session struct {
	Athlete string
	Range   DateRange
	Window  int
}

// DefaultSession selects all athletes, all time, a 7-day window.
func DefaultSession() Session {
	return Session{Athlete: AthleteAll, Range: AllTime(), Window: 7}
}

// Report holds the four derived views for one (dataset, session)
// pair. All of them are plain data; rendering belongs to callers.
type Report struct {
	// Summary maps each metric with at least one observation in the
	// working subset to its summary statistics.
	Summary map[models.MetricType]MetricSummary `json:"summary"`
	// Daily is the per-date trend series over the working subset.
	Daily []TrendPoint `json:"daily"`
	// Athletes are the per-athlete rollups over the working subset.
	Athletes []AthleteRollup `json:"athletes"`
	// WindowAthletes are rollups recomputed over the last
	// Session.Window days of the whole dataset, independent of the
	// session's athlete and date filters.
	WindowAthletes []AthleteRollup `json:"window_athletes"`
}

// Build computes all four derived views. The working subset is the
// dataset filtered by the session's athlete and date range; the
// rollup builders additionally receive the unwindowed readings so
// the HRV trend always sees full history.
func Build(set *models.ReadingSet, cfg Session) *Report {
	subset := Filter(set.Readings, cfg.Athlete, cfg.Range)
	window := cfg.Window
	if window <= 0 {
		window = 7
	}
	windowSubset := Filter(set.Readings, AthleteAll, LastNDays(window))

	return &Report{
		Summary:        Summarize(subset),
		Daily:          DailyTrends(subset),
		Athletes:       BuildRollups(subset, set.Readings),
		WindowAthletes: BuildRollups(windowSubset, set.Readings),
	}
}
