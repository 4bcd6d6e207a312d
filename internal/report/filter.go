// ABOUTME: Pure athlete and date-range filtering over reading slices.
// ABOUTME: Date ranges are anchored to the latest date in the input.
package report

import (
	"time"

	"github.com/harperreed/teampulse/internal/models"
)

// Filter returns the readings matching the athlete and date-range
// predicates, preserving relative order. The input is never mutated.
//
// The athlete filter is AthleteAll or an exact athlete ID. A
// last-N-days range keeps readings dated on or after the latest date
// in the input minus N days; the anchor is the dataset's own latest
// date, not wall-clock time, so a stale export still windows
// meaningfully. An empty result is valid.
func Filter(readings []models.Reading, athlete string, rng DateRange) []models.Reading {
	var cutoff time.Time
	if !rng.All() {
		anchor, ok := latestDate(readings)
		if !ok {
			return nil
		}
		cutoff = anchor.AddDate(0, 0, -rng.Days)
	}

	out := make([]models.Reading, 0, len(readings))
	for _, r := range readings {
		if athlete != AthleteAll && r.AthleteID != athlete {
			continue
		}
		if !rng.All() && r.Date.Before(cutoff) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func latestDate(readings []models.Reading) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range readings {
		if !found || r.Date.After(latest) {
			latest = r.Date
			found = true
		}
	}
	return latest, found
}
