// ABOUTME: Tests for Reading and ReadingSet models.
// ABOUTME: Covers metric presence rules, athletes listing, and date span.
package models

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestReadingHasPositive(t *testing.T) {
	r := Reading{Metrics: map[MetricType]float64{
		MetricHRV:      0,
		MetricRecovery: 55,
	}}

	if r.HasPositive(MetricHRV) {
		t.Error("zero HRV should not count as positive")
	}
	if !r.HasPositive(MetricRecovery) {
		t.Error("recovery 55 should count as positive")
	}
	if r.HasPositive(MetricStrain) {
		t.Error("absent strain should not count as positive")
	}

	if _, ok := r.Metric(MetricHRV); !ok {
		t.Error("zero HRV is still present for plain aggregation")
	}
}

func TestReadingSetAthletes(t *testing.T) {
	set := NewReadingSet([]Reading{
		{Date: day("2024-01-01"), AthleteID: "A B"},
		{Date: day("2024-01-01"), AthleteID: "C D"},
		{Date: day("2024-01-02"), AthleteID: "A B"},
	})

	athletes := set.Athletes()
	if len(athletes) != 2 {
		t.Fatalf("expected 2 athletes, got %d", len(athletes))
	}
	if athletes[0] != "A B" || athletes[1] != "C D" {
		t.Errorf("unexpected athlete order: %v", athletes)
	}
}

func TestReadingSetDateSpan(t *testing.T) {
	set := NewReadingSet([]Reading{
		{Date: day("2024-01-01"), AthleteID: "A B"},
		{Date: day("2024-02-10"), AthleteID: "A B"},
	})

	earliest, ok := set.EarliestDate()
	if !ok || !earliest.Equal(day("2024-01-01")) {
		t.Errorf("EarliestDate = %v, %v", earliest, ok)
	}
	latest, ok := set.LatestDate()
	if !ok || !latest.Equal(day("2024-02-10")) {
		t.Errorf("LatestDate = %v, %v", latest, ok)
	}

	empty := NewReadingSet(nil)
	if _, ok := empty.LatestDate(); ok {
		t.Error("empty set should have no latest date")
	}
	if empty.ID == set.ID {
		t.Error("each upload should get its own ID")
	}
}
