// ABOUTME: Shared test fixtures for the report package.
// ABOUTME: Hand-built readings plus randomized rosters via gofakeit.
package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/harperreed/teampulse/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

// reading builds one reading; pass nil to leave a metric absent.
func reading(date, athlete string, recovery, hrv, strain, sleep *float64) models.Reading {
	r := models.Reading{
		Date:      day(date),
		DateKey:   date,
		AthleteID: athlete,
		Metrics:   make(map[models.MetricType]float64),
	}
	set := func(mt models.MetricType, v *float64) {
		if v != nil {
			r.Metrics[mt] = *v
		}
	}
	set(models.MetricRecovery, recovery)
	set(models.MetricHRV, hrv)
	set(models.MetricStrain, strain)
	set(models.MetricSleepPerformance, sleep)
	return r
}

func f(v float64) *float64 { return &v }

// randomRoster generates a deterministic fake roster: days
// consecutive calendar dates for each of n athletes, every metric
// populated.
func randomRoster(t *testing.T, n, days int) []models.Reading {
	t.Helper()
	faker := gofakeit.New(42)

	start := day("2024-01-01")
	var readings []models.Reading
	for i := 0; i < n; i++ {
		athlete := fmt.Sprintf("%s %s", faker.FirstName(), faker.LastName())
		for d := 0; d < days; d++ {
			date := start.AddDate(0, 0, d)
			readings = append(readings, models.Reading{
				Date:      date,
				DateKey:   date.Format("2006-01-02"),
				AthleteID: athlete,
				Metrics: map[models.MetricType]float64{
					models.MetricRecovery:         faker.Float64Range(1, 100),
					models.MetricHRV:              faker.Float64Range(20, 120),
					models.MetricStrain:           faker.Float64Range(0, 21),
					models.MetricSleepPerformance: faker.Float64Range(1, 100),
					models.MetricRestingHeartRate: faker.Float64Range(40, 75),
				},
			})
		}
	}
	return readings
}
