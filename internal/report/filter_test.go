// ABOUTME: Tests for athlete and date-range filtering.
// ABOUTME: Covers identity filtering, dataset-anchored windows, empty results.
package report

import (
	"testing"

	"github.com/harperreed/teampulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterAllIsIdentity(t *testing.T) {
	readings := []models.Reading{
		reading("2024-01-01", "A B", f(50), nil, nil, nil),
		reading("2024-01-02", "C D", f(60), nil, nil, nil),
		reading("2024-01-03", "A B", f(70), nil, nil, nil),
	}

	got := Filter(readings, AthleteAll, AllTime())
	require.Len(t, got, len(readings))
	for i := range readings {
		assert.Equal(t, readings[i].AthleteID, got[i].AthleteID)
		assert.Equal(t, readings[i].DateKey, got[i].DateKey)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	readings := []models.Reading{
		reading("2024-01-01", "A B", f(50), nil, nil, nil),
		reading("2024-01-02", "C D", f(60), nil, nil, nil),
	}

	out := Filter(readings, "A B", AllTime())
	require.Len(t, out, 1)
	assert.Len(t, readings, 2, "input slice must keep its contents")
	assert.Equal(t, "A B", readings[0].AthleteID)
}

func TestFilterByAthlete(t *testing.T) {
	readings := []models.Reading{
		reading("2024-01-01", "A B", f(50), nil, nil, nil),
		reading("2024-01-01", "C D", f(60), nil, nil, nil),
		reading("2024-01-02", "A B", f(70), nil, nil, nil),
	}

	got := Filter(readings, "A B", AllTime())
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "A B", r.AthleteID)
	}
}

func TestFilterLastNDaysAnchoredToLatestData(t *testing.T) {
	// Latest date in the set is 2024-03-10; a 7-day window keeps
	// dates >= 2024-03-03 no matter what today is.
	readings := []models.Reading{
		reading("2024-02-20", "A B", f(50), nil, nil, nil),
		reading("2024-03-03", "A B", f(55), nil, nil, nil),
		reading("2024-03-10", "A B", f(60), nil, nil, nil),
	}

	got := Filter(readings, AthleteAll, LastNDays(7))
	require.Len(t, got, 2)
	assert.Equal(t, "2024-03-03", got[0].DateKey)
	assert.Equal(t, "2024-03-10", got[1].DateKey)
}

func TestFilterWindowCanBeEmpty(t *testing.T) {
	// The anchor comes from the whole input; an athlete whose data
	// all predates the window yields an empty subset, not an error.
	readings := []models.Reading{
		reading("2024-01-01", "Stale Athlete", f(50), nil, nil, nil),
		reading("2024-03-10", "Fresh Athlete", f(60), nil, nil, nil),
	}

	got := Filter(readings, "Stale Athlete", LastNDays(7))
	assert.Empty(t, got)
}

func TestFilterEmptyInput(t *testing.T) {
	assert.Empty(t, Filter(nil, AthleteAll, LastNDays(7)))
	assert.Empty(t, Filter(nil, AthleteAll, AllTime()))
}

func TestFilterRandomRosterIdentity(t *testing.T) {
	readings := randomRoster(t, 8, 30)
	got := Filter(readings, AthleteAll, AllTime())
	require.Len(t, got, len(readings))
	for i := range readings {
		assert.Equal(t, readings[i], got[i])
	}
}
