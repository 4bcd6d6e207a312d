// ABOUTME: Reading and ReadingSet models for daily athlete observations.
// ABOUTME: One Reading per athlete per calendar date, sparse metric values.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Reading is one athlete's metric observations for one calendar date.
// Metric values are sparse; an absent key means the export carried no
// value for that metric on that day.
type Reading struct {
	// Date is the calendar date at UTC midnight, used for sorting
	// and windowing.
	Date time.Time `json:"date"`
	// DateKey is the exact trimmed date field from the source row.
	// Daily grouping uses string equality on this key.
	DateKey   string `json:"date_key"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// AthleteID is the trimmed "first last" concatenation, the
	// grouping key for everything per-athlete. Never empty.
	AthleteID string `json:"athlete_id"`
	// Metrics holds the recognized numeric columns that were present.
	Metrics map[MetricType]float64 `json:"metrics"`
	// Extra preserves unrecognized columns as opaque string or
	// float64 values. The core never interprets them.
	Extra map[string]any `json:"extra,omitempty"`
}

// Metric returns the value for a metric and whether it was present.
func (r Reading) Metric(mt MetricType) (float64, bool) {
	v, ok := r.Metrics[mt]
	return v, ok
}

// HasPositive reports whether the reading carries a value for the
// metric that is present and strictly greater than zero. Coverage
// counting and the HRV trend use this rule; plain aggregation does
// not (a present zero is a valid observation there).
func (r Reading) HasPositive(mt MetricType) bool {
	v, ok := r.Metrics[mt]
	return ok && v > 0
}

// ReadingSet is the canonical in-memory dataset for one upload,
// ordered ascending by date. It is treated as immutable: filtering
// and windowing always produce new slices, and a new upload replaces
// the set wholesale.
type ReadingSet struct {
	ID       uuid.UUID `json:"id"`
	LoadedAt time.Time `json:"loaded_at"`
	Readings []Reading `json:"readings"`
}

// NewReadingSet wraps date-sorted readings with a fresh upload ID.
func NewReadingSet(readings []Reading) *ReadingSet {
	return &ReadingSet{
		ID:       uuid.New(),
		LoadedAt: time.Now(),
		Readings: readings,
	}
}

// Len returns the number of readings in the set.
func (s *ReadingSet) Len() int {
	return len(s.Readings)
}

// Athletes returns the distinct athlete IDs in the set, in order of
// first appearance (the set is date-sorted, so earliest reading wins).
func (s *ReadingSet) Athletes() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range s.Readings {
		if !seen[r.AthleteID] {
			seen[r.AthleteID] = true
			ids = append(ids, r.AthleteID)
		}
	}
	return ids
}

// LatestDate returns the most recent date in the set. The second
// return is false for an empty set.
func (s *ReadingSet) LatestDate() (time.Time, bool) {
	if len(s.Readings) == 0 {
		return time.Time{}, false
	}
	return s.Readings[len(s.Readings)-1].Date, true
}

// EarliestDate returns the oldest date in the set. The second return
// is false for an empty set.
func (s *ReadingSet) EarliestDate() (time.Time, bool) {
	if len(s.Readings) == 0 {
		return time.Time{}, false
	}
	return s.Readings[0].Date, true
}
