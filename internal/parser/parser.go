// ABOUTME: Parses raw delimited roster exports into a typed ReadingSet.
// ABOUTME: Quote-aware comma splitting, header mapping by name, row validation.
package parser

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/harperreed/teampulse/internal/models"
)

// ErrInsufficientData is returned when the input has fewer than two
// non-blank lines (a header row plus at least one data row).
var ErrInsufficientData = errors.New("insufficient data: need a header row and at least one data row")

// ErrNoValidData is returned when no rows survive row-level validation.
var ErrNoValidData = errors.New("no valid data rows found")

// Column headers recognized by name, matched case-insensitively after
// trimming. Everything else is preserved as an opaque extra field.
const (
	headerDate      = "date"
	headerFirstName = "first name"
	headerLastName  = "last name"
)

var metricHeaders = map[string]models.MetricType{
	"recovery":          models.MetricRecovery,
	"hrv":               models.MetricHRV,
	"strain":            models.MetricStrain,
	"sleep performance": models.MetricSleepPerformance,
	"rhr":               models.MetricRestingHeartRate,
}

var dateFormats = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	time.RFC3339,
}

// Parse turns raw newline-separated text into a date-sorted
// ReadingSet. The first non-blank line is the header row; columns are
// matched by header name, not position. A data row is accepted when
// it has at least half the header's field count; accepted rows are
// still dropped when the derived athlete ID is empty or the date is
// missing or unparseable. Those drops are silent and per-row.
func Parse(raw string) (*models.ReadingSet, error) {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil, ErrInsufficientData
	}

	headers := splitLine(lines[0])
	dateCol, firstCol, lastCol := -1, -1, -1
	metricCols := make(map[int]models.MetricType)
	for i, h := range headers {
		switch key := strings.ToLower(h); key {
		case headerDate:
			dateCol = i
		case headerFirstName:
			firstCol = i
		case headerLastName:
			lastCol = i
		default:
			if mt, ok := metricHeaders[key]; ok {
				metricCols[i] = mt
			}
		}
	}

	var readings []models.Reading
	for _, line := range lines[1:] {
		fields := splitLine(line)
		// Tolerate ragged trailing columns, but skip rows missing
		// more than half the header's fields.
		if len(fields)*2 < len(headers) {
			continue
		}

		field := func(col int) string {
			if col < 0 || col >= len(fields) {
				return ""
			}
			return fields[col]
		}

		first := field(firstCol)
		last := field(lastCol)
		athleteID := strings.TrimSpace(first + " " + last)
		if athleteID == "" {
			continue
		}

		date, dateKey, ok := parseDate(field(dateCol))
		if !ok {
			continue
		}

		r := models.Reading{
			Date:      date,
			DateKey:   dateKey,
			FirstName: first,
			LastName:  last,
			AthleteID: athleteID,
			Metrics:   make(map[models.MetricType]float64),
		}
		for i, h := range headers {
			if i == dateCol || i == firstCol || i == lastCol || i >= len(fields) {
				continue
			}
			value := fields[i]
			if mt, isMetric := metricCols[i]; isMetric {
				if f, numeric := parseNumber(value); numeric {
					r.Metrics[mt] = f
				} else if value != "" {
					// Non-numeric text in a metric column stays an
					// opaque string; the metric itself stays absent.
					if r.Extra == nil {
						r.Extra = make(map[string]any)
					}
					r.Extra[h] = value
				}
				continue
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			if f, numeric := parseNumber(value); numeric {
				r.Extra[h] = f
			} else {
				r.Extra[h] = value
			}
		}
		readings = append(readings, r)
	}

	if len(readings) == 0 {
		return nil, ErrNoValidData
	}

	sort.SliceStable(readings, func(i, j int) bool {
		return readings[i].Date.Before(readings[j].Date)
	})

	return models.NewReadingSet(readings), nil
}

// splitLine splits a row on commas, respecting double-quote-enclosed
// fields: a quote toggles quoted state and commas inside quotes do
// not separate fields. Every field is trimmed and stripped of its
// enclosing quotes.
func splitLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, c := range line {
		switch {
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(c)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))
	return fields
}

// parseDate parses a trimmed date field into a UTC calendar date
// (no time component) and returns the original string as the daily
// grouping key.
func parseDate(s string) (time.Time, string, bool) {
	if s == "" {
		return time.Time{}, "", false
	}
	for _, f := range dateFormats {
		if t, err := time.Parse(f, s); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return day, s, true
		}
	}
	return time.Time{}, "", false
}

// parseNumber reports whether a trimmed field holds a numeric value.
// Empty fields are not numbers.
func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
