// ABOUTME: Tests for report export formats.
// ABOUTME: Covers JSON round-trip, YAML layout, and Markdown tables.
package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/harperreed/teampulse/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func exportFixture(t *testing.T) *ExportData {
	t.Helper()
	readings := []models.Reading{
		reading("2024-03-01", "Jo Doe", f(75), f(50), f(10), f(80)),
		reading("2024-03-08", "Jo Doe", f(60), f(60), f(12), nil),
		reading("2024-03-08", "Amy Lee", f(90), nil, f(8), f(95)),
	}
	return NewExport(models.NewReadingSet(readings), DefaultSession())
}

func TestExportJSON(t *testing.T) {
	export := exportFixture(t)

	data, err := export.ExportJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "teampulse", decoded["tool"])
	assert.Equal(t, float64(3), decoded["readings"])

	rep, ok := decoded["report"].(map[string]any)
	require.True(t, ok)
	for _, key := range []string{"summary", "daily", "athletes", "window_athletes"} {
		assert.Contains(t, rep, key)
	}
}

func TestExportYAML(t *testing.T) {
	export := exportFixture(t)

	data, err := export.ExportYAML()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, "all", decoded["athlete"])
	assert.Contains(t, decoded, "summary")
	assert.Contains(t, decoded, "window_athletes")

	summary, ok := decoded["summary"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, summary, "recovery")
	assert.NotContains(t, summary, "resting_heart_rate",
		"metric without observations must be absent")
}

func TestExportMarkdown(t *testing.T) {
	export := exportFixture(t)

	md := export.ExportMarkdown()
	for _, heading := range []string{"## Summary", "## Daily Trends", "## Athletes", "## Last 7 Days"} {
		assert.Contains(t, md, heading)
	}
	assert.Contains(t, md, "| Jo Doe |")
	assert.Contains(t, md, "| Amy Lee |")
	assert.Contains(t, md, "no data", "missing metrics render distinctly, never as zero")

	// Resting heart rate never appears in the fixture; its summary
	// row must say so rather than show zeros.
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "| resting_heart_rate") {
			assert.Contains(t, line, "no data")
		}
	}
}
