// ABOUTME: Export of a built report as JSON, YAML, or Markdown.
// ABOUTME: All three formats carry the same four derived views.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/teampulse/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData is the full export envelope for one report build.
type ExportData struct {
	Version     string    `json:"version" yaml:"version"`
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Tool        string    `json:"tool" yaml:"tool"`
	DatasetID   string    `json:"dataset_id" yaml:"dataset_id"`
	Readings    int       `json:"readings" yaml:"readings"`
	Athlete     string    `json:"athlete" yaml:"athlete"`
	RangeDays   int       `json:"range_days" yaml:"range_days"`
	WindowDays  int       `json:"window_days" yaml:"window_days"`
	Report      *Report   `json:"report" yaml:"-"`
}

// NewExport builds the export envelope for a dataset and session.
func NewExport(set *models.ReadingSet, cfg Session) *ExportData {
	return &ExportData{
		Version:     "1.0",
		GeneratedAt: time.Now(),
		Tool:        "teampulse",
		DatasetID:   set.ID.String(),
		Readings:    set.Len(),
		Athlete:     cfg.Athlete,
		RangeDays:   cfg.Range.Days,
		WindowDays:  cfg.Window,
		Report:      Build(set, cfg),
	}
}

// ExportJSON renders the export as indented JSON.
func (e *ExportData) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// ExportYAML renders the export as YAML with a flattened,
// human-readable report layout.
func (e *ExportData) ExportYAML() ([]byte, error) {
	yamlData := struct {
		Version     string                 `yaml:"version"`
		GeneratedAt string                 `yaml:"generated_at"`
		Tool        string                 `yaml:"tool"`
		DatasetID   string                 `yaml:"dataset_id"`
		Readings    int                    `yaml:"readings"`
		Athlete     string                 `yaml:"athlete"`
		RangeDays   int                    `yaml:"range_days"`
		WindowDays  int                    `yaml:"window_days"`
		Summary     map[string]yamlSummary `yaml:"summary"`
		Daily       []yamlTrendPoint       `yaml:"daily"`
		Athletes    []yamlRollup           `yaml:"athletes"`
		Window      []yamlRollup           `yaml:"window_athletes"`
	}{
		Version:     e.Version,
		GeneratedAt: e.GeneratedAt.Format(time.RFC3339),
		Tool:        e.Tool,
		DatasetID:   e.DatasetID,
		Readings:    e.Readings,
		Athlete:     e.Athlete,
		RangeDays:   e.RangeDays,
		WindowDays:  e.WindowDays,
		Summary:     make(map[string]yamlSummary),
	}

	for mt, s := range e.Report.Summary {
		yamlData.Summary[string(mt)] = yamlSummary{
			Avg:   s.Avg,
			Max:   s.Max,
			Min:   s.Min,
			Count: s.Count,
			Unit:  models.MetricUnits[mt],
		}
	}
	for _, p := range e.Report.Daily {
		yamlData.Daily = append(yamlData.Daily, yamlTrendPoint{
			Date:     p.Date,
			Recovery: p.Recovery,
			Strain:   p.Strain,
			HRV:      p.HRV,
		})
	}
	yamlData.Athletes = yamlRollups(e.Report.Athletes)
	yamlData.Window = yamlRollups(e.Report.WindowAthletes)

	return yaml.Marshal(yamlData)
}

type yamlSummary struct {
	Avg   float64 `yaml:"avg"`
	Max   float64 `yaml:"max"`
	Min   float64 `yaml:"min"`
	Count int     `yaml:"count"`
	Unit  string  `yaml:"unit,omitempty"`
}

type yamlTrendPoint struct {
	Date     string   `yaml:"date"`
	Recovery *float64 `yaml:"recovery"`
	Strain   *float64 `yaml:"strain"`
	HRV      *float64 `yaml:"hrv"`
}

type yamlRollup struct {
	Athlete      string   `yaml:"athlete"`
	Sessions     int      `yaml:"sessions"`
	DaysWithData int      `yaml:"days_with_data"`
	Recovery     *float64 `yaml:"recovery"`
	Strain       *float64 `yaml:"strain"`
	HRV          *float64 `yaml:"hrv"`
	Sleep        *float64 `yaml:"sleep"`
	HRVTrend     []string `yaml:"hrv_trend"`
}

func yamlRollups(rollups []AthleteRollup) []yamlRollup {
	out := make([]yamlRollup, 0, len(rollups))
	for _, r := range rollups {
		yr := yamlRollup{
			Athlete:      r.AthleteID,
			Sessions:     r.Sessions,
			DaysWithData: r.DaysWithData,
			Recovery:     r.Recovery,
			Strain:       r.Strain,
			HRV:          r.HRV,
			Sleep:        r.Sleep,
		}
		for _, l := range r.HRVTrend {
			yr.HRVTrend = append(yr.HRVTrend, string(l))
		}
		out = append(out, yr)
	}
	return out
}

// ExportMarkdown renders the report as Markdown tables, one per view.
func (e *ExportData) ExportMarkdown() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# TeamPulse Report - %s\n\n", e.GeneratedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", e.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Readings: %d | Athlete: %s | Range: %s | Window: %d days\n\n",
		e.Readings, e.Athlete, rangeLabel(DateRange{Days: e.RangeDays}), e.WindowDays))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Avg | Min | Max | Count |\n")
	sb.WriteString("|--------|-----|-----|-----|-------|\n")
	for _, mt := range models.AllMetricTypes {
		s, ok := e.Report.Summary[mt]
		if !ok {
			sb.WriteString(fmt.Sprintf("| %s | no data | - | - | 0 |\n", mt))
			continue
		}
		unit := models.MetricUnits[mt]
		sb.WriteString(fmt.Sprintf("| %s | %.1f%s | %.1f | %.1f | %d |\n",
			mt, s.Avg, unit, s.Min, s.Max, s.Count))
	}
	sb.WriteString("\n")

	sb.WriteString("## Daily Trends\n\n")
	sb.WriteString("| Date | Recovery | Strain | HRV |\n")
	sb.WriteString("|------|----------|--------|-----|\n")
	for _, p := range e.Report.Daily {
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			p.Date, mdValue(p.Recovery), mdValue(p.Strain), mdValue(p.HRV)))
	}
	sb.WriteString("\n")

	sb.WriteString("## Athletes\n\n")
	writeRollupTable(&sb, e.Report.Athletes)

	sb.WriteString(fmt.Sprintf("## Last %d Days\n\n", e.WindowDays))
	writeRollupTable(&sb, e.Report.WindowAthletes)

	return sb.String()
}

func writeRollupTable(sb *strings.Builder, rollups []AthleteRollup) {
	sb.WriteString("| Athlete | Sessions | Days | Recovery | Strain | HRV | Sleep | HRV Trend |\n")
	sb.WriteString("|---------|----------|------|----------|--------|-----|-------|-----------|\n")
	for _, r := range rollups {
		trend := make([]string, 0, len(r.HRVTrend))
		for _, l := range r.HRVTrend {
			trend = append(trend, string(l))
		}
		sb.WriteString(fmt.Sprintf("| %s | %d | %d | %s | %s | %s | %s | %s |\n",
			r.AthleteID, r.Sessions, r.DaysWithData,
			mdValue(r.Recovery), mdValue(r.Strain), mdValue(r.HRV), mdValue(r.Sleep),
			strings.Join(trend, " ")))
	}
	sb.WriteString("\n")
}

func mdValue(v *float64) string {
	if v == nil {
		return "no data"
	}
	return fmt.Sprintf("%.1f", *v)
}

func rangeLabel(rng DateRange) string {
	if rng.All() {
		return "all time"
	}
	return fmt.Sprintf("last %d days", rng.Days)
}
