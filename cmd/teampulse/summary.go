// ABOUTME: CLI command for team-wide summary statistics.
// ABOUTME: One line per metric with avg/min/max/count and a severity tier.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/teampulse/internal/models"
	"github.com/harperreed/teampulse/internal/report"
	"github.com/spf13/cobra"
)

var (
	summaryAthlete string
	summaryDays    int
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"s"},
	Short:   "Team-wide summary statistics",
	Long: `Show mean, min, max, and sample count for each tracked metric over
the working subset.

Metrics with no observations in the subset are shown as "no data",
never as zero. Recovery and sleep performance averages carry a
severity tier (green >= 67, yellow 30-66, red <= 29).

EXAMPLES:

  teampulse summary -f team.csv                  # Whole roster, all time
  teampulse summary -f team.csv --days 30        # Last 30 days of data
  teampulse summary -f team.csv --athlete "Jo Doe"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := sessionFlags(summaryAthlete, summaryDays, 0)
		if err != nil {
			return err
		}

		subset := report.Filter(dataset.Readings, cfg.Athlete, cfg.Range)
		summary := report.Summarize(subset)

		fmt.Printf("%s · %d readings · %s\n\n",
			cfg.Athlete, len(subset), rangeText(cfg.Range.Days))

		faint := color.New(color.Faint)
		for _, mt := range models.AllMetricTypes {
			info := models.InfoFor(mt)
			stat, ok := summary[mt]
			if !ok {
				fmt.Printf("%s %s\n", padRight(string(mt), 20), faint.Sprint("no data"))
				continue
			}
			avg := stat.Avg
			tinted := tierColor(info.Tier(&avg))
			fmt.Printf("%s %s  %s\n",
				padRight(string(mt), 20),
				tinted.Sprintf("%6.1f%s", stat.Avg, info.Unit),
				faint.Sprintf("min %.1f · max %.1f · n=%d", stat.Min, stat.Max, stat.Count))
		}

		return nil
	},
}

// sessionFlags builds the session configuration from command flags,
// validating the athlete against the loaded roster.
func sessionFlags(athlete string, days, window int) (report.Session, error) {
	cfg := report.DefaultSession()
	if athlete != "" && athlete != report.AthleteAll {
		found := false
		for _, id := range dataset.Athletes() {
			if id == athlete {
				found = true
				break
			}
		}
		if !found {
			return cfg, fmt.Errorf("unknown athlete: %q (try 'teampulse athletes' for the roster)", athlete)
		}
		cfg.Athlete = athlete
	}
	if days > 0 {
		cfg.Range = report.LastNDays(days)
	}
	if window > 0 {
		if window != 7 && window != 14 {
			return cfg, fmt.Errorf("invalid window: %d (use 7 or 14)", window)
		}
		cfg.Window = window
	}
	return cfg, nil
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryAthlete, "athlete", "a", "", "filter to one athlete (exact \"first last\")")
	summaryCmd.Flags().IntVarP(&summaryDays, "days", "d", 0, "keep only the last N days of data")
	rootCmd.AddCommand(summaryCmd)
}
