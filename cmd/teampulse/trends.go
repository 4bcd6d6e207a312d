// ABOUTME: CLI command for the daily trend series.
// ABOUTME: One row per distinct date with recovery/strain/HRV averages.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/teampulse/internal/models"
	"github.com/harperreed/teampulse/internal/report"
	"github.com/spf13/cobra"
)

var (
	trendsAthlete string
	trendsDays    int
)

var trendsCmd = &cobra.Command{
	Use:     "trends",
	Aliases: []string{"t"},
	Short:   "Daily trend series",
	Long: `Show per-date averages of recovery, strain, and HRV over the working
subset, oldest date first.

A date with no readings carrying a metric shows "no data" for that
column; other columns on the same date are unaffected.

EXAMPLES:

  teampulse trends -f team.csv                  # Whole roster, all time
  teampulse trends -f team.csv --days 14        # Last two weeks of data
  teampulse trends -f team.csv --athlete "Jo Doe"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := sessionFlags(trendsAthlete, trendsDays, 0)
		if err != nil {
			return err
		}

		subset := report.Filter(dataset.Readings, cfg.Athlete, cfg.Range)
		points := report.DailyTrends(subset)

		if len(points) == 0 {
			fmt.Println("No readings match the current filters.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s  %s  %s  %s\n",
			padRight("DATE", 12), padRight("RECOVERY", 10),
			padRight("STRAIN", 10), padRight("HRV", 10))
		for _, p := range points {
			fmt.Printf("%s  %s  %s  %s\n",
				faint.Sprint(padRight(p.Date, 12)),
				padRight(formatValue(p.Recovery, models.MetricUnits[models.MetricRecovery]), 10),
				padRight(formatValue(p.Strain, models.MetricUnits[models.MetricStrain]), 10),
				padRight(formatValue(p.HRV, models.MetricUnits[models.MetricHRV]), 10))
		}

		return nil
	},
}

func init() {
	trendsCmd.Flags().StringVarP(&trendsAthlete, "athlete", "a", "", "filter to one athlete (exact \"first last\")")
	trendsCmd.Flags().IntVarP(&trendsDays, "days", "d", 0, "keep only the last N days of data")
	rootCmd.AddCommand(trendsCmd)
}
