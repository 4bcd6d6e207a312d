// ABOUTME: CLI command for per-athlete rollups and the report-window comparison.
// ABOUTME: Renders HRV weekly trend labels as colored arrows, oldest week first.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/teampulse/internal/report"
	"github.com/spf13/cobra"
)

var (
	athletesAthlete string
	athletesDays    int
	athletesWindow  int
)

var athletesCmd = &cobra.Command{
	Use:     "athletes",
	Aliases: []string{"a", "roster"},
	Short:   "Per-athlete rollups",
	Long: `Show one row per athlete: session count, days with data, metric
averages, and the week-over-week HRV trend.

The trend shows five weekly steps, oldest first: ↑ rising, → flat,
↓ declining, · no data. It compares consecutive 7-day HRV averages
anchored to each athlete's most recent reading and always uses the
athlete's full history, even when --days narrows the other columns.

Athletes are ordered by average recovery, best first. A second table
covers the fixed report window (the last 7 or 14 days of the
dataset), independent of --athlete and --days.

EXAMPLES:

  teampulse athletes -f team.csv                 # All time + 7-day window
  teampulse athletes -f team.csv --window 14     # 14-day comparison window
  teampulse athletes -f team.csv --days 30       # Rollups over last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := sessionFlags(athletesAthlete, athletesDays, athletesWindow)
		if err != nil {
			return err
		}

		rep := report.Build(dataset, cfg)

		fmt.Printf("%s · %s\n\n", cfg.Athlete, rangeText(cfg.Range.Days))
		printRollups(rep.Athletes)

		color.New(color.Bold).Printf("\nLast %d days\n\n", cfg.Window)
		printRollups(rep.WindowAthletes)

		return nil
	},
}

func printRollups(rollups []report.AthleteRollup) {
	if len(rollups) == 0 {
		fmt.Println("No readings match the current filters.")
		return
	}

	faint := color.New(color.Faint)
	fmt.Printf("%s %s %s %s %s %s %s  %s\n",
		padRight("ATHLETE", 22), padRight("SESS", 5), padRight("DAYS", 5),
		padRight("RECOVERY", 9), padRight("STRAIN", 8), padRight("HRV", 8),
		padRight("SLEEP", 8), "HRV TREND")
	for _, r := range rollups {
		fmt.Printf("%s %s %s %s %s %s %s  %s\n",
			padRight(truncate(r.AthleteID, 22), 22),
			faint.Sprint(padRight(fmt.Sprintf("%d", r.Sessions), 5)),
			faint.Sprint(padRight(fmt.Sprintf("%d", r.DaysWithData), 5)),
			padRight(formatValue(r.Recovery, "%"), 9),
			padRight(formatValue(r.Strain, ""), 8),
			padRight(formatValue(r.HRV, "ms"), 8),
			padRight(formatValue(r.Sleep, "%"), 8),
			trendGlyphs(r.HRVTrend))
	}
}

func init() {
	athletesCmd.Flags().StringVarP(&athletesAthlete, "athlete", "a", "", "filter to one athlete (exact \"first last\")")
	athletesCmd.Flags().IntVarP(&athletesDays, "days", "d", 0, "keep only the last N days of data")
	athletesCmd.Flags().IntVarP(&athletesWindow, "window", "w", 7, "report window in days (7 or 14)")
	rootCmd.AddCommand(athletesCmd)
}
