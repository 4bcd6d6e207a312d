// ABOUTME: CLI command for exporting the derived report views.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/teampulse/internal/report"
	"github.com/spf13/cobra"
)

var (
	exportOutput  string
	exportAthlete string
	exportDays    int
	exportWindow  int
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the derived report",
	Long: `Export all four derived views (summary, daily trends, athlete
rollups, report-window rollups) in one document.

FORMATS:

  json       Full JSON export (machine-readable)
  yaml       YAML export (human-readable)
  markdown   Markdown tables (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --athlete, -a  Filter to one athlete before computing the views
  --days, -d     Keep only the last N days of data
  --window, -w   Report window in days (7 or 14)

EXAMPLES:

  teampulse export json -f team.csv              # Full report as JSON
  teampulse export yaml -f team.csv -o out.yaml  # Save to file
  teampulse export markdown -f team.csv --days 30`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		cfg, err := sessionFlags(exportAthlete, exportDays, exportWindow)
		if err != nil {
			return err
		}
		export := report.NewExport(dataset, cfg)

		var data []byte
		switch format {
		case "json":
			data, err = export.ExportJSON()
		case "yaml":
			data, err = export.ExportYAML()
		case "markdown":
			data = []byte(export.ExportMarkdown())
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportAthlete, "athlete", "a", "", "filter to one athlete (exact \"first last\")")
	exportCmd.Flags().IntVarP(&exportDays, "days", "d", 0, "keep only the last N days of data")
	exportCmd.Flags().IntVarP(&exportWindow, "window", "w", 7, "report window in days (7 or 14)")
	rootCmd.AddCommand(exportCmd)
}
