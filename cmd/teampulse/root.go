// ABOUTME: Root Cobra command for teampulse CLI.
// ABOUTME: Loads the roster CSV once in PersistentPreRunE for all subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/harperreed/teampulse/internal/models"
	"github.com/harperreed/teampulse/internal/parser"
	"github.com/spf13/cobra"
)

var (
	dataFile string
	dataset  *models.ReadingSet
)

var rootCmd = &cobra.Command{
	Use:   "teampulse",
	Short: "Team readiness reports from daily roster exports",
	Long: `TeamPulse turns a daily roster export (one CSV row per athlete per
day) into coach-facing reports.

INPUT FORMAT:

  Comma-separated text, UTF-8, first line is the header row. Columns
  are matched by name, in any order:

    Date, First Name, Last Name         required per row
    Recovery, HRV, Strain,              any subset; missing values
    Sleep Performance, RHR              stay missing, never zero

  Quoted fields are supported for embedded commas. Extra columns are
  carried along untouched.

REPORTS:

  $ teampulse summary -f team.csv            # Team-wide metric stats
  $ teampulse trends -f team.csv             # Per-date averages
  $ teampulse athletes -f team.csv           # Per-athlete rollups
  $ teampulse export json -f team.csv        # All views, serialized

FILTERS:

  --athlete "Jo Doe"   Only that athlete (exact "first last" match)
  --days 30            Only the last 30 days, counted back from the
                       latest date in the file (not from today)

MCP INTEGRATION:

  Run 'teampulse mcp -f team.csv' to start the Model Context Protocol
  server for use with Claude Desktop or other MCP-compatible AI
  assistants:

  {
    "mcpServers": {
      "teampulse": { "command": "teampulse", "args": ["mcp", "-f", "team.csv"] }
    }
  }

DATA LIFECYCLE:

  The file is parsed into memory once per invocation. Nothing is
  persisted; point the tool at a newer export to replace the data.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip dataset loading for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		if dataFile == "" {
			return fmt.Errorf("no input file: use --file/-f to point at a roster CSV export")
		}
		raw, err := os.ReadFile(dataFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", dataFile, err)
		}
		dataset, err = parser.Parse(string(raw))
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", dataFile, err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "roster CSV export to load")
}
