// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server over the loaded roster export.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/teampulse/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration.

The server communicates via stdin/stdout and answers questions about
the roster export loaded with --file. The dataset lives in memory for
the lifetime of the process; restart with a newer export to replace
it.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "teampulse": {
        "command": "teampulse",
        "args": ["mcp", "-f", "/path/to/team.csv"]
      }
    }
  }

AVAILABLE TOOLS:

  team_summary      Per-metric avg/min/max/count with severity tiers
  daily_trends      Per-date recovery/strain/HRV averages
  athlete_rollups   Per-athlete aggregates with HRV weekly trends
  list_athletes     Roster IDs plus reading count and date span

AVAILABLE RESOURCES:

  teampulse://summary    Full default report (all four views)
  teampulse://athletes   Athlete rollups
  teampulse://roster     Athlete IDs and dataset span`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(dataset)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
