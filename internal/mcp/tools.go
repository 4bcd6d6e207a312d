// ABOUTME: MCP tool implementations over the derived report views.
// ABOUTME: Tools mirror the CLI: summary, trends, rollups, roster.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/teampulse/internal/models"
	"github.com/harperreed/teampulse/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// team_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "team_summary",
		Description: "Team-wide summary statistics (avg/min/max/count) per metric",
	}, s.handleTeamSummary)

	// daily_trends
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_trends",
		Description: "Per-date averages of recovery, strain, and HRV",
	}, s.handleDailyTrends)

	// athlete_rollups
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "athlete_rollups",
		Description: "Per-athlete aggregates with week-over-week HRV trend labels",
	}, s.handleAthleteRollups)

	// list_athletes
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_athletes",
		Description: "List athlete IDs present in the loaded dataset",
	}, s.handleListAthletes)
}

// Tool input/output types

type viewInput struct {
	Athlete string `json:"athlete,omitempty" jsonschema:"Athlete ID (first last) or 'all' (default all)"`
	Days    int    `json:"days,omitempty" jsonschema:"Keep only the last N days relative to the dataset's latest date (default all time)"`
}

type rollupsInput struct {
	Athlete string `json:"athlete,omitempty" jsonschema:"Athlete ID (first last) or 'all' (default all)"`
	Days    int    `json:"days,omitempty" jsonschema:"Keep only the last N days relative to the dataset's latest date (default all time)"`
	Window  int    `json:"window,omitempty" jsonschema:"Report window in days for the comparison view, 7 or 14 (default 7)"`
}

type summaryEntry struct {
	Metric string  `json:"metric"`
	Avg    float64 `json:"avg"`
	Max    float64 `json:"max"`
	Min    float64 `json:"min"`
	Count  int     `json:"count"`
	Unit   string  `json:"unit,omitempty"`
	Tier   string  `json:"tier"`
}

type rosterInput struct{}

type rosterOutput struct {
	Athletes []string `json:"athletes"`
	Readings int      `json:"readings"`
	From     string   `json:"from,omitempty"`
	To       string   `json:"to,omitempty"`
}

func (s *Server) session(athlete string, days, window int) (report.Session, error) {
	cfg := report.DefaultSession()
	if athlete != "" && athlete != report.AthleteAll {
		if !s.hasAthlete(athlete) {
			return cfg, fmt.Errorf("unknown athlete: %s", athlete)
		}
		cfg.Athlete = athlete
	}
	if days > 0 {
		cfg.Range = report.LastNDays(days)
	}
	if window > 0 {
		cfg.Window = window
	}
	return cfg, nil
}

func (s *Server) hasAthlete(id string) bool {
	for _, a := range s.set.Athletes() {
		if a == id {
			return true
		}
	}
	return false
}

// Tool handlers

func (s *Server) handleTeamSummary(ctx context.Context, req *mcp.CallToolRequest, input viewInput) (*mcp.CallToolResult, any, error) {
	cfg, err := s.session(input.Athlete, input.Days, 0)
	if err != nil {
		return nil, nil, err
	}

	subset := report.Filter(s.set.Readings, cfg.Athlete, cfg.Range)
	summary := report.Summarize(subset)

	if len(summary) == 0 {
		return nil, map[string]any{"message": "No readings match the current filters."}, nil
	}

	entries := make([]summaryEntry, 0, len(summary))
	for _, mt := range models.AllMetricTypes {
		stat, ok := summary[mt]
		if !ok {
			continue
		}
		avg := stat.Avg
		entries = append(entries, summaryEntry{
			Metric: string(mt),
			Avg:    stat.Avg,
			Max:    stat.Max,
			Min:    stat.Min,
			Count:  stat.Count,
			Unit:   models.MetricUnits[mt],
			Tier:   string(models.InfoFor(mt).Tier(&avg)),
		})
	}
	return nil, entries, nil
}

func (s *Server) handleDailyTrends(ctx context.Context, req *mcp.CallToolRequest, input viewInput) (*mcp.CallToolResult, any, error) {
	cfg, err := s.session(input.Athlete, input.Days, 0)
	if err != nil {
		return nil, nil, err
	}

	subset := report.Filter(s.set.Readings, cfg.Athlete, cfg.Range)
	points := report.DailyTrends(subset)

	if len(points) == 0 {
		return nil, map[string]any{"message": "No readings match the current filters."}, nil
	}
	return nil, points, nil
}

func (s *Server) handleAthleteRollups(ctx context.Context, req *mcp.CallToolRequest, input rollupsInput) (*mcp.CallToolResult, any, error) {
	cfg, err := s.session(input.Athlete, input.Days, input.Window)
	if err != nil {
		return nil, nil, err
	}

	rep := report.Build(s.set, cfg)
	return nil, map[string]any{
		"athletes":        rep.Athletes,
		"window_days":     cfg.Window,
		"window_athletes": rep.WindowAthletes,
	}, nil
}

func (s *Server) handleListAthletes(ctx context.Context, req *mcp.CallToolRequest, input rosterInput) (*mcp.CallToolResult, rosterOutput, error) {
	out := rosterOutput{
		Athletes: s.set.Athletes(),
		Readings: s.set.Len(),
	}
	if from, ok := s.set.EarliestDate(); ok {
		out.From = from.Format("2006-01-02")
	}
	if to, ok := s.set.LatestDate(); ok {
		out.To = to.Format("2006-01-02")
	}
	return nil, out, nil
}
