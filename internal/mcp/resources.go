// ABOUTME: MCP resource implementations over the loaded dataset.
// ABOUTME: Provides teampulse://summary, teampulse://athletes, teampulse://roster.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/teampulse/internal/report"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// teampulse://summary - full default report
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "teampulse://summary",
		Name:        "Team Report",
		Description: "All four derived views for the loaded dataset (all athletes, all time, 7-day window)",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// teampulse://athletes - rollups only
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "teampulse://athletes",
		Name:        "Athlete Rollups",
		Description: "Per-athlete aggregates with HRV weekly trend labels",
		MIMEType:    "application/json",
	}, s.handleAthletesResource)

	// teampulse://roster - athlete IDs and dataset span
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "teampulse://roster",
		Name:        "Roster",
		Description: "Athlete IDs plus reading count and date span",
		MIMEType:    "application/json",
	}, s.handleRosterResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	rep := report.Build(s.set, report.DefaultSession())
	return jsonResource("teampulse://summary", rep)
}

func (s *Server) handleAthletesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	rep := report.Build(s.set, report.DefaultSession())
	return jsonResource("teampulse://athletes", rep.Athletes)
}

func (s *Server) handleRosterResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
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
	return jsonResource("teampulse://roster", out)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
