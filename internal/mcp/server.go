// ABOUTME: MCP server setup over one loaded ReadingSet.
// ABOUTME: Exposes derived report views as tools and resources.
package mcp

import (
	"context"

	"github.com/harperreed/teampulse/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with the in-memory dataset. The
// dataset is loaded once at startup and never mutated; every tool
// call recomputes its view from it.
type Server struct {
	mcpServer *mcp.Server
	set       *models.ReadingSet
}

// NewServer creates a new MCP server over the given dataset.
func NewServer(set *models.ReadingSet) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "teampulse",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		set:       set,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
