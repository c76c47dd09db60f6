// Package server wraps the MCP server with lifecycle management.
package server

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server hosts the tool surface over an MCP stdio session.
type Server struct {
	mcp    *mcp.Server
	logger *slog.Logger
}

// New creates the MCP server and attaches the logging middleware.
func New(version string, logger *slog.Logger) *Server {
	impl := &mcp.Implementation{
		Name:    "entrasql",
		Version: version,
	}

	s := &Server{
		mcp:    mcp.NewServer(impl, nil),
		logger: logger,
	}
	s.mcp.AddReceivingMiddleware(LoggingMiddleware(logger))
	return s
}

// MCPServer returns the underlying MCP server for tool registration.
func (s *Server) MCPServer() *mcp.Server {
	return s.mcp
}

// Run blocks on the stdio transport until disconnect or context cancellation.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("starting MCP server", "transport", "stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}
