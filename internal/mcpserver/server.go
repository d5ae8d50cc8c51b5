// Package mcpserver exposes read-only introspection tools over the
// Model Context Protocol, talking to the running daemon through
// internal/ipc rather than holding a direct manager reference.
package mcpserver

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/partwm/partwm/internal/ipc"
)

const (
	serverName    = "partwm"
	serverVersion = "0.1.0"
)

// Server is the MCP server for partwm introspection.
type Server struct {
	mcpServer *mcpsdk.Server
	client    *ipc.Client
}

// NewServer constructs an MCP server backed by the daemon's IPC client.
func NewServer() *Server {
	s := &Server{client: ipc.NewClient()}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{Name: serverName, Version: serverVersion},
		nil,
	)
	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_status",
		Description: "Report the partwm daemon's current workspace, master fraction, tiled/floating client counts, focused window and uptime.",
	}, s.handleGetStatus)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_workspaces",
		Description: "List every workspace with its master/aux occupancy and whether it is the currently displayed one.",
	}, s.handleListWorkspaces)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_clients",
		Description: "List every window partwm currently manages, with its kind, floating/fullscreen state, and geometry.",
	}, s.handleListClients)
}
