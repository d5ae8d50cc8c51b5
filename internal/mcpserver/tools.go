package mcpserver

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/partwm/partwm/internal/ipc"
)

// GetStatusInput takes no arguments; the tool always reports the
// daemon's current snapshot.
type GetStatusInput struct{}

// GetStatusOutput mirrors ipc.StatusData for MCP clients.
type GetStatusOutput struct {
	CurrentWorkspace int     `json:"current_workspace"`
	NumWorkspaces    int     `json:"num_workspaces"`
	MasterFraction   float64 `json:"master_fraction"`
	TiledCount       int     `json:"tiled_count"`
	FloatingCount    int     `json:"floating_count"`
	FocusedWindow    *uint32 `json:"focused_window,omitempty"`
	UptimeSeconds    int64   `json:"uptime_seconds"`
}

func (s *Server) handleGetStatus(_ context.Context, _ *mcpsdk.CallToolRequest, _ GetStatusInput) (*mcpsdk.CallToolResult, GetStatusOutput, error) {
	status, err := s.client.GetStatus()
	if err != nil {
		return nil, GetStatusOutput{}, fmt.Errorf("mcpserver: get_status: %w", err)
	}
	return nil, GetStatusOutput(*status), nil
}

// ListWorkspacesInput takes no arguments.
type ListWorkspacesInput struct{}

// WorkspaceInfo describes a single workspace's occupancy.
type WorkspaceInfo struct {
	Index     int  `json:"index"`
	MasterLen int  `json:"master_len"`
	AuxLen    int  `json:"aux_len"`
	IsCurrent bool `json:"is_current"`
}

// ListWorkspacesOutput is the tool's result.
type ListWorkspacesOutput struct {
	Workspaces []WorkspaceInfo `json:"workspaces"`
}

func (s *Server) handleListWorkspaces(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWorkspacesInput) (*mcpsdk.CallToolResult, ListWorkspacesOutput, error) {
	data, err := s.client.ListWorkspaces()
	if err != nil {
		return nil, ListWorkspacesOutput{}, fmt.Errorf("mcpserver: list_workspaces: %w", err)
	}

	out := make([]WorkspaceInfo, len(data.Workspaces))
	for i, ws := range data.Workspaces {
		out[i] = WorkspaceInfo(ipc.WorkspaceSummary(ws))
	}
	return nil, ListWorkspacesOutput{Workspaces: out}, nil
}

// ListClientsInput takes no arguments.
type ListClientsInput struct{}

// ClientInfo describes a single managed window.
type ClientInfo struct {
	Window     uint32 `json:"window"`
	Kind       string `json:"kind"`
	Floating   bool   `json:"floating"`
	Fullscreen bool   `json:"fullscreen"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

// ListClientsOutput is the tool's result.
type ListClientsOutput struct {
	Clients []ClientInfo `json:"clients"`
}

func (s *Server) handleListClients(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListClientsInput) (*mcpsdk.CallToolResult, ListClientsOutput, error) {
	data, err := s.client.ListClients()
	if err != nil {
		return nil, ListClientsOutput{}, fmt.Errorf("mcpserver: list_clients: %w", err)
	}

	out := make([]ClientInfo, len(data.Clients))
	for i, c := range data.Clients {
		out[i] = ClientInfo(ipc.ClientSummary(c))
	}
	return nil, ListClientsOutput{Clients: out}, nil
}
