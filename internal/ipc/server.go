package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sync"

	"github.com/partwm/partwm/internal/config"
	"github.com/partwm/partwm/internal/runtimepath"
	"github.com/partwm/partwm/internal/wm"
)

// Manager is the subset of wm.Manager the IPC server drives. Every
// mutating command flows through Submit so it is applied on the
// manager's own goroutine; only the read-only queries below bypass it
// via the manager's own mutex-guarded snapshot methods.
type Manager interface {
	Submit(cmd wm.Command)
	GetStatus() wm.Status
	ListWorkspaces() []wm.WorkspaceStatus
	ListClients() []wm.ClientInfo
}

// Server handles control-plane IPC requests from partwmctl.
type Server struct {
	socketPath   string
	listener     net.Listener
	manager      Manager
	logger       *slog.Logger
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server bound to the default socket path.
func NewServer(manager Manager, logger *slog.Logger) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("ipc: resolving socket path: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		manager:    manager,
		logger:     logger,
	}, nil
}

// Start begins listening for IPC connections on its own goroutine.
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("ipc: creating socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("ipc: setting socket permissions: %w", err)
	}

	s.logger.Info("ipc server listening", "socket", s.socketPath)
	go s.acceptLoop()
	return nil
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			down := s.shuttingDown
			s.shutdownMu.Unlock()
			if down {
				return
			}
			s.logger.Warn("ipc accept error", "error", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.logger.Warn("ipc read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendError(conn, fmt.Sprintf("invalid request: %v", err))
		return
	}

	resp := s.handleCommand(req)

	respData, err := resp.Marshal()
	if err != nil {
		s.logger.Warn("ipc marshal error", "error", err)
		return
	}
	respData = append(respData, '\n')
	if _, err := conn.Write(respData); err != nil {
		s.logger.Warn("ipc write error", "error", err)
	}
}

func (s *Server) handleCommand(req *Request) *Response {
	switch req.Command {
	case CommandGetStatus:
		return s.handleGetStatus()
	case CommandListWorkspaces:
		return s.handleListWorkspaces()
	case CommandListClients:
		return s.handleListClients()
	case CommandGoToWorkspace:
		return s.handleGoToWorkspace(req.Payload)
	case CommandRotateWorkspace:
		return s.handleRotateWorkspace(req.Payload)
	case CommandSetMasterFraction:
		return s.handleSetMasterFraction(req.Payload)
	case CommandToggleFloating:
		return s.handleToggleFloating()
	case CommandReload:
		return s.handleReload()
	case CommandQuit:
		return s.handleQuit(req.Payload)
	default:
		return NewErrorResponse(fmt.Sprintf("unknown command: %s", req.Command))
	}
}

func (s *Server) handleGetStatus() *Response {
	status := s.manager.GetStatus()

	data := StatusData{
		CurrentWorkspace: status.CurrentWorkspace,
		NumWorkspaces:    status.NumWorkspaces,
		MasterFraction:   status.MasterFraction,
		TiledCount:       status.TiledCount,
		FloatingCount:    status.FloatingCount,
		UptimeSeconds:    int64(status.Uptime.Seconds()),
	}
	if status.FocusedWindow != nil {
		w := uint32(*status.FocusedWindow)
		data.FocusedWindow = &w
	}

	resp, err := NewOKResponse(data)
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func (s *Server) handleListWorkspaces() *Response {
	workspaces := s.manager.ListWorkspaces()

	summaries := make([]WorkspaceSummary, len(workspaces))
	for i, ws := range workspaces {
		summaries[i] = WorkspaceSummary{
			Index:     ws.Index,
			MasterLen: ws.MasterLen,
			AuxLen:    ws.AuxLen,
			IsCurrent: ws.IsCurrent,
		}
	}

	resp, err := NewOKResponse(WorkspacesData{Workspaces: summaries})
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func (s *Server) handleListClients() *Response {
	clients := s.manager.ListClients()

	summaries := make([]ClientSummary, len(clients))
	for i, c := range clients {
		summaries[i] = ClientSummary{
			Window:     uint32(c.ID),
			Kind:       c.Kind,
			Floating:   c.Floating,
			Fullscreen: c.Fullscreen,
			X:          c.Position.X,
			Y:          c.Position.Y,
			Width:      c.Size.W,
			Height:     c.Size.H,
		}
	}

	resp, err := NewOKResponse(ClientsData{Clients: summaries})
	if err != nil {
		return NewErrorResponse(err.Error())
	}
	return resp
}

func (s *Server) handleGoToWorkspace(payload json.RawMessage) *Response {
	var req GoToWorkspacePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid payload: %v", err))
	}
	s.manager.Submit(wm.Command{Kind: wm.CmdGoToWorkspace, N: req.Index})
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleRotateWorkspace(payload json.RawMessage) *Response {
	var req RotateWorkspacePayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid payload: %v", err))
	}
	dir := wm.DirEast
	if req.Direction == "west" {
		dir = wm.DirWest
	}
	n := req.N
	if n <= 0 {
		n = 1
	}
	s.manager.Submit(wm.Command{Kind: wm.CmdRotateWorkspace, Dir: dir, N: n})
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleSetMasterFraction(payload json.RawMessage) *Response {
	var req SetMasterFractionPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return NewErrorResponse(fmt.Sprintf("invalid payload: %v", err))
	}
	s.manager.Submit(wm.Command{Kind: wm.CmdChangeMasterSize, Delta: req.Delta})
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleToggleFloating() *Response {
	s.manager.Submit(wm.Command{Kind: wm.CmdToggleFloatingFocused})
	resp, _ := NewOKResponse(nil)
	return resp
}

// handleReload re-reads and validates the configuration file, then
// pushes the reloadable subset of it (gap, border width, and the two
// border colors) into the manager through the normal command queue.
// Workspace count and keybinds aren't reloadable here: both are wired
// in once at startup, so changing them requires a daemon restart.
func (s *Server) handleReload() *Response {
	cfg, err := config.Load()
	if err != nil {
		return NewErrorResponse(fmt.Sprintf("reloading config: %v", err))
	}

	s.manager.Submit(wm.Command{
		Kind: wm.CmdReloadConfig,
		Reload: wm.ReloadValues{
			Gap:                 cfg.Gap,
			BorderWidth:         cfg.BorderWidth,
			ActiveBorderColor:   cfg.ActiveWindowBorderColor,
			InactiveBorderColor: cfg.InactiveWindowBorderColor,
		},
	})

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) handleQuit(payload json.RawMessage) *Response {
	var req QuitPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return NewErrorResponse(fmt.Sprintf("invalid payload: %v", err))
		}
	}
	s.manager.Submit(wm.Command{Kind: wm.CmdQuit, KillAll: req.KillClients})
	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendError(conn net.Conn, errMsg string) {
	resp := NewErrorResponse(errMsg)
	data, _ := resp.Marshal()
	data = append(data, '\n')
	conn.Write(data)
}

// Stop gracefully shuts down the IPC server.
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}
