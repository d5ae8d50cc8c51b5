package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/partwm/partwm/internal/runtimepath"
)

// Client handles IPC communication with the daemon.
type Client struct {
	socketPath string
	timeout    time.Duration
}

// NewClient creates a new IPC client bound to the default socket path.
func NewClient() *Client {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		// Keep constructor non-failing; sendRequest surfaces connection errors.
		socketPath = ""
	}

	return &Client{
		socketPath: socketPath,
		timeout:    5 * time.Second,
	}
}

func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := net.DialTimeout("unix", c.socketPath, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// Reload asks the daemon to re-read its configuration.
func (c *Client) Reload() error {
	_, err := c.sendRequest(&Request{Command: CommandReload})
	return err
}

// GetStatus retrieves daemon status.
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}
	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}
	return &status, nil
}

// ListWorkspaces retrieves per-workspace occupancy.
func (c *Client) ListWorkspaces() (*WorkspacesData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandListWorkspaces})
	if err != nil {
		return nil, err
	}
	var data WorkspacesData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse workspaces data: %w", err)
	}
	return &data, nil
}

// ListClients retrieves every window the daemon currently manages.
func (c *Client) ListClients() (*ClientsData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandListClients})
	if err != nil {
		return nil, err
	}
	var data ClientsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("failed to parse clients data: %w", err)
	}
	return &data, nil
}

// GoToWorkspace switches the daemon to the given workspace index.
func (c *Client) GoToWorkspace(index int) error {
	payload, err := json.Marshal(GoToWorkspacePayload{Index: index})
	if err != nil {
		return fmt.Errorf("failed to marshal goto payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandGoToWorkspace, Payload: payload})
	return err
}

// RotateWorkspace rotates the current workspace n steps in direction
// ("east" or "west").
func (c *Client) RotateWorkspace(direction string, n int) error {
	payload, err := json.Marshal(RotateWorkspacePayload{Direction: direction, N: n})
	if err != nil {
		return fmt.Errorf("failed to marshal rotate payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandRotateWorkspace, Payload: payload})
	return err
}

// SetMasterFraction nudges the master-area fraction by delta.
func (c *Client) SetMasterFraction(delta float64) error {
	payload, err := json.Marshal(SetMasterFractionPayload{Delta: delta})
	if err != nil {
		return fmt.Errorf("failed to marshal master-fraction payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandSetMasterFraction, Payload: payload})
	return err
}

// ToggleFloating toggles the floating state of the focused window.
func (c *Client) ToggleFloating() error {
	_, err := c.sendRequest(&Request{Command: CommandToggleFloating})
	return err
}

// Quit asks the daemon to shut down, optionally killing all clients first.
func (c *Client) Quit(killClients bool) error {
	payload, err := json.Marshal(QuitPayload{KillClients: killClients})
	if err != nil {
		return fmt.Errorf("failed to marshal quit payload: %w", err)
	}
	_, err = c.sendRequest(&Request{Command: CommandQuit, Payload: payload})
	return err
}

// Ping checks if the daemon is responding.
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
