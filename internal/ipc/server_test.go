package ipc

import (
	"encoding/json"
	"testing"

	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/wm"
)

type fakeManager struct {
	submitted []wm.Command
	status    wm.Status
	workspace []wm.WorkspaceStatus
	clients   []wm.ClientInfo
}

func (f *fakeManager) Submit(cmd wm.Command)               { f.submitted = append(f.submitted, cmd) }
func (f *fakeManager) GetStatus() wm.Status                 { return f.status }
func (f *fakeManager) ListWorkspaces() []wm.WorkspaceStatus { return f.workspace }
func (f *fakeManager) ListClients() []wm.ClientInfo         { return f.clients }

func TestHandleGetStatusMarshalsSnapshot(t *testing.T) {
	m := &fakeManager{status: wm.Status{CurrentWorkspace: 2, NumWorkspaces: 9, MasterFraction: 0.6, TiledCount: 3, FloatingCount: 1}}
	s := &Server{manager: m}

	resp := s.handleCommand(&Request{Command: CommandGetStatus})
	if resp.Status != "OK" {
		t.Fatalf("status = %q, want OK (err=%s)", resp.Status, resp.Error)
	}

	var data StatusData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.CurrentWorkspace != 2 || data.TiledCount != 3 {
		t.Errorf("data = %+v, want current=2 tiled=3", data)
	}
}

func TestHandleGoToWorkspaceSubmitsCommand(t *testing.T) {
	m := &fakeManager{}
	s := &Server{manager: m}

	payload, _ := json.Marshal(GoToWorkspacePayload{Index: 4})
	resp := s.handleCommand(&Request{Command: CommandGoToWorkspace, Payload: payload})
	if resp.Status != "OK" {
		t.Fatalf("status = %q, want OK", resp.Status)
	}
	if len(m.submitted) != 1 || m.submitted[0].Kind != wm.CmdGoToWorkspace || m.submitted[0].N != 4 {
		t.Errorf("submitted = %+v, want one CmdGoToWorkspace(N=4)", m.submitted)
	}
}

func TestHandleRotateWorkspaceDefaultsToOneStep(t *testing.T) {
	m := &fakeManager{}
	s := &Server{manager: m}

	payload, _ := json.Marshal(RotateWorkspacePayload{Direction: "west"})
	s.handleCommand(&Request{Command: CommandRotateWorkspace, Payload: payload})

	if len(m.submitted) != 1 || m.submitted[0].Dir != wm.DirWest || m.submitted[0].N != 1 {
		t.Errorf("submitted = %+v, want DirWest N=1", m.submitted)
	}
}

func TestHandleListClientsMarshalsSnapshot(t *testing.T) {
	m := &fakeManager{clients: []wm.ClientInfo{
		{ID: 7, Kind: "normal", Floating: false, Size: geometry.Size{W: 100, H: 200}},
		{ID: 9, Kind: "dialog", Floating: true, Fullscreen: false, Position: geometry.Point{X: 5, Y: 5}},
	}}
	s := &Server{manager: m}

	resp := s.handleCommand(&Request{Command: CommandListClients})
	if resp.Status != "OK" {
		t.Fatalf("status = %q, want OK (err=%s)", resp.Status, resp.Error)
	}

	var data ClientsData
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(data.Clients) != 2 || data.Clients[0].Window != 7 || data.Clients[1].Floating != true {
		t.Errorf("clients = %+v, want window=7 first and second floating", data.Clients)
	}
}

func TestHandleUnknownCommandReturnsError(t *testing.T) {
	s := &Server{manager: &fakeManager{}}
	resp := s.handleCommand(&Request{Command: "NOT_A_COMMAND"})
	if resp.Status != "ERROR" {
		t.Errorf("status = %q, want ERROR", resp.Status)
	}
}
