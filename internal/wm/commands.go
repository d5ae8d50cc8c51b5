package wm

import (
	"github.com/partwm/partwm/internal/layout"
	"github.com/partwm/partwm/internal/server"
)

// Direction is used both for workspace rotation and for MoveFocus.
type Direction int

const (
	DirNorth Direction = iota
	DirSouth
	DirEast
	DirWest
)

// CommandKind discriminates the Command tagged enum. The binding table
// maps keys to Command values, not to closures, so bindings can be
// re-derived from configuration without capturing manager state.
type CommandKind int

const (
	CmdRotateWorkspace CommandKind = iota
	CmdGoToWorkspace
	CmdGoBackWorkspace
	CmdMoveFocus
	CmdSwitchStack
	CmdToggleFloatingFocused
	CmdToggleFullscreenFocused
	CmdChangeMasterSize
	CmdKillFocused
	CmdSpawnTerminal
	CmdSpawnCommand
	CmdReloadConfig
	CmdQuit
)

// ReloadValues carries the subset of Config that CmdReloadConfig pushes
// into a running Manager: the gap, border width, and the two border
// colors, mirroring the fields internal/ipc's RELOAD handler re-reads
// from the configuration file.
type ReloadValues struct {
	Gap                 int
	BorderWidth         int
	ActiveBorderColor   string
	InactiveBorderColor string
}

// Command is a closed, data-only description of one bound action.
// Only the fields relevant to Kind are meaningful.
type Command struct {
	Kind    CommandKind
	Dir     Direction
	N       int
	Delta   float64
	Argv    []string
	KillAll bool
	Reload  ReloadValues
}

// Dispatch executes cmd and, for every state-mutating command, runs
// exactly one re-layout pass afterward.
func (m *Manager) Dispatch(cmd Command) {
	switch cmd.Kind {
	case CmdRotateWorkspace:
		m.rotateWorkspace(cmd.Dir, cmd.N)
	case CmdGoToWorkspace:
		m.goToWorkspace(cmd.N)
	case CmdGoBackWorkspace:
		m.goBackWorkspace()
	case CmdMoveFocus:
		m.moveFocus(cmd.Dir)
		return // focus-only; no geometry changed, no re-layout needed
	case CmdSwitchStack:
		m.switchStackFocused()
	case CmdToggleFloatingFocused:
		m.toggleFloatingFocused()
	case CmdToggleFullscreenFocused:
		m.toggleFullscreenFocused()
		return // handleFullscreen already relayouts
	case CmdChangeMasterSize:
		m.changeMasterSize(cmd.Delta)
	case CmdKillFocused:
		m.killFocused()
		return
	case CmdSpawnTerminal:
		m.spawnTerminal()
		return
	case CmdSpawnCommand:
		m.spawnCommand(cmd.Argv)
		return
	case CmdReloadConfig:
		m.applyReload(cmd.Reload)
	case CmdQuit:
		m.quit(cmd.KillAll)
		return
	default:
		return
	}
	m.relayout()
}

func (m *Manager) rotateWorkspace(dir Direction, n int) {
	switch dir {
	case DirEast:
		m.workspaces.RotateRight(n)
	case DirWest:
		m.workspaces.RotateLeft(n)
	default:
		m.workspaces.RotateRight(n)
	}
	m.actionLog.LogAction("rotate_workspace", "to", m.workspaces.CurrentIndex())
}

func (m *Manager) goToWorkspace(n int) {
	m.workspaces.GoTo(n)
	m.actionLog.LogAction("go_to_workspace", "to", m.workspaces.CurrentIndex())
}

func (m *Manager) goBackWorkspace() {
	m.workspaces.GoBack()
	m.actionLog.LogAction("go_back_workspace", "to", m.workspaces.CurrentIndex())
}

// moveFocus implements the MoveFocus command: West focuses the first
// master client, East the first aux client, North/South step within
// the focused client's current stack with no wrap-around.
func (m *Manager) moveFocus(dir Direction) {
	ws := m.workspaces.Current()

	switch dir {
	case DirWest:
		if len(ws.Master) > 0 {
			m.focus(ws.Master[0], true)
		}
		return
	case DirEast:
		if len(ws.Aux) > 0 {
			m.focus(ws.Aux[0], true)
		}
		return
	}

	focused, ok := m.store.Focused()
	if !ok {
		return
	}

	stack := ws.Master
	if ws.IsAux(focused) {
		stack = ws.Aux
	} else if !ws.IsMaster(focused) {
		return // focused client isn't tiled on the current workspace: no-op
	}

	idx := -1
	for i, id := range stack {
		if id == focused {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	next := idx
	switch dir {
	case DirNorth:
		next = idx - 1
	case DirSouth:
		next = idx + 1
	}
	if next < 0 || next >= len(stack) {
		return // no wrap-around at stack ends
	}
	m.focus(stack[next], true)
}

func (m *Manager) switchStackFocused() {
	id, ok := m.store.Focused()
	if !ok {
		return
	}
	m.workspaces.Current().SwitchStack(id)
	m.actionLog.LogAction("switch_stack", "window", id)
}

func (m *Manager) toggleFloatingFocused() {
	id, ok := m.store.Focused()
	if !ok {
		return
	}
	m.store.ToggleFloating(id)
	m.actionLog.LogAction("toggle_floating", "window", id)
}

func (m *Manager) toggleFullscreenFocused() {
	id, ok := m.store.Focused()
	if !ok {
		return
	}
	m.handleFullscreen(server.WindowEvent{Kind: server.EventFullscreen, Window: id, FullscreenAction: server.FullscreenToggle})
}

func (m *Manager) changeMasterSize(delta float64) {
	m.masterFrac = layout.ClampMasterFraction(m.masterFrac + delta)
	m.actionLog.LogAction("change_master_size", "master_fraction", m.masterFrac)
}

// applyReload pushes freshly-loaded configuration values into the
// running core: new border colors go straight to the backend, while
// gap/border width take effect on the relayout Dispatch runs after this
// returns. It never touches workspace count or keybinds, which require
// a restart to change.
func (m *Manager) applyReload(v ReloadValues) {
	if v.ActiveBorderColor != "" && v.ActiveBorderColor != m.cfg.ActiveBorderColor {
		if err := m.backend.SetActiveBorderColor(v.ActiveBorderColor); err != nil {
			m.logger.Warn("reload: setting active border color failed", "error", err)
		} else {
			m.cfg.ActiveBorderColor = v.ActiveBorderColor
		}
	}
	if v.InactiveBorderColor != "" && v.InactiveBorderColor != m.cfg.InactiveBorderColor {
		if err := m.backend.SetInactiveBorderColor(v.InactiveBorderColor); err != nil {
			m.logger.Warn("reload: setting inactive border color failed", "error", err)
		} else {
			m.cfg.InactiveBorderColor = v.InactiveBorderColor
		}
	}
	m.cfg.Gap = v.Gap
	m.cfg.BorderWidth = v.BorderWidth
	if m.border != 0 { // leave the fullscreen override (0) alone
		m.border = v.BorderWidth
	}
	m.actionLog.LogAction("reload_config", "gap", v.Gap, "border_width", v.BorderWidth)
}

func (m *Manager) killFocused() {
	id, ok := m.store.Focused()
	if !ok {
		return
	}
	if err := m.backend.KillWindow(id); err != nil {
		m.logger.Warn("kill_window failed", "window", id, "error", err)
	}
	m.actionLog.LogAction("kill_focused", "window", id)
}

func (m *Manager) spawnTerminal() {
	m.spawnCommand(m.cfg.TerminalCommand)
}

func (m *Manager) spawnCommand(argv []string) {
	if len(argv) == 0 {
		return
	}
	if err := m.backend.Spawn(argv); err != nil {
		m.logger.Error("spawn failed", "argv", argv, "error", err)
		return
	}
	m.actionLog.LogAction("spawn", "argv", argv)
}

func (m *Manager) quit(killAll bool) {
	if killAll {
		for _, c := range m.store.All() {
			_ = m.backend.KillWindow(c.ID)
		}
	}
	m.actionLog.LogAction("quit", "kill_all", killAll)
	m.quitOnce.Do(func() { close(m.quitCh) })
}
