package hotkeys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/partwm/partwm/internal/config"
	"github.com/partwm/partwm/internal/wm"
)

// commandFor maps a config keybind's command name to a wm.Command. Names
// of the form "goto_workspace_<n>" select workspace n.
func commandFor(name string, cfg *config.Config) (wm.Command, error) {
	if n, ok := strings.CutPrefix(name, "goto_workspace_"); ok {
		idx, err := strconv.Atoi(n)
		if err != nil {
			return wm.Command{}, fmt.Errorf("hotkeys: invalid workspace index in %q", name)
		}
		return wm.Command{Kind: wm.CmdGoToWorkspace, N: idx}, nil
	}

	switch name {
	case "spawn_terminal":
		return wm.Command{Kind: wm.CmdSpawnTerminal}, nil
	case "spawn_command":
		return wm.Command{Kind: wm.CmdSpawnCommand, Argv: cfg.LauncherCommand.Argv()}, nil
	case "move_focus_north":
		return wm.Command{Kind: wm.CmdMoveFocus, Dir: wm.DirNorth}, nil
	case "move_focus_south":
		return wm.Command{Kind: wm.CmdMoveFocus, Dir: wm.DirSouth}, nil
	case "move_focus_east":
		return wm.Command{Kind: wm.CmdMoveFocus, Dir: wm.DirEast}, nil
	case "move_focus_west":
		return wm.Command{Kind: wm.CmdMoveFocus, Dir: wm.DirWest}, nil
	case "switch_stack":
		return wm.Command{Kind: wm.CmdSwitchStack}, nil
	case "toggle_floating":
		return wm.Command{Kind: wm.CmdToggleFloatingFocused}, nil
	case "toggle_fullscreen":
		return wm.Command{Kind: wm.CmdToggleFullscreenFocused}, nil
	case "grow_master":
		return wm.Command{Kind: wm.CmdChangeMasterSize, Delta: 0.05}, nil
	case "shrink_master":
		return wm.Command{Kind: wm.CmdChangeMasterSize, Delta: -0.05}, nil
	case "kill_focused":
		return wm.Command{Kind: wm.CmdKillFocused}, nil
	case "go_back_workspace":
		return wm.Command{Kind: wm.CmdGoBackWorkspace}, nil
	case "rotate_workspace_east":
		return wm.Command{Kind: wm.CmdRotateWorkspace, Dir: wm.DirEast, N: 1}, nil
	case "rotate_workspace_west":
		return wm.Command{Kind: wm.CmdRotateWorkspace, Dir: wm.DirWest, N: 1}, nil
	case "quit":
		return wm.Command{Kind: wm.CmdQuit, KillAll: cfg.KillClientsOnExit}, nil
	default:
		return wm.Command{}, fmt.Errorf("hotkeys: unknown command name %q", name)
	}
}
