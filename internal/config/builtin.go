package config

import "fmt"

// DefaultKeybinds returns the built-in symbolic-name -> command mapping
// parsed by internal/hotkeys into wm.Command values. The symbolic key names
// use the xgbutil/keybind spelling (e.g. "Return", "j", "1"); "mod" expands
// to whichever modifier Config.ModKey names.
func DefaultKeybinds() map[string]string {
	binds := map[string]string{
		"mod-Return":  "spawn_terminal",
		"mod-p":       "spawn_command",
		"mod-j":       "move_focus_south",
		"mod-k":       "move_focus_north",
		"mod-h":       "move_focus_west",
		"mod-l":       "move_focus_east",
		"mod-space":   "switch_stack",
		"mod-f":       "toggle_floating",
		"mod-shift-f": "toggle_fullscreen",
		"mod-equal":   "grow_master",
		"mod-minus":   "shrink_master",
		"mod-shift-q": "kill_focused",
		"mod-shift-e": "quit",
		"mod-Tab":     "go_back_workspace",
		"mod-Right":   "rotate_workspace_east",
		"mod-Left":    "rotate_workspace_west",
	}
	for i := 0; i < 10; i++ {
		binds[fmt.Sprintf("mod-%d", i)] = fmt.Sprintf("goto_workspace_%d", i)
	}
	return binds
}
