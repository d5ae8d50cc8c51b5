// Package launcher picks a sane default terminal emulator when the
// configuration doesn't name one. Actually spawning processes is the
// backend's job (server.Backend.Spawn); this package only resolves
// what to spawn.
package launcher

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Detect probes $PATH for a supported terminal emulator, used only to
// pick a default when no terminal_command is configured.
func Detect() (string, bool) {
	for _, candidate := range []string{
		"kitty", "ghostty", "wezterm", "alacritty",
		"gnome-terminal", "konsole", "urxvt", "xterm",
	} {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, true
		}
	}
	if env := strings.TrimSpace(os.Getenv("TERMINAL")); env != "" {
		if path, err := exec.LookPath(filepath.Base(env)); err == nil {
			return path, true
		}
	}
	return "", false
}
