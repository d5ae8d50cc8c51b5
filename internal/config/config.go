// Package config loads the daemon's YAML configuration file, merging it
// over built-in defaults.
package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Command is a program plus its argument list, used for terminal_command
// and launcher_command.
type Command struct {
	Program string   `yaml:"program"`
	Args    []string `yaml:"args,omitempty"`
}

// Argv returns the command as a single argv slice.
func (c Command) Argv() []string {
	if c.Program == "" {
		return nil
	}
	out := make([]string, 0, 1+len(c.Args))
	out = append(out, c.Program)
	return append(out, c.Args...)
}

// LoggingConfig configures the action audit log (internal/actionlog).
type LoggingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Level     string `yaml:"level"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files"`
}

// ModKey names the modifier used as the WM's primary binding prefix.
type ModKey string

const (
	ModKeySuper ModKey = "super"
	ModKeyAlt   ModKey = "alt"
	ModKeyCtrl  ModKey = "ctrl"
)

// Config holds the daemon's effective, validated configuration.
type Config struct {
	NumWorkspaces             int               `yaml:"num_workspaces"`
	ModKey                    ModKey            `yaml:"mod_key"`
	Gap                       int               `yaml:"gap"`
	BorderWidth               int               `yaml:"border_width"`
	ActiveWindowBorderColor   string            `yaml:"active_window_border_color"`
	InactiveWindowBorderColor string            `yaml:"inactive_window_border_color"`
	TerminalCommand           Command           `yaml:"terminal_command"`
	KillClientsOnExit         bool              `yaml:"kill_clients_on_exit"`
	LauncherCommand           Command           `yaml:"launcher_command"`
	ReconcileIntervalSeconds  int               `yaml:"reconcile_interval_seconds"`
	Logging                   LoggingConfig     `yaml:"logging"`
	Keybinds                  map[string]string `yaml:"keybinds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		NumWorkspaces:             10,
		ModKey:                    ModKeySuper,
		Gap:                       2,
		BorderWidth:               1,
		ActiveWindowBorderColor:   "#ffffff",
		InactiveWindowBorderColor: "#444444",
		TerminalCommand:           Command{Program: "xterm"},
		KillClientsOnExit:         false,
		LauncherCommand:           Command{Program: "dmenu_run"},
		ReconcileIntervalSeconds:  30,
		Logging: LoggingConfig{
			Enabled:   false,
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
		Keybinds: DefaultKeybinds(),
	}
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidationError reports which configuration field failed validation.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate clamps and rejects malformed fields, never panicking.
func (c *Config) Validate() error {
	if c.NumWorkspaces < 1 {
		c.NumWorkspaces = 1
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.BorderWidth < 0 {
		c.BorderWidth = 0
	}
	switch c.ModKey {
	case ModKeySuper, ModKeyAlt, ModKeyCtrl:
	default:
		return &ValidationError{Path: "mod_key", Err: fmt.Errorf("mod_key must be one of: super, alt, ctrl")}
	}
	if !hexColor.MatchString(c.ActiveWindowBorderColor) {
		return &ValidationError{Path: "active_window_border_color", Err: fmt.Errorf("must be a #rrggbb color, got %q", c.ActiveWindowBorderColor)}
	}
	if !hexColor.MatchString(c.InactiveWindowBorderColor) {
		return &ValidationError{Path: "inactive_window_border_color", Err: fmt.Errorf("must be a #rrggbb color, got %q", c.InactiveWindowBorderColor)}
	}
	if c.TerminalCommand.Program == "" {
		return &ValidationError{Path: "terminal_command.program", Err: fmt.Errorf("must not be empty")}
	}
	if c.ReconcileIntervalSeconds < 0 {
		c.ReconcileIntervalSeconds = 0
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "logging.level", Err: fmt.Errorf("must be one of: debug, info, warn, error")}
	}
	if c.Logging.MaxSizeMB <= 0 {
		c.Logging.MaxSizeMB = 10
	}
	if c.Logging.MaxFiles <= 0 {
		c.Logging.MaxFiles = 3
	}
	return nil
}
