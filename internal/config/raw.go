package config

// RawCommand mirrors Command with optional fields for partial YAML overlays.
type RawCommand struct {
	Program *string  `yaml:"program"`
	Args    []string `yaml:"args"`
}

// RawLoggingConfig mirrors LoggingConfig with optional fields.
type RawLoggingConfig struct {
	Enabled   *bool   `yaml:"enabled"`
	Level     *string `yaml:"level"`
	File      *string `yaml:"file"`
	MaxSizeMB *int    `yaml:"max_size_mb"`
	MaxFiles  *int    `yaml:"max_files"`
}

// RawConfig is the YAML document shape: every field optional, so a partial
// file only overrides what it names and Default() supplies the rest.
type RawConfig struct {
	NumWorkspaces             *int              `yaml:"num_workspaces"`
	ModKey                    *string           `yaml:"mod_key"`
	Gap                       *int              `yaml:"gap"`
	BorderWidth               *int              `yaml:"border_width"`
	ActiveWindowBorderColor   *string           `yaml:"active_window_border_color"`
	InactiveWindowBorderColor *string           `yaml:"inactive_window_border_color"`
	TerminalCommand           *RawCommand       `yaml:"terminal_command"`
	KillClientsOnExit         *bool             `yaml:"kill_clients_on_exit"`
	LauncherCommand           *RawCommand       `yaml:"launcher_command"`
	ReconcileIntervalSeconds  *int              `yaml:"reconcile_interval_seconds"`
	Logging                   *RawLoggingConfig `yaml:"logging"`
	Keybinds                  map[string]string `yaml:"keybinds"`
}

// applyTo overlays the set fields of r onto a copy of base and returns it.
func (r RawConfig) applyTo(base *Config) *Config {
	cfg := *base

	if r.NumWorkspaces != nil {
		cfg.NumWorkspaces = *r.NumWorkspaces
	}
	if r.ModKey != nil {
		cfg.ModKey = ModKey(*r.ModKey)
	}
	if r.Gap != nil {
		cfg.Gap = *r.Gap
	}
	if r.BorderWidth != nil {
		cfg.BorderWidth = *r.BorderWidth
	}
	if r.ActiveWindowBorderColor != nil {
		cfg.ActiveWindowBorderColor = *r.ActiveWindowBorderColor
	}
	if r.InactiveWindowBorderColor != nil {
		cfg.InactiveWindowBorderColor = *r.InactiveWindowBorderColor
	}
	if r.TerminalCommand != nil {
		cfg.TerminalCommand = applyRawCommand(cfg.TerminalCommand, r.TerminalCommand)
	}
	if r.KillClientsOnExit != nil {
		cfg.KillClientsOnExit = *r.KillClientsOnExit
	}
	if r.LauncherCommand != nil {
		cfg.LauncherCommand = applyRawCommand(cfg.LauncherCommand, r.LauncherCommand)
	}
	if r.ReconcileIntervalSeconds != nil {
		cfg.ReconcileIntervalSeconds = *r.ReconcileIntervalSeconds
	}
	if r.Logging != nil {
		cfg.Logging = applyRawLogging(cfg.Logging, r.Logging)
	}
	if r.Keybinds != nil {
		merged := make(map[string]string, len(cfg.Keybinds)+len(r.Keybinds))
		for k, v := range cfg.Keybinds {
			merged[k] = v
		}
		for k, v := range r.Keybinds {
			merged[k] = v
		}
		cfg.Keybinds = merged
	}

	return &cfg
}

func applyRawCommand(base Command, r *RawCommand) Command {
	out := base
	if r.Program != nil {
		out.Program = *r.Program
	}
	if r.Args != nil {
		out.Args = r.Args
	}
	return out
}

func applyRawLogging(base LoggingConfig, r *RawLoggingConfig) LoggingConfig {
	out := base
	if r.Enabled != nil {
		out.Enabled = *r.Enabled
	}
	if r.Level != nil {
		out.Level = *r.Level
	}
	if r.File != nil {
		out.File = *r.File
	}
	if r.MaxSizeMB != nil {
		out.MaxSizeMB = *r.MaxSizeMB
	}
	if r.MaxFiles != nil {
		out.MaxFiles = *r.MaxFiles
	}
	return out
}
