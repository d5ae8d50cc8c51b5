package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPassesValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() failed Validate(): %v", err)
	}
}

func TestLoadFromPathMissingFileReturnsDefault(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.NumWorkspaces != Default().NumWorkspaces {
		t.Errorf("NumWorkspaces = %d, want default %d", cfg.NumWorkspaces, Default().NumWorkspaces)
	}
}

func TestLoadFromPathOverlaysOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	const yaml = `
gap: 10
terminal_command:
  program: kitty
  args: ["--single-instance"]
keybinds:
  mod-y: spawn_terminal
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Gap != 10 {
		t.Errorf("Gap = %d, want 10", cfg.Gap)
	}
	if cfg.BorderWidth != Default().BorderWidth {
		t.Errorf("BorderWidth = %d, want untouched default %d", cfg.BorderWidth, Default().BorderWidth)
	}
	if cfg.TerminalCommand.Program != "kitty" || len(cfg.TerminalCommand.Args) != 1 {
		t.Errorf("TerminalCommand = %+v, want kitty with one arg", cfg.TerminalCommand)
	}
	if cfg.Keybinds["mod-y"] != "spawn_terminal" {
		t.Errorf("keybinds[mod-y] = %q, want spawn_terminal", cfg.Keybinds["mod-y"])
	}
	if cfg.Keybinds["mod-Return"] != "spawn_terminal" {
		t.Errorf("default keybind mod-Return was dropped by a partial overlay")
	}
}

func TestLoadFromPathRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("gap_size: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected an error for an unknown field (gap_size, not gap)")
	}
}

func TestValidateRejectsMalformedColor(t *testing.T) {
	cfg := Default()
	cfg.ActiveWindowBorderColor = "blue"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected Validate() to reject a non-hex color")
	}
}

func TestValidateClampsNegativeGapAndBorder(t *testing.T) {
	cfg := Default()
	cfg.Gap = -5
	cfg.BorderWidth = -1
	cfg.NumWorkspaces = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Gap != 0 || cfg.BorderWidth != 0 || cfg.NumWorkspaces != 1 {
		t.Errorf("clamped values = gap:%d border:%d workspaces:%d, want 0,0,1", cfg.Gap, cfg.BorderWidth, cfg.NumWorkspaces)
	}
}

func TestCommandArgv(t *testing.T) {
	c := Command{Program: "xterm", Args: []string{"-e", "vim"}}
	got := c.Argv()
	want := []string{"xterm", "-e", "vim"}
	if len(got) != len(want) {
		t.Fatalf("Argv() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Argv() = %v, want %v", got, want)
		}
	}
}
