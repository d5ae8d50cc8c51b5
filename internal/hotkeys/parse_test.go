package hotkeys

import (
	"testing"

	"github.com/partwm/partwm/internal/config"
	"github.com/partwm/partwm/internal/server"
)

func TestParseBindingExpandsMod(t *testing.T) {
	key, mods, err := ParseBinding("mod-j", config.ModKeySuper)
	if err != nil {
		t.Fatalf("ParseBinding: %v", err)
	}
	if mods != server.ModSuper {
		t.Errorf("mods = %v, want ModSuper", mods)
	}
	if key != server.KeySym('j') {
		t.Errorf("key = %v, want 'j'", key)
	}
}

func TestParseBindingCombinesModifiers(t *testing.T) {
	_, mods, err := ParseBinding("mod-shift-q", config.ModKeySuper)
	if err != nil {
		t.Fatalf("ParseBinding: %v", err)
	}
	want := server.ModSuper | server.ModShift
	if mods != want {
		t.Errorf("mods = %v, want %v", mods, want)
	}
}

func TestParseBindingNamedKey(t *testing.T) {
	key, _, err := ParseBinding("mod-Return", config.ModKeySuper)
	if err != nil {
		t.Fatalf("ParseBinding: %v", err)
	}
	if key != server.KeySym(0xff0d) {
		t.Errorf("key = %#x, want Return keysym", key)
	}
}

func TestParseBindingRejectsUnknownModifier(t *testing.T) {
	if _, _, err := ParseBinding("bogus-j", config.ModKeySuper); err == nil {
		t.Fatal("expected an error for an unknown modifier")
	}
}

func TestCommandForGotoWorkspaceParsesIndex(t *testing.T) {
	cmd, err := commandFor("goto_workspace_3", config.Default())
	if err != nil {
		t.Fatalf("commandFor: %v", err)
	}
	if cmd.N != 3 {
		t.Errorf("N = %d, want 3", cmd.N)
	}
}

func TestCommandForUnknownNameErrors(t *testing.T) {
	if _, err := commandFor("not_a_real_command", config.Default()); err == nil {
		t.Fatal("expected an error for an unknown command name")
	}
}
