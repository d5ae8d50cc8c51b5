// Package hotkeys resolves the configured symbolic keybind table into
// wm.Command bindings and registers the underlying key grabs with the
// backend at setup time.
package hotkeys

import (
	"fmt"

	"github.com/partwm/partwm/internal/config"
	"github.com/partwm/partwm/internal/server"
	"github.com/partwm/partwm/internal/wm"
)

// RegisterAll resolves every entry in cfg.Keybinds to a (KeySym,
// Modifier) -> wm.Command binding, installs it on manager, and asks
// backend to grab the corresponding key combination so that pressing it
// produces a server.EventKeyPress through the normal event loop: the
// core never receives commands from outside that loop. It also grabs
// the mod-click/mod-right-click/middle-click mouse chords the core's
// move/resize protocol and floating-toggle rely on, so those too arrive
// as ordinary ButtonPress events instead of depending on whatever the
// root window happens to already be selecting for.
func RegisterAll(cfg *config.Config, manager *wm.Manager, backend server.Backend) error {
	for spec, name := range cfg.Keybinds {
		key, mods, err := ParseBinding(spec, cfg.ModKey)
		if err != nil {
			return err
		}
		cmd, err := commandFor(name, cfg)
		if err != nil {
			return fmt.Errorf("hotkeys: binding %q: %w", spec, err)
		}
		manager.Bind(key, mods, cmd)
		if err := backend.AddKeybind(server.KeyOrMouseBind{Key: key, Modifiers: mods}); err != nil {
			return fmt.Errorf("hotkeys: grabbing %q: %w", spec, err)
		}
	}
	return registerMouseBinds(cfg, backend)
}

// registerMouseBinds grabs the three fixed mouse chords the core's
// handleButtonPress already knows how to interpret: mod+left-click to
// move, mod+right-click to resize, and a bare middle-click to toggle
// floating on the clicked client.
func registerMouseBinds(cfg *config.Config, backend server.Backend) error {
	mod := modifierFor(cfg.ModKey)
	move, resize, toggle := server.ButtonLeft, server.ButtonRight, server.ButtonMiddle

	binds := []server.KeyOrMouseBind{
		{Button: &move, Modifiers: mod},
		{Button: &resize, Modifiers: mod},
		{Button: &toggle, Modifiers: 0},
	}
	for _, bind := range binds {
		if err := backend.AddKeybind(bind); err != nil {
			return fmt.Errorf("hotkeys: grabbing mouse button %d: %w", *bind.Button, err)
		}
	}
	return nil
}
