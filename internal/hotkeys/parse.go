package hotkeys

import (
	"fmt"
	"strings"

	"github.com/partwm/partwm/internal/config"
	"github.com/partwm/partwm/internal/server"
)

// ParseBinding parses a "mod-shift-j"-style spec into a KeySym/Modifier
// pair. "mod" expands to whichever modifier modKey names.
func ParseBinding(spec string, modKey config.ModKey) (server.KeySym, server.Modifier, error) {
	parts := strings.Split(spec, "-")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("hotkeys: malformed binding %q, want e.g. mod-j", spec)
	}
	key := parts[len(parts)-1]
	var mods server.Modifier

	for _, tok := range parts[:len(parts)-1] {
		switch strings.ToLower(tok) {
		case "mod":
			mods |= modifierFor(modKey)
		case "super":
			mods |= server.ModSuper
		case "shift":
			mods |= server.ModShift
		case "ctrl", "control":
			mods |= server.ModControl
		case "alt", "mod1":
			mods |= server.ModMod1
		default:
			return 0, 0, fmt.Errorf("hotkeys: unknown modifier %q in binding %q", tok, spec)
		}
	}

	sym, err := keysymFor(key)
	if err != nil {
		return 0, 0, fmt.Errorf("hotkeys: %q: %w", spec, err)
	}
	return sym, mods, nil
}

// ModifierFor reports the server.Modifier that modKey names, for
// building wm.Config.ModKey from the loaded configuration.
func ModifierFor(modKey config.ModKey) server.Modifier {
	return modifierFor(modKey)
}

func modifierFor(modKey config.ModKey) server.Modifier {
	switch modKey {
	case config.ModKeyAlt:
		return server.ModMod1
	case config.ModKeyCtrl:
		return server.ModControl
	default:
		return server.ModSuper
	}
}

func keysymFor(key string) (server.KeySym, error) {
	if sym, ok := namedKeysyms[key]; ok {
		return sym, nil
	}
	if len(key) == 1 {
		r := key[0]
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return server.KeySym(r), nil
		case r >= 'A' && r <= 'Z':
			return server.KeySym(r - 'A' + 'a'), nil
		}
	}
	return 0, fmt.Errorf("unrecognized key name %q", key)
}
