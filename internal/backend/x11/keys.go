package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/partwm/partwm/internal/server"
)

// modMask translates our backend-agnostic server.Modifier bitmask to the
// X11 ModMask bits GrabKey expects.
func modMask(m server.Modifier) uint16 {
	var mask uint16
	if m&server.ModShift != 0 {
		mask |= xproto.ModMaskShift
	}
	if m&server.ModControl != 0 {
		mask |= xproto.ModMaskControl
	}
	if m&server.ModMod1 != 0 {
		mask |= xproto.ModMask1
	}
	if m&server.ModSuper != 0 {
		mask |= xproto.ModMask4
	}
	return mask
}

// keycodeForKeysym resolves a KeySym to a keycode by scanning the
// server's keyboard mapping for a matching entry.
func (b *Backend) keycodeForKeysym(sym server.KeySym) (xproto.Keycode, error) {
	setup := xproto.Setup(b.xu.Conn())
	count := setup.MaxKeycode - setup.MinKeycode + 1

	mapping, err := xproto.GetKeyboardMapping(b.xu.Conn(), setup.MinKeycode, count).Reply()
	if err != nil {
		return 0, fmt.Errorf("x11: querying keyboard mapping: %w", err)
	}

	perKeycode := int(mapping.KeysymsPerKeycode)
	if perKeycode == 0 {
		return 0, fmt.Errorf("x11: keyboard mapping reports zero keysyms per keycode")
	}

	for i := 0; i+perKeycode <= len(mapping.Keysyms); i += perKeycode {
		for _, ks := range mapping.Keysyms[i : i+perKeycode] {
			if server.KeySym(ks) == sym {
				return xproto.Keycode(int(setup.MinKeycode) + i/perKeycode), nil
			}
		}
	}
	return 0, fmt.Errorf("x11: no keycode maps to keysym %#x", uint32(sym))
}

func (b *Backend) keysymForKeycode(code xproto.Keycode) (server.KeySym, error) {
	mapping, err := xproto.GetKeyboardMapping(b.xu.Conn(), code, 1).Reply()
	if err != nil {
		return 0, fmt.Errorf("x11: querying keyboard mapping: %w", err)
	}
	if len(mapping.Keysyms) == 0 {
		return 0, fmt.Errorf("x11: no keysym for keycode %d", code)
	}
	return server.KeySym(mapping.Keysyms[0]), nil
}

// AddKeybind grabs the given key/modifier combination on the root
// window, or the given mouse button/modifier combination if bind.Button
// is set, so the server starts delivering the corresponding press event
// for it.
func (b *Backend) AddKeybind(bind server.KeyOrMouseBind) error {
	if bind.Button != nil {
		return b.addButtonGrab(*bind.Button, bind.Modifiers)
	}

	code, err := b.keycodeForKeysym(bind.Key)
	if err != nil {
		return err
	}
	mask := modMask(bind.Modifiers)

	// Grab with every combination of the lock modifiers (NumLock, CapsLock)
	// the server might report set, so the binding fires regardless of
	// their state.
	for _, extra := range []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2} {
		cookie := xproto.GrabKeyChecked(
			b.xu.Conn(), true, b.root, mask|extra, code,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
		)
		if err := cookie.Check(); err != nil {
			return fmt.Errorf("x11: grabbing key %#x mod %#x: %w", uint32(bind.Key), mask, err)
		}
	}
	return nil
}

// buttonIndex translates our backend-agnostic server.Button to the X11
// button number GrabButton expects (Button1=left, Button2=middle,
// Button3=right).
func buttonIndex(btn server.Button) byte {
	switch btn {
	case server.ButtonMiddle:
		return 2
	case server.ButtonRight:
		return 3
	default:
		return 1
	}
}

// addButtonGrab grabs btn/mods on the root window with owner_events set,
// so presses on any descendant window are still reported to us, letting
// the core's move/resize protocol initiate from a click on a client
// window rather than just the root background.
func (b *Backend) addButtonGrab(btn server.Button, mods server.Modifier) error {
	button := buttonIndex(btn)
	mask := modMask(mods)
	eventMask := uint16(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)

	for _, extra := range []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2} {
		cookie := xproto.GrabButtonChecked(
			b.xu.Conn(), true, b.root, eventMask,
			xproto.GrabModeAsync, xproto.GrabModeAsync,
			0, 0, button, mask|extra,
		)
		if err := cookie.Check(); err != nil {
			return fmt.Errorf("x11: grabbing button %d mod %#x: %w", button, mask, err)
		}
	}
	return nil
}
