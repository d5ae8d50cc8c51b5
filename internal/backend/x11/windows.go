package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/server"
)

// AllWindows lists every top-level window already mapped on the server,
// used to adopt pre-existing windows at startup and by the reconciler.
func (b *Backend) AllWindows() ([]client.WindowID, error) {
	tree, err := xproto.QueryTree(b.xu.Conn(), b.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("x11: querying window tree: %w", err)
	}

	ids := make([]client.WindowID, 0, len(tree.Children))
	for _, w := range tree.Children {
		attrs, err := xproto.GetWindowAttributes(b.xu.Conn(), w).Reply()
		if err != nil || attrs.MapState != xproto.MapStateViewable {
			continue
		}
		ids = append(ids, windowID(w))
	}
	return ids, nil
}

// FocusWindow gives input focus to id and marks it _NET_ACTIVE_WINDOW.
func (b *Backend) FocusWindow(id client.WindowID) error {
	w := xWindow(id)
	if err := xproto.SetInputFocusChecked(b.xu.Conn(), xproto.InputFocusPointerRoot, w, xproto.TimeCurrentTime).Check(); err != nil {
		return fmt.Errorf("x11: focusing window %d: %w", id, err)
	}
	b.mu.Lock()
	activeColor := b.activeColor
	b.mu.Unlock()
	if err := b.setBorderPixel(w, activeColor); err != nil {
		return fmt.Errorf("x11: setting active border color on %d: %w", id, err)
	}
	buf := make([]byte, 4)
	put32(buf, uint32(w))
	return xproto.ChangePropertyChecked(
		b.xu.Conn(), xproto.PropModeReplace, b.root,
		b.atoms.netActiveWindow, xproto.AtomWindow, 32, 1, buf,
	).Check()
}

// UnfocusWindow reverts focus to the root window and repaints id's
// border in the inactive color.
func (b *Backend) UnfocusWindow(id client.WindowID) error {
	b.mu.Lock()
	inactiveColor := b.inactiveColor
	b.mu.Unlock()
	if err := b.setBorderPixel(xWindow(id), inactiveColor); err != nil {
		return fmt.Errorf("x11: setting inactive border color on %d: %w", id, err)
	}
	return xproto.SetInputFocusChecked(b.xu.Conn(), xproto.InputFocusPointerRoot, b.root, xproto.TimeCurrentTime).Check()
}

// RaiseWindow stacks id above its siblings.
func (b *Backend) RaiseWindow(id client.WindowID) error {
	values := []uint32{xproto.StackModeAbove}
	return xproto.ConfigureWindowChecked(b.xu.Conn(), xWindow(id), xproto.ConfigWindowStackMode, values).Check()
}

// HideWindow unmaps id. It does not move the window first; its position
// is left as it was.
func (b *Backend) HideWindow(id client.WindowID) error {
	return xproto.UnmapWindowChecked(b.xu.Conn(), xWindow(id)).Check()
}

// KillWindow asks id to close via WM_DELETE_WINDOW if it supports the
// protocol, falling back to a forced X kill.
func (b *Backend) KillWindow(id client.WindowID) error {
	w := xWindow(id)
	if b.supportsProtocol(w, b.atoms.wmDeleteWindow) {
		return b.sendClientMessage(w, b.atoms.wmProtocols, uint32(b.atoms.wmDeleteWindow))
	}
	return xproto.KillClientChecked(b.xu.Conn(), uint32(w)).Check()
}

func (b *Backend) supportsProtocol(w xproto.Window, proto xproto.Atom) bool {
	reply, err := xproto.GetProperty(b.xu.Conn(), false, w, b.atoms.wmProtocols, xproto.AtomAtom, 0, 64).Reply()
	if err != nil || reply.ValueLen == 0 {
		return false
	}
	for i := 0; i+4 <= len(reply.Value); i += 4 {
		if xproto.Atom(get32(reply.Value[i:])) == proto {
			return true
		}
	}
	return false
}

func (b *Backend) sendClientMessage(w xproto.Window, msgType xproto.Atom, data ...uint32) error {
	var data32 [5]uint32
	copy(data32[:], data)

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w,
		Type:   msgType,
		Data:   xproto.ClientMessageDataUnion{Data32: data32},
	}
	return xproto.SendEventChecked(b.xu.Conn(), false, w, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}

// ConfigureWindow repositions, resizes and sets the border width of id
// in a single request.
func (b *Backend) ConfigureWindow(id client.WindowID, size geometry.Size, pos geometry.Point, border int) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth |
		xproto.ConfigWindowHeight | xproto.ConfigWindowBorderWidth)
	values := []uint32{
		uint32(int32(pos.X)),
		uint32(int32(pos.Y)),
		uint32(size.W),
		uint32(size.H),
		uint32(border),
	}
	if err := xproto.ConfigureWindowChecked(b.xu.Conn(), xWindow(id), mask, values).Check(); err != nil {
		return fmt.Errorf("x11: configuring window %d: %w", id, err)
	}
	return nil
}

// MoveWindow repositions id without touching its size.
func (b *Backend) MoveWindow(id client.WindowID, pos geometry.Point) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	values := []uint32{uint32(int32(pos.X)), uint32(int32(pos.Y))}
	return xproto.ConfigureWindowChecked(b.xu.Conn(), xWindow(id), mask, values).Check()
}

// ResizeWindow resizes id without touching its position.
func (b *Backend) ResizeWindow(id client.WindowID, size geometry.Size) error {
	mask := uint16(xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{uint32(size.W), uint32(size.H)}
	return xproto.ConfigureWindowChecked(b.xu.Conn(), xWindow(id), mask, values).Check()
}

// GetParentWindow reports id's WM_TRANSIENT_FOR target, if any.
func (b *Backend) GetParentWindow(id client.WindowID) (client.WindowID, bool, error) {
	reply, err := xproto.GetProperty(b.xu.Conn(), false, xWindow(id), xproto.AtomWmTransientFor, xproto.AtomWindow, 0, 1).Reply()
	if err != nil {
		return 0, false, fmt.Errorf("x11: querying transient-for of %d: %w", id, err)
	}
	if reply.ValueLen == 0 || len(reply.Value) < 4 {
		return 0, false, nil
	}
	return windowID(xproto.Window(get32(reply.Value))), true, nil
}

// GetWindowType classifies id by its EWMH _NET_WM_WINDOW_TYPE.
func (b *Backend) GetWindowType(id client.WindowID) (client.Kind, error) {
	reply, err := xproto.GetProperty(b.xu.Conn(), false, xWindow(id), b.atoms.netWMWindowType, xproto.AtomAtom, 0, 16).Reply()
	if err != nil {
		return client.Normal, fmt.Errorf("x11: querying window type of %d: %w", id, err)
	}
	for i := 0; i+4 <= len(reply.Value); i += 4 {
		a := xproto.Atom(get32(reply.Value[i:]))
		switch a {
		case b.atoms.netWMWindowTypeD:
			return client.Dialog, nil
		case b.atoms.netWMWindowTypeS:
			return client.Splash, nil
		case b.atoms.netWMWindowTypeU:
			return client.Utility, nil
		case b.atoms.netWMWindowTypeM:
			return client.Menu, nil
		case b.atoms.netWMWindowTypeTB:
			return client.Toolbar, nil
		case b.atoms.netWMWindowTypeDK:
			return client.Dock, nil
		case b.atoms.netWMWindowTypeDD:
			return client.Desktop, nil
		}
	}
	return client.Normal, nil
}

// GetWindowSize reports id's current geometry.
func (b *Backend) GetWindowSize(id client.WindowID) (geometry.Size, error) {
	geom, err := xproto.GetGeometry(b.xu.Conn(), xproto.Drawable(xWindow(id))).Reply()
	if err != nil {
		return geometry.Size{}, fmt.Errorf("x11: querying geometry of %d: %w", id, err)
	}
	return geometry.Size{W: int(geom.Width), H: int(geom.Height)}, nil
}

// HandleEvent performs ICCCM bookkeeping the core has no opinion on: it
// keeps _NET_CLIENT_LIST in sync with map/unmap/destroy notifications.
func (b *Backend) HandleEvent(event server.WindowEvent) error {
	switch event.Kind {
	case server.EventMapRequest:
		return b.appendClientList(xWindow(event.Window))
	case server.EventUnmapNotify, server.EventDestroyNotify:
		return b.removeClientList(xWindow(event.Window))
	default:
		return nil
	}
}

func (b *Backend) appendClientList(w xproto.Window) error {
	ids, err := b.AllWindows()
	if err != nil {
		return err
	}
	return b.writeClientList(append(ids, windowID(w)))
}

func (b *Backend) removeClientList(w xproto.Window) error {
	ids, err := b.AllWindows()
	if err != nil {
		return err
	}
	filtered := ids[:0]
	for _, id := range ids {
		if id != windowID(w) {
			filtered = append(filtered, id)
		}
	}
	return b.writeClientList(filtered)
}

func (b *Backend) writeClientList(ids []client.WindowID) error {
	buf := make([]byte, 4*len(ids))
	for i, id := range ids {
		put32(buf[i*4:], uint32(id))
	}
	return xproto.ChangePropertyChecked(
		b.xu.Conn(), xproto.PropModeReplace, b.root,
		b.atoms.netClientList, xproto.AtomWindow, 32, uint32(len(ids)), buf,
	).Check()
}
