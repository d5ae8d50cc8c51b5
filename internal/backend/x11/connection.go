// Package x11 implements the server.Backend port against a real X11
// display using xgb/xgbutil: connection setup, atom interning,
// substructure redirect, and keysym/keycode translation.
package x11

import (
	"context"
	"fmt"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/keybind"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/server"
)

// Backend is the X11 implementation of server.Backend. One Backend owns
// exactly one display connection and one root window.
type Backend struct {
	xu    *xgbutil.XUtil
	root  xproto.Window
	atoms *atoms

	mu            sync.Mutex
	activeColor   uint32
	inactiveColor uint32

	events chan server.WindowEvent
	errs   chan error
}

// New connects to the X server named by the DISPLAY environment variable,
// requests SubstructureRedirect on the root window (becoming the window
// manager), and starts the background event pump.
func New() (*Backend, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: connecting to display: %w", err)
	}
	keybind.Initialize(xu)

	atoms, err := internAtoms(xu)
	if err != nil {
		return nil, fmt.Errorf("x11: interning atoms: %w", err)
	}

	b := &Backend{
		xu:            xu,
		root:          xu.RootWin(),
		atoms:         atoms,
		activeColor:   0xffffff,
		inactiveColor: 0x888888,
		events:        make(chan server.WindowEvent, 64),
		errs:          make(chan error, 1),
	}

	if err := b.becomeWindowManager(); err != nil {
		xu.Conn().Close()
		return nil, err
	}
	if err := b.declareEWMHSupport(); err != nil {
		xu.Conn().Close()
		return nil, err
	}

	go b.pump()

	return b, nil
}

// becomeWindowManager requests SubstructureRedirect on the root window,
// plus the structure/enter/motion/button masks the core needs to drive
// focus-follows-mouse and the pointer-driven move/resize protocol. The
// X server grants SubstructureRedirect to exactly one client; failure
// here means another window manager already owns the display.
func (b *Backend) becomeWindowManager() error {
	mask := uint32(xproto.EventMaskSubstructureRedirect |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskSubstructureNotify |
		xproto.EventMaskEnterWindow |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress)
	cookie := xproto.ChangeWindowAttributesChecked(b.xu.Conn(), b.root, xproto.CwEventMask, []uint32{mask})
	if err := cookie.Check(); err != nil {
		return fmt.Errorf("x11: requesting substructure redirect (is another WM running?): %w", err)
	}
	return nil
}

func (b *Backend) declareEWMHSupport() error {
	supported := []xproto.Atom{
		b.atoms.netActiveWindow,
		b.atoms.netClientList,
		b.atoms.netWMName,
		b.atoms.netWMState,
		b.atoms.netWMStateFull,
		b.atoms.netWMWindowType,
	}
	buf := make([]byte, 4*len(supported))
	for i, a := range supported {
		put32(buf[i*4:], uint32(a))
	}
	return xproto.ChangePropertyChecked(
		b.xu.Conn(), xproto.PropModeReplace, b.root,
		b.atoms.netSupported, xproto.AtomAtom, 32,
		uint32(len(supported)), buf,
	).Check()
}

// ScreenSize returns the root window's dimensions.
func (b *Backend) ScreenSize() (geometry.Size, error) {
	geom, err := xproto.GetGeometry(b.xu.Conn(), xproto.Drawable(b.root)).Reply()
	if err != nil {
		return geometry.Size{}, fmt.Errorf("x11: querying root geometry: %w", err)
	}
	return geometry.Size{W: int(geom.Width), H: int(geom.Height)}, nil
}

// NextEvent blocks until an event is available or ctx is canceled.
func (b *Backend) NextEvent(ctx context.Context) (server.WindowEvent, error) {
	select {
	case ev := <-b.events:
		return ev, nil
	case err := <-b.errs:
		return server.WindowEvent{}, err
	case <-ctx.Done():
		return server.WindowEvent{}, ctx.Err()
	}
}

// Close disconnects from the X server.
func (b *Backend) Close() error {
	b.xu.Conn().Close()
	return nil
}

func windowID(w xproto.Window) client.WindowID { return client.WindowID(w) }
func xWindow(id client.WindowID) xproto.Window { return xproto.Window(id) }
