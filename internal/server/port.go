package server

import (
	"context"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
)

// KeyOrMouseBind describes a single hotkey or mouse-button grab to
// register with the backend, independent of how that backend resolves
// key names to keycodes.
type KeyOrMouseBind struct {
	Key       KeySym
	Button    *Button
	Modifiers Modifier
}

// Backend is the WindowServer port: everything the window manager core
// requires from a display-server backend. Concrete
// implementations (internal/backend/x11) own the wire protocol, atom
// interning, and keycode/keysym translation entirely behind this
// interface.
type Backend interface {
	// NextEvent blocks until the backend has an event to deliver, or ctx
	// is canceled.
	NextEvent(ctx context.Context) (WindowEvent, error)

	// AllWindows lists every top-level window already mapped on the
	// server, used to adopt pre-existing windows at startup.
	AllWindows() ([]client.WindowID, error)

	FocusWindow(id client.WindowID) error
	UnfocusWindow(id client.WindowID) error
	RaiseWindow(id client.WindowID) error
	HideWindow(id client.WindowID) error
	KillWindow(id client.WindowID) error

	ConfigureWindow(id client.WindowID, size geometry.Size, pos geometry.Point, border int) error
	MoveWindow(id client.WindowID, pos geometry.Point) error
	ResizeWindow(id client.WindowID, size geometry.Size) error

	GetParentWindow(id client.WindowID) (client.WindowID, bool, error)
	GetWindowType(id client.WindowID) (client.Kind, error)
	GetWindowSize(id client.WindowID) (geometry.Size, error)

	ScreenSize() (geometry.Size, error)

	GrabCursor() error
	UngrabCursor() error
	MoveCursor(id client.WindowID, point geometry.Point) error

	SetActiveBorderColor(hex string) error
	SetInactiveBorderColor(hex string) error

	// HandleEvent lets the backend perform its own housekeeping for
	// events the core does not otherwise consume (e.g. ICCCM bookkeeping
	// the core has no opinion on).
	HandleEvent(event WindowEvent) error

	AddKeybind(bind KeyOrMouseBind) error

	// Spawn execs argv[0] with argv[1:] as arguments, detached from the
	// window manager's own process group.
	Spawn(argv []string) error

	Close() error
}
