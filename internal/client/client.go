// Package client defines the per-window bookkeeping record tracked by
// the window manager's client store.
package client

import "github.com/partwm/partwm/internal/geometry"

// WindowID is a backend-opaque identifier for a top-level window. X11
// resource ids are 32-bit; the window manager never interprets the value
// itself, only compares it.
type WindowID uint32

// Kind classifies a window by its EWMH _NET_WM_WINDOW_TYPE, collapsed to
// the subset the layout engine and store care about.
type Kind int

const (
	// Normal windows are tileable.
	Normal Kind = iota
	Dialog
	Splash
	Utility
	Menu
	Toolbar
	Dock
	Desktop
)

// String returns a human-readable name, used in logs and the status UI.
func (k Kind) String() string {
	switch k {
	case Normal:
		return "normal"
	case Dialog:
		return "dialog"
	case Splash:
		return "splash"
	case Utility:
		return "utility"
	case Menu:
		return "menu"
	case Toolbar:
		return "toolbar"
	case Dock:
		return "dock"
	case Desktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Tileable reports whether a window of this kind may ever live in the
// tiled map. Only Normal windows qualify.
func (k Kind) Tileable() bool {
	return k == Normal
}

// Client is the bookkeeping record for one managed top-level window.
type Client struct {
	ID         WindowID
	Size       geometry.Size
	Position   geometry.Point
	Parent     *WindowID
	Kind       Kind
	Fullscreen bool
}

// New constructs a client with the given id and kind at the default
// position, clamping its size to fit within maxSize minus the border on
// every edge, and never below 1px.
func New(id WindowID, kind Kind, size geometry.Size, parent *WindowID, maxSize geometry.Size, border int) Client {
	bordered := geometry.Size{W: maxSize.W - 2*border, H: maxSize.H - 2*border}
	return Client{
		ID:       id,
		Kind:     kind,
		Parent:   parent,
		Position: geometry.Point{},
		Size:     size.Clamp(bordered).AtLeast(1),
	}
}

// CenterOn repositions the client over a parent client:
// position = parent.Position + (parent.Size - self.Size) / 2.
func (c *Client) CenterOn(parent Client) {
	c.Position = parent.Position.Add(parent.Size.Sub(c.Size).Div(2).ToPoint())
}
