// Package server declares the WindowServer port: the capability set the
// window manager core requires from a display-server backend, and the
// event stream that backend delivers. Concrete backends live in
// internal/backend/*.
package server

import (
	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// Modifier is a bitmask of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModControl
	ModMod1
	ModSuper
)

// FullscreenAction describes what a fullscreen request asks for.
type FullscreenAction int

const (
	FullscreenOn FullscreenAction = iota
	FullscreenOff
	FullscreenToggle
)

// EventKind discriminates the WindowEvent sum type.
type EventKind int

const (
	EventMapRequest EventKind = iota
	EventUnmapNotify
	EventDestroyNotify
	EventEnterNotify
	EventConfigureRequest
	EventMotionNotify
	EventButtonPress
	EventButtonRelease
	EventFullscreen
	EventKeyPress
	EventUnknown
)

// KeySym is an X11 keysym value, passed through from the backend's own
// keycode→keysym translation.
type KeySym uint32

// WindowEvent carries the payload for one event delivered by NextEvent.
// Exactly the fields relevant to Kind are meaningful; the rest are zero.
type WindowEvent struct {
	Kind EventKind

	// Populated for MapRequest, UnmapNotify, DestroyNotify, EnterNotify,
	// ConfigureRequest, ButtonPress/Release, Fullscreen.
	Window client.WindowID

	// ConfigureRequest: the geometry the client itself asked for (the core
	// may clobber it with stored geometry instead).
	RequestedSize geometry.Size
	RequestedPos  geometry.Point

	// MotionNotify: absolute pointer position.
	Pointer geometry.Point

	// ButtonPress/Release.
	Button    Button
	Modifiers Modifier

	// Fullscreen.
	FullscreenAction FullscreenAction

	// KeyPress: the resolved keysym plus held modifiers, for matching
	// against the key-binding table.
	Key KeySym
}
