package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/server"
)

// pump runs on its own goroutine, translating raw xgb events into
// server.WindowEvent values and forwarding them to NextEvent's channel.
// This bypasses xgbutil's callback-based xevent.Main loop in favor of a
// pull-style API the WindowManager core can select over.
func (b *Backend) pump() {
	for {
		raw, xerr := b.xu.Conn().WaitForEvent()
		if xerr != nil {
			b.errs <- fmt.Errorf("x11: connection error: %v", xerr)
			return
		}
		if raw == nil {
			continue
		}

		event, ok := b.translate(raw)
		if !ok {
			continue
		}
		b.events <- event
	}
}

func (b *Backend) translate(raw interface{}) (server.WindowEvent, bool) {
	switch e := raw.(type) {
	case xproto.MapRequestEvent:
		return server.WindowEvent{Kind: server.EventMapRequest, Window: windowID(e.Window)}, true

	case xproto.UnmapNotifyEvent:
		return server.WindowEvent{Kind: server.EventUnmapNotify, Window: windowID(e.Window)}, true

	case xproto.DestroyNotifyEvent:
		return server.WindowEvent{Kind: server.EventDestroyNotify, Window: windowID(e.Window)}, true

	case xproto.EnterNotifyEvent:
		return server.WindowEvent{Kind: server.EventEnterNotify, Window: windowID(e.Event)}, true

	case xproto.ConfigureRequestEvent:
		return server.WindowEvent{
			Kind:          server.EventConfigureRequest,
			Window:        windowID(e.Window),
			RequestedSize: geometry.Size{W: int(e.Width), H: int(e.Height)},
			RequestedPos:  geometry.Point{X: int(e.X), Y: int(e.Y)},
		}, true

	case xproto.MotionNotifyEvent:
		return server.WindowEvent{
			Kind:    server.EventMotionNotify,
			Pointer: geometry.Point{X: int(e.RootX), Y: int(e.RootY)},
		}, true

	case xproto.ButtonPressEvent:
		return server.WindowEvent{
			Kind:      server.EventButtonPress,
			Window:    windowID(e.Child),
			Button:    xButton(e.Detail),
			Modifiers: fromXModMask(e.State),
			Pointer:   geometry.Point{X: int(e.RootX), Y: int(e.RootY)},
		}, true

	case xproto.ButtonReleaseEvent:
		return server.WindowEvent{
			Kind:      server.EventButtonRelease,
			Window:    windowID(e.Child),
			Button:    xButton(e.Detail),
			Modifiers: fromXModMask(e.State),
		}, true

	case xproto.KeyPressEvent:
		sym, err := b.keysymForKeycode(e.Detail)
		if err != nil {
			return server.WindowEvent{}, false
		}
		return server.WindowEvent{
			Kind:      server.EventKeyPress,
			Key:       sym,
			Modifiers: fromXModMask(e.State),
		}, true

	case xproto.ClientMessageEvent:
		if ev, ok := b.translateClientMessage(e); ok {
			return ev, true
		}
		return server.WindowEvent{}, false

	default:
		return server.WindowEvent{}, false
	}
}

// translateClientMessage handles the one ClientMessage the core cares
// about: _NET_WM_STATE requests to enter/exit/toggle fullscreen.
func (b *Backend) translateClientMessage(e xproto.ClientMessageEvent) (server.WindowEvent, bool) {
	if e.Type != b.atoms.netWMState {
		return server.WindowEvent{}, false
	}
	data := e.Data.Data32
	if len(data) < 2 {
		return server.WindowEvent{}, false
	}
	if xproto.Atom(data[1]) != b.atoms.netWMStateFull {
		return server.WindowEvent{}, false
	}

	var action server.FullscreenAction
	switch data[0] {
	case 0:
		action = server.FullscreenOff
	case 1:
		action = server.FullscreenOn
	default:
		action = server.FullscreenToggle
	}

	return server.WindowEvent{
		Kind:             server.EventFullscreen,
		Window:           windowID(e.Window),
		FullscreenAction: action,
	}, true
}

func xButton(detail xproto.Button) server.Button {
	switch detail {
	case 2:
		return server.ButtonMiddle
	case 3:
		return server.ButtonRight
	default:
		return server.ButtonLeft
	}
}

func fromXModMask(state uint16) server.Modifier {
	var m server.Modifier
	if state&xproto.ModMaskShift != 0 {
		m |= server.ModShift
	}
	if state&xproto.ModMaskControl != 0 {
		m |= server.ModControl
	}
	if state&xproto.ModMask1 != 0 {
		m |= server.ModMod1
	}
	if state&xproto.ModMask4 != 0 {
		m |= server.ModSuper
	}
	return m
}
