package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
)

// GrabCursor grabs the pointer on the root window for move/resize drags.
func (b *Backend) GrabCursor() error {
	mask := uint16(xproto.EventMaskButtonPress | xproto.EventMaskButtonRelease | xproto.EventMaskPointerMotion)
	reply, err := xproto.GrabPointer(
		b.xu.Conn(), false, b.root, mask,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		b.root, xproto.CursorNone, xproto.TimeCurrentTime,
	).Reply()
	if err != nil {
		return fmt.Errorf("x11: grabbing pointer: %w", err)
	}
	if reply.Status != xproto.GrabStatusSuccess {
		return fmt.Errorf("x11: pointer grab refused: status %d", reply.Status)
	}
	return nil
}

// UngrabCursor releases a pointer grab taken by GrabCursor.
func (b *Backend) UngrabCursor() error {
	return xproto.UngrabPointerChecked(b.xu.Conn(), xproto.TimeCurrentTime).Check()
}

// MoveCursor warps the pointer to an absolute position on the root
// window, used at the start of a resize to put the cursor on the
// window's bottom-right corner. id is not used.
func (b *Backend) MoveCursor(id client.WindowID, point geometry.Point) error {
	return xproto.WarpPointerChecked(
		b.xu.Conn(), xproto.WindowNone, b.root,
		0, 0, 0, 0, int16(point.X), int16(point.Y),
	).Check()
}
