package x11

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
)

// parseHexColor converts a "#rrggbb" string to a 24-bit X11 pixel value.
// config.Validate already guarantees the format; this only re-derives
// the pixel value from it.
func parseHexColor(hex string) (uint32, error) {
	hex = strings.TrimPrefix(hex, "#")
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("x11: parsing color %q: %w", hex, err)
	}
	return uint32(v), nil
}

// SetActiveBorderColor sets the pixel value applied to a client's border
// when it becomes focused.
func (b *Backend) SetActiveBorderColor(hex string) error {
	pixel, err := parseHexColor(hex)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.activeColor = pixel
	b.mu.Unlock()
	return nil
}

// SetInactiveBorderColor sets the pixel value applied to every other
// client's border.
func (b *Backend) SetInactiveBorderColor(hex string) error {
	pixel, err := parseHexColor(hex)
	if err != nil {
		return err
	}
	b.mu.Lock()
	b.inactiveColor = pixel
	b.mu.Unlock()
	return nil
}

func (b *Backend) setBorderPixel(w xproto.Window, pixel uint32) error {
	return xproto.ChangeWindowAttributesChecked(b.xu.Conn(), w, xproto.CwBorderPixel, []uint32{pixel}).Check()
}
