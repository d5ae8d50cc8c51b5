package hotkeys

import "github.com/partwm/partwm/internal/server"

// namedKeysyms maps the symbolic key names used in config.yaml's keybinds
// table to their X11 keysym values (X11/keysymdef.h). Letters and digits
// are Latin-1 and handled separately in ParseBinding.
var namedKeysyms = map[string]server.KeySym{
	"Return":     0xff0d,
	"Tab":        0xff09,
	"space":      0x0020,
	"equal":      0x003d,
	"minus":      0x002d,
	"Escape":     0xff1b,
	"Left":       0xff51,
	"Up":         0xff52,
	"Right":      0xff53,
	"Down":       0xff54,
	"F1":         0xffbe,
	"F2":         0xffbf,
	"F3":         0xffc0,
	"F4":         0xffc1,
	"F5":         0xffc2,
	"F6":         0xffc3,
	"F7":         0xffc4,
	"F8":         0xffc5,
	"F9":         0xffc6,
	"F10":        0xffc7,
	"F11":        0xffc8,
	"F12":        0xffc9,
}
