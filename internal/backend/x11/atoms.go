package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// atoms caches every interned atom the backend needs, resolved once at
// connection setup so hot-path event handling never blocks on a round
// trip.
type atoms struct {
	wmProtocols       xproto.Atom
	wmDeleteWindow    xproto.Atom
	wmTakeFocus       xproto.Atom
	wmState           xproto.Atom
	netSupported      xproto.Atom
	netActiveWindow   xproto.Atom
	netClientList     xproto.Atom
	netWMName         xproto.Atom
	netWMState        xproto.Atom
	netWMStateFull    xproto.Atom
	netWMWindowType   xproto.Atom
	netWMWindowTypeD  xproto.Atom
	netWMWindowTypeU  xproto.Atom
	netWMWindowTypeM  xproto.Atom
	netWMWindowTypeTB xproto.Atom
	netWMWindowTypeDK xproto.Atom
	netWMWindowTypeDD xproto.Atom
	netWMWindowTypeS  xproto.Atom
}

func internAtoms(xu *xgbutil.XUtil) (*atoms, error) {
	names := []string{
		"WM_PROTOCOLS",
		"WM_DELETE_WINDOW",
		"WM_TAKE_FOCUS",
		"WM_STATE",
		"_NET_SUPPORTED",
		"_NET_ACTIVE_WINDOW",
		"_NET_CLIENT_LIST",
		"_NET_WM_NAME",
		"_NET_WM_STATE",
		"_NET_WM_STATE_FULLSCREEN",
		"_NET_WM_WINDOW_TYPE",
		"_NET_WM_WINDOW_TYPE_DIALOG",
		"_NET_WM_WINDOW_TYPE_UTILITY",
		"_NET_WM_WINDOW_TYPE_MENU",
		"_NET_WM_WINDOW_TYPE_TOOLBAR",
		"_NET_WM_WINDOW_TYPE_DOCK",
		"_NET_WM_WINDOW_TYPE_DESKTOP",
		"_NET_WM_WINDOW_TYPE_SPLASH",
	}

	resolved := make([]xproto.Atom, len(names))
	for i, name := range names {
		reply, err := xproto.InternAtom(xu.Conn(), false, uint16(len(name)), name).Reply()
		if err != nil {
			return nil, err
		}
		resolved[i] = reply.Atom
	}

	return &atoms{
		wmProtocols:       resolved[0],
		wmDeleteWindow:    resolved[1],
		wmTakeFocus:       resolved[2],
		wmState:           resolved[3],
		netSupported:      resolved[4],
		netActiveWindow:   resolved[5],
		netClientList:     resolved[6],
		netWMName:         resolved[7],
		netWMState:        resolved[8],
		netWMStateFull:    resolved[9],
		netWMWindowType:   resolved[10],
		netWMWindowTypeD:  resolved[11],
		netWMWindowTypeU:  resolved[12],
		netWMWindowTypeM:  resolved[13],
		netWMWindowTypeTB: resolved[14],
		netWMWindowTypeDK: resolved[15],
		netWMWindowTypeDD: resolved[16],
		netWMWindowTypeS:  resolved[17],
	}, nil
}
