package wm

import (
	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/layout"
)

// focus switches the store's focused client to id and relays the
// transition to the backend: the previously focused client (if any) is
// unfocused, id is focused, and optionally raised.
func (m *Manager) focus(id client.WindowID, raise bool) {
	newEntry, oldEntry := m.store.Focus(id)
	if !newEntry.Present {
		return
	}
	if oldEntry.Present {
		if err := m.backend.UnfocusWindow(oldEntry.ID); err != nil {
			m.logger.Debug("unfocus_window failed", "window", oldEntry.ID, "error", err)
		}
	}
	if err := m.backend.FocusWindow(newEntry.ID); err != nil {
		m.logger.Warn("focus_window failed", "window", newEntry.ID, "error", err)
		return
	}
	if raise {
		_ = m.backend.RaiseWindow(newEntry.ID)
	}
	m.actionLog.LogAction("focus", "window", newEntry.ID)
}

// relayout runs one LayoutEngine pass over the current workspace, sends
// geometry calls only for clients whose computed placement changed,
// hides clients that are no longer visible, raises visible clients in
// stacking order (tiled, then floating/transient, then fullscreen
// last), and restores focus-follows-layout if nothing is focused
// anymore.
func (m *Manager) relayout() {
	ws := m.workspaces.Current()
	fullscreen := func(id client.WindowID) bool {
		c, ok := m.store.Get(id)
		return ok && c.Fullscreen
	}

	placements := layout.Layout(m.screenSize, m.cfg.Gap, m.border, m.masterFrac, ws, fullscreen)
	for _, p := range placements {
		c, ok := m.store.Get(p.ID)
		if !ok {
			continue
		}
		if c.Size == p.Size && c.Position == p.Position {
			continue
		}
		if p.Size.W < 1 || p.Size.H < 1 {
			m.logger.Debug("skipping degenerate geometry", "window", p.ID, "size", p.Size)
			continue
		}
		if err := m.backend.ConfigureWindow(p.ID, p.Size, p.Position, m.border); err != nil {
			m.logger.Warn("configure_window failed", "window", p.ID, "error", err)
			continue
		}
		c.Size = p.Size
		c.Position = p.Position
		m.store.Update(c)
	}

	for _, c := range m.store.Hidden() {
		if err := m.backend.HideWindow(c.ID); err != nil {
			m.logger.Debug("hide_window failed", "window", c.ID, "error", err)
		}
	}

	m.raiseVisible()

	if focused, ok := m.store.Focused(); ok && !m.store.IsVisible(focused) {
		if err := m.backend.UnfocusWindow(focused); err != nil {
			m.logger.Debug("unfocus_window failed", "window", focused, "error", err)
		}
		m.store.ClearFocus()
	}

	if _, ok := m.store.Focused(); !ok {
		if visible := m.store.Visible(); len(visible) > 0 {
			m.focus(visible[0].ID, false)
		}
	}
}

// raiseVisible restacks every visible client: tiled clients first,
// floating/transient above them, and fullscreen clients topmost.
func (m *Manager) raiseVisible() {
	var tiled, floating, fullscreen []client.Client
	for _, c := range m.store.Visible() {
		switch {
		case c.Fullscreen:
			fullscreen = append(fullscreen, c)
		case m.store.IsFloating(c.ID):
			floating = append(floating, c)
		default:
			tiled = append(tiled, c)
		}
	}
	for _, group := range [][]client.Client{tiled, floating, fullscreen} {
		for _, c := range group {
			_ = m.backend.RaiseWindow(c.ID)
		}
	}
}
