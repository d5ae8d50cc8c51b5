package wm

import (
	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/server"
)

type moveResizeMode int

const (
	moveResizeNone moveResizeMode = iota
	moveResizeMove
	moveResizeResize
)

// moveResizeState tracks the in-progress pointer-driven move or resize
// interaction. Only one interaction is ever active at a time, owned by
// the single-threaded event loop.
type moveResizeState struct {
	mode    moveResizeMode
	id      client.WindowID
	cursor0 geometry.Point
	pos0    geometry.Point
	size0   geometry.Size
}

func (m *Manager) handleButtonPress(event server.WindowEvent) {
	m.focus(event.Window, true)

	if event.Button == server.ButtonMiddle {
		m.store.ToggleFloating(event.Window)
		m.actionLog.LogAction("toggle_floating", "window", event.Window)
		m.relayout()
		return
	}

	if m.moveResize.mode != moveResizeNone {
		return
	}
	if event.Modifiers != m.cfg.ModKey {
		return
	}
	c, ok := m.store.Get(event.Window)
	if !ok || c.Fullscreen {
		return
	}

	switch event.Button {
	case server.ButtonLeft:
		m.beginMove(c, event.Pointer)
	case server.ButtonRight:
		m.beginResize(c, event.Pointer)
	}
}

// beginMove promotes a tiled target to floating, triggering a
// re-layout, before tracking the interaction.
func (m *Manager) beginMove(c client.Client, cursor geometry.Point) {
	if m.store.IsTiled(c.ID) {
		m.store.ToggleFloating(c.ID)
		m.relayout()
		c, _ = m.store.Get(c.ID)
	}
	m.moveResize = moveResizeState{
		mode:    moveResizeMove,
		id:      c.ID,
		cursor0: cursor,
		pos0:    c.Position,
	}
}

// beginResize promotes a tiled target to floating, warps the cursor to
// the window's bottom-right corner, and grabs it for the duration of
// the interaction.
func (m *Manager) beginResize(c client.Client, cursor geometry.Point) {
	if m.store.IsTiled(c.ID) {
		m.store.ToggleFloating(c.ID)
		m.relayout()
		c, _ = m.store.Get(c.ID)
	}

	corner := c.Position.Add(c.Size.ToPoint())
	if err := m.backend.MoveCursor(c.ID, corner); err != nil {
		m.logger.Debug("move_cursor failed", "window", c.ID, "error", err)
	}
	if err := m.backend.GrabCursor(); err != nil {
		m.logger.Debug("grab_cursor failed", "window", c.ID, "error", err)
	}

	m.moveResize = moveResizeState{
		mode:    moveResizeResize,
		id:      c.ID,
		cursor0: corner,
		size0:   c.Size,
	}
}

func (m *Manager) handleMotion(event server.WindowEvent) {
	switch m.moveResize.mode {
	case moveResizeMove:
		m.applyMove(event.Pointer)
	case moveResizeResize:
		m.applyResize(event.Pointer)
	}
}

func (m *Manager) applyMove(cursor geometry.Point) {
	c, ok := m.store.Get(m.moveResize.id)
	if !ok {
		m.moveResize = moveResizeState{mode: moveResizeNone}
		return
	}
	delta := cursor.Sub(m.moveResize.cursor0)
	c.Position = m.moveResize.pos0.Add(delta)
	m.store.Update(c)
	if err := m.backend.MoveWindow(c.ID, c.Position); err != nil {
		m.logger.Debug("move_window failed", "window", c.ID, "error", err)
	}
}

func (m *Manager) applyResize(cursor geometry.Point) {
	c, ok := m.store.Get(m.moveResize.id)
	if !ok {
		m.moveResize = moveResizeState{mode: moveResizeNone}
		return
	}
	delta := cursor.Sub(m.moveResize.cursor0)
	c.Size = m.moveResize.size0.Add(delta.ToSize()).AtLeast(1)
	m.store.Update(c)
	if err := m.backend.ResizeWindow(c.ID, c.Size); err != nil {
		m.logger.Debug("resize_window failed", "window", c.ID, "error", err)
	}
}

func (m *Manager) handleButtonRelease(server.WindowEvent) {
	if m.moveResize.mode == moveResizeResize {
		if err := m.backend.UngrabCursor(); err != nil {
			m.logger.Debug("ungrab_cursor failed", "error", err)
		}
	}
	m.moveResize = moveResizeState{mode: moveResizeNone}
}
