// Package store implements the client store: the two insertion-ordered
// maps of tiled and floating clients, the focus pointer, and the
// visibility/iteration queries the layout engine and window manager
// build on.
package store

import (
	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/workspace"
)

// Entry describes the result of a focus transition: present
// distinguishes a real window id from the vacant (no-op) case.
type Entry struct {
	Present bool
	ID      client.WindowID
}

// Store holds every managed client, split across the tiled and floating
// maps, whose key sets never intersect, plus the currently focused
// window, if any.
type Store struct {
	tiledOrder    []client.WindowID
	tiled         map[client.WindowID]client.Client
	floatingOrder []client.WindowID
	floating      map[client.WindowID]client.Client
	focused       *client.WindowID

	workspaces *workspace.Set
}

// New builds an empty store bound to the given workspace set. Tiled
// inserts and removals keep that set's current workspace in sync.
func New(ws *workspace.Set) *Store {
	return &Store{
		tiled:      make(map[client.WindowID]client.Client),
		floating:   make(map[client.WindowID]client.Client),
		workspaces: ws,
	}
}

// Get returns the client record for id, searching both maps.
func (s *Store) Get(id client.WindowID) (client.Client, bool) {
	if c, ok := s.tiled[id]; ok {
		return c, true
	}
	if c, ok := s.floating[id]; ok {
		return c, true
	}
	return client.Client{}, false
}

// Contains reports whether id is known to the store, tiled or floating.
func (s *Store) Contains(id client.WindowID) bool {
	_, ok := s.Get(id)
	return ok
}

// IsTiled reports whether id lives in the tiled map.
func (s *Store) IsTiled(id client.WindowID) bool {
	_, ok := s.tiled[id]
	return ok
}

// IsFloating reports whether id lives in the floating map.
func (s *Store) IsFloating(id client.WindowID) bool {
	_, ok := s.floating[id]
	return ok
}

// Insert adds a new client to the store. Normal-kind clients go to
// tiled and are appended to the current workspace; everything else
// goes to floating, centered over its parent when one is known.
func (s *Store) Insert(c client.Client) {
	if c.Kind.Tileable() {
		s.tiled[c.ID] = c
		s.tiledOrder = append(s.tiledOrder, c.ID)
		s.workspaces.Current().Insert(c.ID)
		return
	}

	if c.Parent != nil {
		if parent, ok := s.Get(*c.Parent); ok {
			c.CenterOn(parent)
		}
	}
	s.floating[c.ID] = c
	s.floatingOrder = append(s.floatingOrder, c.ID)
}

// Remove deletes id from whichever map holds it, from every workspace,
// and from the focus pointer if it was focused.
func (s *Store) Remove(id client.WindowID) {
	if _, ok := s.tiled[id]; ok {
		delete(s.tiled, id)
		s.tiledOrder = removeID(s.tiledOrder, id)
	} else if _, ok := s.floating[id]; ok {
		delete(s.floating, id)
		s.floatingOrder = removeID(s.floatingOrder, id)
	}

	for i := 0; i < s.workspaces.Len(); i++ {
		s.workspaces.At(i).Remove(id)
	}

	if s.focused != nil && *s.focused == id {
		s.focused = nil
	}
}

// ToggleFloating moves id between the tiled and floating maps.
// Fullscreen clients and non-Normal floating clients are unaffected
// (no-op).
func (s *Store) ToggleFloating(id client.WindowID) {
	c, ok := s.Get(id)
	if !ok || c.Fullscreen {
		return
	}

	if s.IsTiled(id) {
		delete(s.tiled, id)
		s.tiledOrder = removeID(s.tiledOrder, id)
		s.floating[id] = c
		s.floatingOrder = append(s.floatingOrder, id)
		for i := 0; i < s.workspaces.Len(); i++ {
			s.workspaces.At(i).Remove(id)
		}
		return
	}

	if c.Kind == client.Normal {
		delete(s.floating, id)
		s.floatingOrder = removeID(s.floatingOrder, id)
		s.tiled[id] = c
		s.tiledOrder = append(s.tiledOrder, id)
		s.workspaces.Current().Insert(id)
	}
}

// SetFullscreen updates id's fullscreen flag and reports whether it
// actually changed. Setting it true pins the client's geometry to cover
// the full screen; setting it false leaves geometry for the next
// layout pass to recompute.
func (s *Store) SetFullscreen(id client.WindowID, on bool, screen geometry.Size) bool {
	c, ok := s.Get(id)
	if !ok || c.Fullscreen == on {
		return false
	}

	c.Fullscreen = on
	if on {
		c.Size = screen
		c.Position = geometry.Point{}
	}
	s.put(c)
	return true
}

// put writes back a client record to whichever map currently holds it.
func (s *Store) put(c client.Client) {
	if _, ok := s.tiled[c.ID]; ok {
		s.tiled[c.ID] = c
		return
	}
	if _, ok := s.floating[c.ID]; ok {
		s.floating[c.ID] = c
	}
}

// Update writes a client record back unconditionally; used by the
// window manager after a move/resize or layout pass.
func (s *Store) Update(c client.Client) {
	s.put(c)
}

// Focused returns the currently focused window id, if any.
func (s *Store) Focused() (client.WindowID, bool) {
	if s.focused == nil {
		return 0, false
	}
	return *s.focused, true
}

// Focus sets the focused client to id, returning the new and old focus
// entries. Focusing the already-focused client, or an unknown id, is
// idempotent and returns two vacant entries.
func (s *Store) Focus(id client.WindowID) (newEntry, oldEntry Entry) {
	if s.focused != nil && *s.focused == id {
		return Entry{}, Entry{}
	}
	if !s.Contains(id) {
		return Entry{}, Entry{}
	}

	if s.focused != nil {
		oldEntry = Entry{Present: true, ID: *s.focused}
	}
	idCopy := id
	s.focused = &idCopy
	return Entry{Present: true, ID: id}, oldEntry
}

// ClearFocus unconditionally unsets the focus pointer.
func (s *Store) ClearFocus() {
	s.focused = nil
}

// IsVisible reports whether id is visible: a tiled client when it is on
// the current workspace, a floating client with a parent when that
// parent is visible, and any other floating client always.
func (s *Store) IsVisible(id client.WindowID) bool {
	c, ok := s.Get(id)
	if !ok {
		return false
	}
	if s.IsTiled(id) {
		return s.workspaces.Current().Contains(id)
	}
	if c.Parent != nil {
		return s.IsVisible(*c.Parent)
	}
	return true
}

// All returns every managed client, tiled first then floating, in
// insertion order.
func (s *Store) All() []client.Client {
	out := make([]client.Client, 0, len(s.tiledOrder)+len(s.floatingOrder))
	for _, id := range s.tiledOrder {
		out = append(out, s.tiled[id])
	}
	for _, id := range s.floatingOrder {
		out = append(out, s.floating[id])
	}
	return out
}

// Visible returns every client for which IsVisible holds.
func (s *Store) Visible() []client.Client {
	return filter(s.All(), func(c client.Client) bool { return s.IsVisible(c.ID) })
}

// Hidden returns every client for which IsVisible does not hold.
func (s *Store) Hidden() []client.Client {
	return filter(s.All(), func(c client.Client) bool { return !s.IsVisible(c.ID) })
}

// Floating returns every floating client, in insertion order.
func (s *Store) Floating() []client.Client {
	out := make([]client.Client, 0, len(s.floatingOrder))
	for _, id := range s.floatingOrder {
		out = append(out, s.floating[id])
	}
	return out
}

// FloatingVisible returns floating clients for which IsVisible holds.
func (s *Store) FloatingVisible() []client.Client {
	return filter(s.Floating(), func(c client.Client) bool { return s.IsVisible(c.ID) })
}

// Transient returns floating clients that have a known parent.
func (s *Store) Transient() []client.Client {
	return filter(s.Floating(), func(c client.Client) bool { return c.Parent != nil })
}

// CurrentScreenTiled returns tiled clients on the current workspace, in
// master-then-aux order.
func (s *Store) CurrentScreenTiled() []client.Client {
	ws := s.workspaces.Current()
	out := make([]client.Client, 0, ws.Len())
	for _, id := range ws.Master {
		out = append(out, s.tiled[id])
	}
	for _, id := range ws.Aux {
		out = append(out, s.tiled[id])
	}
	return out
}

// MasterStack returns the current workspace's master-stack clients.
func (s *Store) MasterStack() []client.Client {
	out := make([]client.Client, 0, len(s.workspaces.Current().Master))
	for _, id := range s.workspaces.Current().Master {
		out = append(out, s.tiled[id])
	}
	return out
}

// AuxStack returns the current workspace's aux-stack clients.
func (s *Store) AuxStack() []client.Client {
	out := make([]client.Client, 0, len(s.workspaces.Current().Aux))
	for _, id := range s.workspaces.Current().Aux {
		out = append(out, s.tiled[id])
	}
	return out
}

// ByKind returns every client (tiled or floating) of the given kind.
func (s *Store) ByKind(k client.Kind) []client.Client {
	return filter(s.All(), func(c client.Client) bool { return c.Kind == k })
}

func filter(in []client.Client, keep func(client.Client) bool) []client.Client {
	out := make([]client.Client, 0, len(in))
	for _, c := range in {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func removeID(ids []client.WindowID, id client.WindowID) []client.WindowID {
	out := make([]client.WindowID, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
