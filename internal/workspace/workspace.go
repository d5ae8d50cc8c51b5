// Package workspace implements a single workspace's master/auxiliary
// client stacks and the fixed-size set of workspaces a window manager
// rotates between.
package workspace

import "github.com/partwm/partwm/internal/client"

// Workspace holds two insertion-ordered stacks of tiled window ids: a
// master stack and an auxiliary stack.
type Workspace struct {
	Master []client.WindowID
	Aux    []client.WindowID
}

// Contains reports whether id is in either stack.
func (w *Workspace) Contains(id client.WindowID) bool {
	return w.IsMaster(id) || w.IsAux(id)
}

// IsMaster reports whether id is in the master stack.
func (w *Workspace) IsMaster(id client.WindowID) bool {
	return indexOf(w.Master, id) >= 0
}

// IsAux reports whether id is in the aux stack.
func (w *Workspace) IsAux(id client.WindowID) bool {
	return indexOf(w.Aux, id) >= 0
}

// Insert appends id to the aux stack and then restores the refresh
// law: a nonempty aux with an empty master always promotes the first
// aux element to master.
func (w *Workspace) Insert(id client.WindowID) {
	w.Aux = append(w.Aux, id)
	w.refresh()
}

// Remove deletes id from whichever stack holds it, then restores the
// refresh law. A no-op if id is present in neither stack.
func (w *Workspace) Remove(id client.WindowID) {
	if i := indexOf(w.Master, id); i >= 0 {
		w.Master = removeAt(w.Master, i)
	} else if i := indexOf(w.Aux, id); i >= 0 {
		w.Aux = removeAt(w.Aux, i)
	}
	w.refresh()
}

// SwitchStack moves id from whichever stack holds it to the other,
// appending it at the destination's end. A no-op if id is in neither.
func (w *Workspace) SwitchStack(id client.WindowID) {
	if i := indexOf(w.Master, id); i >= 0 {
		w.Master = removeAt(w.Master, i)
		w.Aux = append(w.Aux, id)
	} else if i := indexOf(w.Aux, id); i >= 0 {
		w.Aux = removeAt(w.Aux, i)
		w.Master = append(w.Master, id)
	}
	w.refresh()
}

// refresh enforces the invariant that master never sits empty while
// aux holds clients.
func (w *Workspace) refresh() {
	if len(w.Master) == 0 && len(w.Aux) > 0 {
		w.Master = append(w.Master, w.Aux[0])
		w.Aux = append([]client.WindowID{}, w.Aux[1:]...)
	}
}

// Len returns the total number of tiled windows on the workspace.
func (w *Workspace) Len() int {
	return len(w.Master) + len(w.Aux)
}

func indexOf(ids []client.WindowID, id client.WindowID) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

func removeAt(ids []client.WindowID, i int) []client.WindowID {
	out := make([]client.WindowID, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	out = append(out, ids[i+1:]...)
	return out
}
