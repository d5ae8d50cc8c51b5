// Package layout computes per-client geometry for a workspace's master
// and auxiliary stacks. The engine is a pure function: given the same
// screen, gap, border, master fraction and workspace contents it always
// produces the same placements.
package layout

import (
	"math"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/workspace"
)

// MinMasterFraction and MaxMasterFraction bound the master/aux split
// ratio: 1.0 means each side occupies half the screen.
const (
	MinMasterFraction = 0.2
	MaxMasterFraction = 1.8
)

// ClampMasterFraction restricts f to [MinMasterFraction, MaxMasterFraction].
func ClampMasterFraction(f float64) float64 {
	if f < MinMasterFraction {
		return MinMasterFraction
	}
	if f > MaxMasterFraction {
		return MaxMasterFraction
	}
	return f
}

// Placement is the computed geometry for one tiled client.
type Placement struct {
	ID       client.WindowID
	Size     geometry.Size
	Position geometry.Point
}

// IsFullscreen reports whether a client id is flagged fullscreen. The
// layout engine takes this as a callback instead of a *store.Store so it
// has no dependency on the store package and stays a pure function of
// its arguments.
type IsFullscreen func(client.WindowID) bool

// Layout computes placements for every client in ws.
func Layout(screen geometry.Size, gap, border int, masterFrac float64, ws *workspace.Workspace, fullscreen IsFullscreen) []Placement {
	masterFrac = ClampMasterFraction(masterFrac)

	vsW := screen.W - 2*gap
	var masterW int
	if len(ws.Aux) == 0 {
		masterW = vsW
	} else {
		masterW = int(math.Round(float64(vsW) * masterFrac / 2))
	}
	auxW := vsW - masterW

	placements := make([]Placement, 0, ws.Len())
	placements = append(placements, layoutStack(ws.Master, screen, gap, border, masterW, 0)...)
	placements = append(placements, layoutStack(ws.Aux, screen, gap, border, auxW, masterW)...)

	for i, p := range placements {
		if fullscreen != nil && fullscreen(p.ID) {
			placements[i] = Placement{ID: p.ID, Size: screen, Position: geometry.Point{}}
		}
	}
	return placements
}

// layoutStack places the n clients of a single stack in a vertical
// column of the given width, starting at horizontal offset xOff.
func layoutStack(ids []client.WindowID, screen geometry.Size, gap, border, width, xOff int) []Placement {
	n := len(ids)
	if n == 0 {
		return nil
	}

	usableH := screen.H - 2*gap
	rowH := usableH / n

	out := make([]Placement, 0, n)
	for i, id := range ids {
		h := rowH
		if i == n-1 {
			// The last client absorbs the remainder so the stack's total
			// height covers exactly usableH.
			h = usableH - rowH*(n-1)
		}
		out = append(out, Placement{
			ID: id,
			Size: geometry.Size{
				W: width - 2*gap - 2*border,
				H: h - 2*gap - 2*border,
			},
			Position: geometry.Point{
				X: 2*gap + xOff,
				Y: i*rowH + 2*gap,
			},
		})
	}
	return out
}
