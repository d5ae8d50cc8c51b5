package layout

import (
	"testing"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/workspace"
)

func noFullscreen(client.WindowID) bool { return false }

func placementFor(t *testing.T, placements []Placement, id client.WindowID) Placement {
	t.Helper()
	for _, p := range placements {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("no placement for id %d in %+v", id, placements)
	return Placement{}
}

func TestSingleMasterFillsScreen(t *testing.T) {
	ws := &workspace.Workspace{Master: []client.WindowID{1}}
	screen := geometry.Size{W: 1000, H: 1000}

	placements := Layout(screen, 0, 0, 1.0, ws, noFullscreen)

	p := placementFor(t, placements, 1)
	if p.Size != screen || p.Position != (geometry.Point{}) {
		t.Errorf("placement = %+v, want size %+v at origin", p, screen)
	}
}

func TestMasterAuxSplitHalvesScreen(t *testing.T) {
	ws := &workspace.Workspace{Master: []client.WindowID{1}, Aux: []client.WindowID{2}}
	screen := geometry.Size{W: 1000, H: 1000}

	placements := Layout(screen, 0, 0, 1.0, ws, noFullscreen)

	m := placementFor(t, placements, 1)
	a := placementFor(t, placements, 2)

	if want := (geometry.Size{W: 500, H: 1000}); m.Size != want {
		t.Errorf("master size = %+v, want %+v", m.Size, want)
	}
	if want := (geometry.Point{X: 0, Y: 0}); m.Position != want {
		t.Errorf("master position = %+v, want %+v", m.Position, want)
	}
	if want := (geometry.Size{W: 500, H: 1000}); a.Size != want {
		t.Errorf("aux size = %+v, want %+v", a.Size, want)
	}
	if want := (geometry.Point{X: 500, Y: 0}); a.Position != want {
		t.Errorf("aux position = %+v, want %+v", a.Position, want)
	}
}

func TestAuxStackSplitsColumnVertically(t *testing.T) {
	ws := &workspace.Workspace{Master: []client.WindowID{1}, Aux: []client.WindowID{2, 3}}
	screen := geometry.Size{W: 1000, H: 1000}

	placements := Layout(screen, 0, 0, 1.0, ws, noFullscreen)

	top := placementFor(t, placements, 2)
	bottom := placementFor(t, placements, 3)

	if want := (geometry.Point{X: 500, Y: 0}); top.Position != want {
		t.Errorf("top aux position = %+v, want %+v", top.Position, want)
	}
	if want := (geometry.Size{W: 500, H: 500}); top.Size != want {
		t.Errorf("top aux size = %+v, want %+v", top.Size, want)
	}
	if want := (geometry.Point{X: 500, Y: 500}); bottom.Position != want {
		t.Errorf("bottom aux position = %+v, want %+v", bottom.Position, want)
	}
	if want := (geometry.Size{W: 500, H: 500}); bottom.Size != want {
		t.Errorf("bottom aux size = %+v, want %+v", bottom.Size, want)
	}
}

func TestEmptyWorkspaceProducesNoPlacements(t *testing.T) {
	ws := &workspace.Workspace{}
	placements := Layout(geometry.Size{W: 1000, H: 1000}, 0, 0, 1.0, ws, noFullscreen)
	if len(placements) != 0 {
		t.Errorf("Layout on empty workspace = %+v, want none", placements)
	}
}

func TestFullscreenOverridesStackGeometry(t *testing.T) {
	ws := &workspace.Workspace{Master: []client.WindowID{1}, Aux: []client.WindowID{2}}
	screen := geometry.Size{W: 1000, H: 1000}

	placements := Layout(screen, 0, 0, 1.0, ws, func(id client.WindowID) bool { return id == 2 })

	p := placementFor(t, placements, 2)
	if p.Size != screen || p.Position != (geometry.Point{}) {
		t.Errorf("fullscreen placement = %+v, want full screen at origin", p)
	}
}

func TestClampMasterFraction(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0.0, MinMasterFraction},
		{0.2, 0.2},
		{1.0, 1.0},
		{5.0, MaxMasterFraction},
	}
	for _, c := range cases {
		if got := ClampMasterFraction(c.in); got != c.want {
			t.Errorf("ClampMasterFraction(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestDegenerateGeometryIsNotClamped(t *testing.T) {
	ws := &workspace.Workspace{Master: []client.WindowID{1}, Aux: []client.WindowID{2, 3, 4, 5, 6}}
	screen := geometry.Size{W: 20, H: 20}

	placements := Layout(screen, 4, 4, 1.0, ws, noFullscreen)

	p := placementFor(t, placements, 3)
	if p.Size.W >= 1 && p.Size.H >= 1 {
		t.Fatalf("placement = %+v, want a degenerate (<1px) dimension given the configured gap/border", p)
	}
}

func TestNonOverlappingPlacements(t *testing.T) {
	ws := &workspace.Workspace{Master: []client.WindowID{1, 2}, Aux: []client.WindowID{3, 4, 5}}
	screen := geometry.Size{W: 1200, H: 900}

	placements := Layout(screen, 4, 2, 1.0, ws, noFullscreen)

	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			if overlaps(placements[i], placements[j]) {
				t.Errorf("placements %+v and %+v overlap", placements[i], placements[j])
			}
		}
	}
}

func overlaps(a, b Placement) bool {
	ax2, ay2 := a.Position.X+a.Size.W, a.Position.Y+a.Size.H
	bx2, by2 := b.Position.X+b.Size.W, b.Position.Y+b.Size.H
	return a.Position.X < bx2 && ax2 > b.Position.X && a.Position.Y < by2 && ay2 > b.Position.Y
}
