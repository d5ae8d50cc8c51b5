package store

import (
	"testing"

	"github.com/partwm/partwm/internal/client"
	"github.com/partwm/partwm/internal/geometry"
	"github.com/partwm/partwm/internal/workspace"
)

func newTestStore(t *testing.T, n int) (*Store, *workspace.Set) {
	t.Helper()
	ws, err := workspace.NewSet(n)
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return New(ws), ws
}

func normal(id client.WindowID) client.Client {
	return client.Client{ID: id, Kind: client.Normal, Size: geometry.Size{W: 100, H: 100}}
}

func TestInsertNormalGoesTiledAndOntoWorkspace(t *testing.T) {
	s, ws := newTestStore(t, 2)
	s.Insert(normal(1))

	if !s.IsTiled(1) {
		t.Fatal("expected client 1 to be tiled")
	}
	if !ws.Current().Contains(1) {
		t.Fatal("expected client 1 to be on the current workspace")
	}
}

func TestInsertDialogGoesFloatingCenteredOnParent(t *testing.T) {
	s, _ := newTestStore(t, 1)
	parentID := client.WindowID(1)
	s.Insert(client.Client{ID: parentID, Kind: client.Normal, Position: geometry.Point{X: 100, Y: 100}, Size: geometry.Size{W: 200, H: 200}})

	dialog := client.Client{ID: 2, Kind: client.Dialog, Parent: &parentID, Size: geometry.Size{W: 50, H: 50}}
	s.Insert(dialog)

	got, ok := s.Get(2)
	if !ok || !s.IsFloating(2) {
		t.Fatal("expected dialog to be floating")
	}
	if want := (geometry.Point{X: 175, Y: 175}); got.Position != want {
		t.Errorf("dialog position = %+v, want %+v", got.Position, want)
	}
}

func TestRemoveClearsEverything(t *testing.T) {
	s, ws := newTestStore(t, 1)
	s.Insert(normal(1))
	s.Focus(1)

	s.Remove(1)

	if s.Contains(1) {
		t.Error("client 1 still present after Remove")
	}
	if ws.Current().Contains(1) {
		t.Error("workspace still references removed client")
	}
	if _, ok := s.Focused(); ok {
		t.Error("focus pointer still set after removing the focused client")
	}
}

func TestToggleFloatingRoundTripPreservesMembership(t *testing.T) {
	s, _ := newTestStore(t, 1)
	s.Insert(normal(1))

	s.ToggleFloating(1)
	if !s.IsFloating(1) {
		t.Fatal("expected client to become floating")
	}

	s.ToggleFloating(1)
	if !s.IsTiled(1) {
		t.Fatal("expected client to return to tiled")
	}
}

func TestToggleFloatingNoopWhenFullscreen(t *testing.T) {
	s, _ := newTestStore(t, 1)
	s.Insert(normal(1))
	s.SetFullscreen(1, true, geometry.Size{W: 1000, H: 1000})

	s.ToggleFloating(1)
	if !s.IsTiled(1) {
		t.Error("fullscreen client should not be toggled to floating")
	}
}

func TestSetFullscreenReportsChangeOnlyOnTransition(t *testing.T) {
	s, _ := newTestStore(t, 1)
	s.Insert(normal(1))

	if !s.SetFullscreen(1, true, geometry.Size{W: 1000, H: 1000}) {
		t.Error("expected first SetFullscreen(true) to report a change")
	}
	if s.SetFullscreen(1, true, geometry.Size{W: 1000, H: 1000}) {
		t.Error("expected repeated SetFullscreen(true) to report no change")
	}
}

func TestFocusIdempotence(t *testing.T) {
	s, _ := newTestStore(t, 1)
	s.Insert(normal(1))

	newE, _ := s.Focus(1)
	if !newE.Present || newE.ID != 1 {
		t.Fatalf("first Focus(1) = %+v, want present id=1", newE)
	}

	newE, oldE := s.Focus(1)
	if newE.Present || oldE.Present {
		t.Errorf("second Focus(1) = new:%+v old:%+v, want both vacant", newE, oldE)
	}
}

func TestFocusUnknownIsVacant(t *testing.T) {
	s, _ := newTestStore(t, 1)
	newE, oldE := s.Focus(99)
	if newE.Present || oldE.Present {
		t.Errorf("Focus(unknown) = new:%+v old:%+v, want both vacant", newE, oldE)
	}
}

func TestIsVisibleForTransientFollowsParent(t *testing.T) {
	s, ws := newTestStore(t, 2)
	parentID := client.WindowID(1)
	s.Insert(normal(1))
	s.Insert(client.Client{ID: 2, Kind: client.Dialog, Parent: &parentID})

	if !s.IsVisible(2) {
		t.Error("transient should be visible when parent's workspace is current")
	}

	ws.GoTo(1)
	if s.IsVisible(2) {
		t.Error("transient should be hidden when parent's workspace is not current")
	}
}

func TestFloatingWithoutParentAlwaysVisible(t *testing.T) {
	s, ws := newTestStore(t, 2)
	s.Insert(client.Client{ID: 1, Kind: client.Utility})
	ws.GoTo(1)

	if !s.IsVisible(1) {
		t.Error("floating client without a parent should always be visible")
	}
}

func TestByKindFilters(t *testing.T) {
	s, _ := newTestStore(t, 1)
	s.Insert(normal(1))
	s.Insert(client.Client{ID: 2, Kind: client.Dock})

	docks := s.ByKind(client.Dock)
	if len(docks) != 1 || docks[0].ID != 2 {
		t.Errorf("ByKind(Dock) = %+v, want single client id=2", docks)
	}
}
